// services/schedule/normalize.go
package schedule

import (
	"fmt"

	"go.uber.org/zap"

	"trimly/config"
	"trimly/models"
	"trimly/utils"
)

// ResolveEnabledDefault is the single place the absent-enabled policy lives:
// a day entry with no enabled flag counts as enabled. Loaders that want
// stricter handling of undefined days change the policy here, not at call sites.
func ResolveEnabledDefault(enabled *bool) bool {
	if enabled == nil {
		return true
	}
	return *enabled
}

// Normalize turns a raw availability payload into a well-formed weekly model.
// It never fails: every canonical day comes out present exactly once with an
// array-typed slot list, and slot entries that are incomplete or unparseable
// are dropped so one bad slot cannot block loading the rest of the schedule.
// Validate is the strict counterpart for gating saves.
func Normalize(raw models.RawPayload) models.AvailabilityModel {
	logger := utils.GetLogger()

	tz, tzLabel := raw.Timezone, raw.TimezoneLabel
	if tz == "" {
		tz = config.AppConfig.TimezoneID
		tzLabel = config.AppConfig.TimezoneLabel
	}

	byID := make(map[string]models.RawDay, len(raw.Days))
	for _, d := range raw.Days {
		if _, seen := byID[d.Day]; !seen {
			byID[d.Day] = d
		}
	}

	days := make([]models.DaySchedule, 0, 7)
	for _, id := range models.CanonicalDays(config.AppConfig.WeekStart) {
		rd := byID[id] // zero value when absent: no label, nil enabled, no slots

		label := rd.Label
		if label == "" {
			label = models.DayLabel(id)
		}

		enabled := ResolveEnabledDefault(rd.Enabled)

		slots := make([]models.TimeInterval, 0)
		if enabled {
			for _, rs := range rd.Slots {
				if rs.Start == "" || rs.End == "" {
					continue
				}
				iv, err := models.ParseInterval(rs.Start, rs.End)
				if err != nil {
					logger.Debug("dropping malformed slot",
						zap.String("day", id),
						zap.String("start", rs.Start),
						zap.String("end", rs.End),
						zap.Error(err))
					continue
				}
				slots = append(slots, iv)
			}
		}

		days = append(days, models.DaySchedule{Day: id, Label: label, Enabled: enabled, Slots: slots})
	}

	return models.AvailabilityModel{TimezoneID: tz, TimezoneLabel: tzLabel, Days: days}
}

// ToWirePayload serializes a model for the persistence API. Every one of the
// seven day entries carries an array-typed slots value, and a disabled day
// always goes out with an empty list even if the in-memory editor retained
// slots for it.
func ToWirePayload(m models.AvailabilityModel) models.WirePayload {
	days := make([]models.WireDay, 0, len(m.Days))
	for _, d := range m.Days {
		slots := make([]models.WireSlot, 0, len(d.Slots))
		if d.Enabled {
			for _, iv := range d.Slots {
				slots = append(slots, models.WireSlot{Start: iv.Start.Format24(), End: iv.End.Format24()})
			}
		}
		days = append(days, models.WireDay{Day: d.Day, Label: d.Label, Enabled: d.Enabled, Slots: slots})
	}
	return models.WirePayload{Timezone: m.TimezoneID, TimezoneLabel: m.TimezoneLabel, Days: days}
}

// DayFault is one per-day validation failure.
type DayFault struct {
	Day    string `json:"day"`
	Reason string `json:"reason"`
}

// Validate is the exhaustive, non-throwing check run before a save: it
// returns every violation found so the UI can show them all at once.
// An empty result means the model is safe to hand to the API client.
func Validate(m models.AvailabilityModel) []DayFault {
	var faults []DayFault

	counts := make(map[string]int, len(m.Days))
	for _, d := range m.Days {
		counts[d.Day]++
	}
	for _, id := range models.CanonicalDays(config.AppConfig.WeekStart) {
		switch counts[id] {
		case 0:
			faults = append(faults, DayFault{Day: id, Reason: "day entry missing"})
		case 1:
		default:
			faults = append(faults, DayFault{Day: id, Reason: fmt.Sprintf("day appears %d times", counts[id])})
		}
	}

	for _, d := range m.Days {
		if !models.IsCanonicalDay(d.Day) {
			faults = append(faults, DayFault{Day: d.Day, Reason: "not a canonical day identifier"})
			continue
		}
		if d.Slots == nil {
			faults = append(faults, DayFault{Day: d.Day, Reason: "slots must be a list"})
			continue
		}
		if !d.Enabled && len(d.Slots) > 0 {
			faults = append(faults, DayFault{Day: d.Day, Reason: "disabled day must have no slots"})
		}
		if d.Enabled {
			for i, iv := range d.Slots {
				if iv.End.Minutes() <= iv.Start.Minutes() {
					faults = append(faults, DayFault{
						Day:    d.Day,
						Reason: fmt.Sprintf("slot %d ends at or before its start", i),
					})
				}
			}
		}
	}

	return faults
}

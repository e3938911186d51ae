package models

// Canonical weekday identifiers used on the wire and as map keys.
const (
	DaySunday    = "sunday"
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
)

var sundayFirst = []string{
	DaySunday, DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday,
}

var mondayFirst = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday,
}

var dayLabels = map[string]string{
	DaySunday:    "Sunday",
	DayMonday:    "Monday",
	DayTuesday:   "Tuesday",
	DayWednesday: "Wednesday",
	DayThursday:  "Thursday",
	DayFriday:    "Friday",
	DaySaturday:  "Saturday",
}

// CanonicalDays returns the seven day identifiers in display order.
// Anything other than "monday" falls back to sunday-first.
func CanonicalDays(weekStart string) []string {
	if weekStart == DayMonday {
		return mondayFirst
	}
	return sundayFirst
}

// DayLabel returns the default display label for a canonical day id,
// or "" for an unknown id.
func DayLabel(day string) string { return dayLabels[day] }

// IsCanonicalDay reports whether day is one of the seven identifiers.
func IsCanonicalDay(day string) bool {
	_, ok := dayLabels[day]
	return ok
}

// DaySchedule is the enabled flag and slot list for one weekday.
// Slots is never nil on a normalized model, even when the day is disabled.
type DaySchedule struct {
	Day     string         `json:"day"`
	Label   string         `json:"label"`
	Enabled bool           `json:"enabled"`
	Slots   []TimeInterval `json:"slots"`
}

// Clone deep-copies the slot list so edits cannot alias.
func (d DaySchedule) Clone() DaySchedule {
	out := d
	out.Slots = make([]TimeInterval, len(d.Slots))
	copy(out.Slots, d.Slots)
	return out
}

// AvailabilityModel is one provider's full weekly recurring schedule:
// exactly one DaySchedule per canonical day, in configured display order.
type AvailabilityModel struct {
	TimezoneID    string        `json:"timezone"`
	TimezoneLabel string        `json:"timezoneLabel"`
	Days          []DaySchedule `json:"days"`
}

// Clone deep-copies the model.
func (m AvailabilityModel) Clone() AvailabilityModel {
	out := m
	out.Days = make([]DaySchedule, len(m.Days))
	for i, d := range m.Days {
		out.Days[i] = d.Clone()
	}
	return out
}

// Day returns a pointer into Days for in-place edits, or nil for an unknown id.
func (m AvailabilityModel) Day(id string) *DaySchedule {
	for i := range m.Days {
		if m.Days[i].Day == id {
			return &m.Days[i]
		}
	}
	return nil
}

// Equal reports structural equality: timezone, day order, enabled flags and
// ordered slot lists all match.
func (m AvailabilityModel) Equal(o AvailabilityModel) bool {
	if m.TimezoneID != o.TimezoneID || len(m.Days) != len(o.Days) {
		return false
	}
	for i := range m.Days {
		a, b := m.Days[i], o.Days[i]
		if a.Day != b.Day || a.Enabled != b.Enabled || len(a.Slots) != len(b.Slots) {
			return false
		}
		for j := range a.Slots {
			if a.Slots[j] != b.Slots[j] {
				return false
			}
		}
	}
	return true
}

// RawSlot is one slot entry as received from the API client. Empty strings
// mean the field was absent.
type RawSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RawDay is one inbound day entry. Enabled is a pointer so an absent flag is
// observable and runs through the explicit default policy.
type RawDay struct {
	Day     string    `json:"day"`
	Label   string    `json:"label"`
	Enabled *bool     `json:"enabled"`
	Slots   []RawSlot `json:"slots"`
}

// RawPayload is the inbound availability document before normalization.
type RawPayload struct {
	Timezone      string   `json:"timezone"`
	TimezoneLabel string   `json:"timezoneLabel"`
	Days          []RawDay `json:"days"`
}

// WireSlot is one serialized slot.
type WireSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WireDay is one outbound day entry. Slots must never be nil: a nil slice
// marshals to JSON null and the persistence service rejects any day whose
// slots key is missing or not an array.
type WireDay struct {
	Day     string     `json:"day"`
	Label   string     `json:"label"`
	Enabled bool       `json:"enabled"`
	Slots   []WireSlot `json:"slots"`
}

// WirePayload is the outbound availability document.
type WirePayload struct {
	Timezone      string    `json:"timezone"`
	TimezoneLabel string    `json:"timezoneLabel"`
	Days          []WireDay `json:"days"`
}

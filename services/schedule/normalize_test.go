package schedule

import (
	"encoding/json"
	"strings"
	"testing"

	"trimly/models"
)

func boolPtr(b bool) *bool { return &b }

func rawWeek() models.RawPayload {
	days := make([]models.RawDay, 0, 7)
	for _, id := range models.CanonicalDays("") {
		days = append(days, models.RawDay{
			Day:     id,
			Enabled: boolPtr(true),
			Slots:   []models.RawSlot{{Start: "09:00", End: "17:00"}},
		})
	}
	return models.RawPayload{Timezone: "Asia/Beirut", TimezoneLabel: "Beirut (GMT+3)", Days: days}
}

func TestNormalize_SevenDaysSlotsAlwaysPresent(t *testing.T) {
	m := Normalize(rawWeek())
	if len(m.Days) != 7 {
		t.Fatalf("want 7 days, got %d", len(m.Days))
	}
	for _, d := range m.Days {
		if d.Slots == nil {
			t.Fatalf("day %s: slots is nil", d.Day)
		}
		if d.Label == "" {
			t.Fatalf("day %s: no label", d.Day)
		}
	}
}

func TestNormalize_DisabledDayDropsSlots(t *testing.T) {
	raw := rawWeek()
	for i := range raw.Days {
		if raw.Days[i].Day == models.DaySunday {
			raw.Days[i].Enabled = boolPtr(false)
		}
	}
	m := Normalize(raw)
	sun := m.Day(models.DaySunday)
	if sun == nil {
		t.Fatal("sunday missing")
	}
	if sun.Enabled {
		t.Fatal("sunday should be disabled")
	}
	if sun.Slots == nil || len(sun.Slots) != 0 {
		t.Fatalf("disabled day must have empty slots, got %v", sun.Slots)
	}
}

func TestNormalize_DropsMalformedAndIncompleteSlots(t *testing.T) {
	raw := rawWeek()
	for i := range raw.Days {
		if raw.Days[i].Day == models.DayMonday {
			raw.Days[i].Slots = []models.RawSlot{
				{Start: "09:00", End: "12:00"},
				{Start: "13:00"},                 // end absent
				{Start: "25:00", End: "26:00"},   // unparseable
				{Start: "15:00", End: "14:00"},   // reversed
				{Start: "14:00", End: "18:00"},   // fine
			}
		}
	}
	m := Normalize(raw)
	mon := m.Day(models.DayMonday)
	if len(mon.Slots) != 2 {
		t.Fatalf("want 2 surviving slots, got %d: %v", len(mon.Slots), mon.Slots)
	}
}

func TestNormalize_MissingDayDerivedFromCanonicalTable(t *testing.T) {
	raw := rawWeek()
	kept := raw.Days[:0]
	for _, d := range raw.Days {
		if d.Day != models.DayWednesday {
			kept = append(kept, d)
		}
	}
	raw.Days = kept

	m := Normalize(raw)
	wed := m.Day(models.DayWednesday)
	if wed == nil {
		t.Fatal("wednesday must be synthesized")
	}
	if wed.Label != "Wednesday" {
		t.Fatalf("label: got %q", wed.Label)
	}
	// Absent enabled flag runs through the default policy.
	if !wed.Enabled {
		t.Fatal("absent enabled flag must default to enabled")
	}
	if wed.Slots == nil || len(wed.Slots) != 0 {
		t.Fatalf("synthesized day must have empty slots, got %v", wed.Slots)
	}
}

func TestResolveEnabledDefault(t *testing.T) {
	if !ResolveEnabledDefault(nil) {
		t.Fatal("nil must resolve to enabled")
	}
	if ResolveEnabledDefault(boolPtr(false)) {
		t.Fatal("explicit false must stay false")
	}
	if !ResolveEnabledDefault(boolPtr(true)) {
		t.Fatal("explicit true must stay true")
	}
}

func TestToWirePayload_SlotsKeyNeverNull(t *testing.T) {
	raw := rawWeek()
	for i := range raw.Days {
		raw.Days[i].Enabled = boolPtr(false)
	}
	payload := ToWirePayload(Normalize(raw))
	if len(payload.Days) != 7 {
		t.Fatalf("want 7 wire days, got %d", len(payload.Days))
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), `"slots":null`) {
		t.Fatalf("wire payload contains null slots: %s", body)
	}
	if got := strings.Count(string(body), `"slots":[]`); got != 7 {
		t.Fatalf("want 7 empty slots arrays, got %d: %s", got, body)
	}
}

func TestToWirePayload_DisabledDayRetainedSlotsStayOffTheWire(t *testing.T) {
	m := Normalize(rawWeek())
	// Simulate the editor retaining slots in memory on a disabled day.
	fri := m.Day(models.DayFriday)
	fri.Enabled = false

	payload := ToWirePayload(m)
	for _, d := range payload.Days {
		if d.Day == models.DayFriday {
			if d.Slots == nil {
				t.Fatal("slots must still be an array")
			}
			if len(d.Slots) != 0 {
				t.Fatalf("disabled day serialized %d slots", len(d.Slots))
			}
		}
	}
}

func TestValidate_CleanModel(t *testing.T) {
	if faults := Validate(Normalize(rawWeek())); len(faults) != 0 {
		t.Fatalf("clean model reported faults: %v", faults)
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	m := Normalize(rawWeek())
	// Duplicate monday, drop thursday, nil out tuesday's slots.
	for i := range m.Days {
		switch m.Days[i].Day {
		case models.DayThursday:
			m.Days[i].Day = models.DayMonday
		case models.DayTuesday:
			m.Days[i].Slots = nil
		}
	}
	faults := Validate(m)
	if len(faults) == 0 {
		t.Fatal("want faults, got none")
	}
	reasons := make(map[string]bool)
	for _, f := range faults {
		reasons[f.Day+"/"+f.Reason] = true
	}
	if !reasons["thursday/day entry missing"] {
		t.Fatalf("missing-day fault not reported: %v", faults)
	}
	if !reasons["monday/day appears 2 times"] {
		t.Fatalf("duplicate-day fault not reported: %v", faults)
	}
	if !reasons["tuesday/slots must be a list"] {
		t.Fatalf("nil-slots fault not reported: %v", faults)
	}
}

package schedule

import (
	"errors"
	"testing"

	"trimly/models"
)

func sessionFixture(t *testing.T) *EditSession {
	t.Helper()
	return NewEditSession(Normalize(rawWeek()))
}

func TestEditSession_StartsClean(t *testing.T) {
	s := sessionFixture(t)
	if s.IsDirty() {
		t.Fatal("fresh session must be clean")
	}
}

func TestEditSession_ToggleRetainsAndRestoresSlots(t *testing.T) {
	s := sessionFixture(t)
	before := s.Working().Day(models.DayMonday).Slots
	if len(before) == 0 {
		t.Fatal("fixture needs monday slots")
	}

	if err := s.ToggleDay(models.DayMonday, false); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	mon := s.Working().Day(models.DayMonday)
	if mon.Enabled || len(mon.Slots) != 0 {
		t.Fatalf("disable must clear working slots, got %+v", mon)
	}
	if !s.IsDirty() {
		t.Fatal("toggle must dirty the session")
	}

	if err := s.ToggleDay(models.DayMonday, true); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	mon = s.Working().Day(models.DayMonday)
	if len(mon.Slots) != len(before) {
		t.Fatalf("re-enable must restore %d slots, got %d", len(before), len(mon.Slots))
	}
	for i := range before {
		if mon.Slots[i] != before[i] {
			t.Fatalf("slot %d changed across toggle: %v vs %v", i, mon.Slots[i], before[i])
		}
	}
	if s.IsDirty() {
		t.Fatal("restored session must compare clean again")
	}
}

func TestEditSession_FreshSessionHasNoRetainedState(t *testing.T) {
	raw := rawWeek()
	for i := range raw.Days {
		if raw.Days[i].Day == models.DayTuesday {
			raw.Days[i].Enabled = boolPtr(false)
		}
	}
	s := NewEditSession(Normalize(raw))
	if err := s.ToggleDay(models.DayTuesday, true); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if got := s.Working().Day(models.DayTuesday).Slots; len(got) != 0 {
		t.Fatalf("no stash to restore, got %v", got)
	}
}

func TestEditSession_ToggleUnknownDay(t *testing.T) {
	s := sessionFixture(t)
	if err := s.ToggleDay("funday", false); !errors.Is(err, models.ErrUnknownDay) {
		t.Fatalf("want ErrUnknownDay, got %v", err)
	}
}

func TestEditSession_AddAndRemoveSlot(t *testing.T) {
	s := sessionFixture(t)
	iv, _ := models.ParseInterval("18:00", "19:00")
	if err := s.AddSlot(models.DaySaturday, iv); err != nil {
		t.Fatalf("add: %v", err)
	}
	sat := s.Working().Day(models.DaySaturday)
	if sat.Slots[len(sat.Slots)-1] != iv {
		t.Fatal("slot must be appended in order")
	}
	if !s.IsDirty() {
		t.Fatal("add must dirty the session")
	}

	if err := s.RemoveSlot(models.DaySaturday, len(sat.Slots)); !errors.Is(err, models.ErrSlotIndex) {
		t.Fatalf("out-of-range removal: want ErrSlotIndex, got %v", err)
	}
	if err := s.RemoveSlot(models.DaySaturday, -1); !errors.Is(err, models.ErrSlotIndex) {
		t.Fatalf("negative removal: want ErrSlotIndex, got %v", err)
	}
	if err := s.RemoveSlot(models.DaySaturday, len(sat.Slots)-1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if s.IsDirty() {
		t.Fatal("add then remove must compare clean")
	}
}

func TestEditSession_CommitAndDiscard(t *testing.T) {
	s := sessionFixture(t)
	iv, _ := models.ParseInterval("07:00", "08:00")
	if err := s.AddSlot(models.DaySunday, iv); err != nil {
		t.Fatalf("add: %v", err)
	}

	snap := s.Commit()
	if s.IsDirty() {
		t.Fatal("commit must leave the session clean")
	}
	sun := snap.Day(models.DaySunday)
	if sun.Slots[len(sun.Slots)-1] != iv {
		t.Fatal("commit snapshot must carry the edit")
	}

	if err := s.AddSlot(models.DaySunday, iv); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Discard()
	if s.IsDirty() {
		t.Fatal("discard must leave the session clean")
	}
	if got := s.Working().Day(models.DaySunday).Slots; len(got) != len(sun.Slots) {
		t.Fatalf("discard must revert to committed state, got %d slots", len(got))
	}
}

func TestEditSession_WorkingCopyDoesNotAlias(t *testing.T) {
	s := sessionFixture(t)
	w := s.Working()
	w.Day(models.DayMonday).Enabled = false
	if s.IsDirty() {
		t.Fatal("mutating the returned copy must not touch the buffer")
	}
}

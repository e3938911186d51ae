// services/schedule/session.go
package schedule

import (
	"fmt"

	"go.uber.org/zap"

	"trimly/models"
	"trimly/utils"
)

// EditSession is the mutable in-memory buffer behind the availability edit
// view. It assumes a single writer; nothing here is persisted until the
// caller takes Commit's snapshot to the API client.
type EditSession struct {
	original models.AvailabilityModel
	working  models.AvailabilityModel

	// retained stashes the slot list of a day the user toggled off, so
	// toggling it back on within the same session restores the previous
	// arrangement. Session-local: never serialized, cleared on Discard.
	retained map[string][]models.TimeInterval
}

// NewEditSession opens an edit buffer over the last-saved model.
func NewEditSession(m models.AvailabilityModel) *EditSession {
	return &EditSession{
		original: m.Clone(),
		working:  m.Clone(),
		retained: make(map[string][]models.TimeInterval),
	}
}

// Working returns a copy of the current edit state; callers cannot alias
// the buffer through it.
func (s *EditSession) Working() models.AvailabilityModel { return s.working.Clone() }

// ToggleDay enables or disables a day. Disabling clears the working slots
// but stashes them for restoration; re-enabling restores the stash.
func (s *EditSession) ToggleDay(dayID string, enabled bool) error {
	d := s.working.Day(dayID)
	if d == nil {
		return fmt.Errorf("%w: %q", models.ErrUnknownDay, dayID)
	}
	if d.Enabled == enabled {
		return nil
	}
	if !enabled {
		if len(d.Slots) > 0 {
			s.retained[dayID] = cloneSlots(d.Slots)
		}
		d.Slots = make([]models.TimeInterval, 0)
	} else if prev, ok := s.retained[dayID]; ok {
		d.Slots = cloneSlots(prev)
		delete(s.retained, dayID)
	}
	d.Enabled = enabled
	return nil
}

// AddSlot appends a slot to a day. No sorting, no overlap check.
func (s *EditSession) AddSlot(dayID string, iv models.TimeInterval) error {
	d := s.working.Day(dayID)
	if d == nil {
		return fmt.Errorf("%w: %q", models.ErrUnknownDay, dayID)
	}
	d.Slots = append(d.Slots, iv)
	return nil
}

// RemoveSlot removes a day's slot by position.
func (s *EditSession) RemoveSlot(dayID string, index int) error {
	d := s.working.Day(dayID)
	if d == nil {
		return fmt.Errorf("%w: %q", models.ErrUnknownDay, dayID)
	}
	if index < 0 || index >= len(d.Slots) {
		return fmt.Errorf("%w: %d of %d", models.ErrSlotIndex, index, len(d.Slots))
	}
	d.Slots = append(d.Slots[:index], d.Slots[index+1:]...)
	return nil
}

// IsDirty reports whether the working copy structurally differs from the
// last-saved model. Derived on every call, never cached.
func (s *EditSession) IsDirty() bool { return !s.working.Equal(s.original) }

// Commit accepts the working copy as the new saved state and returns a
// snapshot for the caller to hand to the API client. The engine does not
// gate on Validate here; callers block the save when Validate reports faults.
func (s *EditSession) Commit() models.AvailabilityModel {
	s.original = s.working.Clone()
	utils.GetLogger().Debug("edit session committed", zap.String("timezone", s.working.TimezoneID))
	return s.working.Clone()
}

// Discard reverts the working copy to the last-saved state and drops any
// retained slot stashes.
func (s *EditSession) Discard() {
	s.working = s.original.Clone()
	s.retained = make(map[string][]models.TimeInterval)
	utils.GetLogger().Debug("edit session discarded")
}

func cloneSlots(slots []models.TimeInterval) []models.TimeInterval {
	out := make([]models.TimeInterval, len(slots))
	copy(out, slots)
	return out
}

package models

import "errors"

// Engine errors. Services wrap these with context via fmt.Errorf("...: %w", err)
// so callers can match with errors.Is at the UI boundary.
var (
	ErrBadTimeFormat = errors.New("malformed time, want 24-hour HH:MM")
	ErrBadOrder      = errors.New("end must be strictly after start")
	ErrPastDate      = errors.New("date is in the past")
	ErrMissingField  = errors.New("required field missing")
	ErrSlotIndex     = errors.New("slot index out of range")
	ErrUnknownDay    = errors.New("unknown day identifier")
)

package models

import "fmt"

// TimeOfDay is a minute-precision wall-clock time with no date attached.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseTimeOfDay parses a zero-padded 24-hour "HH:MM" string.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	var t TimeOfDay
	if len(text) != 5 || text[2] != ':' ||
		!isDigit(text[0]) || !isDigit(text[1]) || !isDigit(text[3]) || !isDigit(text[4]) {
		return t, fmt.Errorf("%w: %q", ErrBadTimeFormat, text)
	}
	h := int(text[0]-'0')*10 + int(text[1]-'0')
	m := int(text[3]-'0')*10 + int(text[4]-'0')
	if h > 23 || m > 59 {
		return t, fmt.Errorf("%w: %q", ErrBadTimeFormat, text)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Minutes returns minutes from midnight.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// Before reports whether t is earlier in the day than o.
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.Minutes() < o.Minutes() }

// Format24 renders the canonical zero-padded "HH:MM" form.
func (t TimeOfDay) Format24() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// Format12 renders "H:MM AM"/"H:MM PM". Hour 0 maps to 12 AM, hour 12 stays 12 PM.
func (t TimeOfDay) Format12() string {
	h, period := t.Hour, "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		period = "PM"
	case h > 12:
		h -= 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute, period)
}

// FormatDisplay picks the clock style the admin UI is configured for.
func (t TimeOfDay) FormatDisplay(use12h bool) string {
	if use12h {
		return t.Format12()
	}
	return t.Format24()
}

// TimeInterval is a half-open [Start, End) block within a single day.
// Immutable value type; edits replace the whole interval.
type TimeInterval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// NewTimeInterval builds an interval, rejecting zero or negative length.
func NewTimeInterval(start, end TimeOfDay) (TimeInterval, error) {
	if end.Minutes() <= start.Minutes() {
		return TimeInterval{}, fmt.Errorf("%w: %s..%s", ErrBadOrder, start.Format24(), end.Format24())
	}
	return TimeInterval{Start: start, End: end}, nil
}

// ParseInterval parses a "HH:MM" pair into a validated interval.
func ParseInterval(start, end string) (TimeInterval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeInterval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeInterval{}, err
	}
	return NewTimeInterval(s, e)
}

// DurationBetween returns end minus start in minutes.
func DurationBetween(start, end TimeOfDay) (int, error) {
	d := end.Minutes() - start.Minutes()
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s..%s", ErrBadOrder, start.Format24(), end.Format24())
	}
	return d, nil
}

// DurationMinutes is always positive for a constructed interval.
func (iv TimeInterval) DurationMinutes() int { return iv.End.Minutes() - iv.Start.Minutes() }

// Overlaps uses half-open semantics: intervals that merely touch do not overlap.
func Overlaps(a, b TimeInterval) bool {
	return a.Start.Minutes() < b.End.Minutes() && b.Start.Minutes() < a.End.Minutes()
}

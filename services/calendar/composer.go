// services/calendar/composer.go
package calendar

import (
	"time"

	"trimly/config"
	"trimly/models"
)

const dateLayout = "2006-01-02"

// ViewType selects the calendar composition granularity.
type ViewType string

const (
	ViewDay   ViewType = "day"
	ViewWeek  ViewType = "week"
	ViewMonth ViewType = "month"
)

// Composer computes visible date ranges and buckets occupancy items for the
// calendar screens. The clock is injectable so "today" checks are stable
// under test; it is consulted on every call because an instance can survive
// across midnight.
type Composer struct {
	loc *time.Location
	now func() time.Time
}

// NewComposer builds a composer evaluating dates in the given location.
func NewComposer(loc *time.Location) *Composer {
	if loc == nil {
		loc = time.UTC
	}
	return &Composer{loc: loc, now: time.Now}
}

// VisibleRange returns the first and last calendar day in view (inclusive).
// Week view always spans Sunday through Saturday.
func (c *Composer) VisibleRange(ref time.Time, vt ViewType) (time.Time, time.Time) {
	day := c.dateOnly(ref)
	switch vt {
	case ViewWeek:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start, start.AddDate(0, 0, 6)
	case ViewMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, c.loc)
		return start, start.AddDate(0, 1, -1)
	default:
		return day, day
	}
}

// VisibleDates enumerates every date in view, in order.
func (c *Composer) VisibleDates(ref time.Time, vt ViewType) []time.Time {
	start, end := c.VisibleRange(ref, vt)
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Advance moves the reference date by one view-sized step in the given
// direction. Month steps clamp the day-of-month to the target month's last
// valid day instead of letting the arithmetic normalize into the next month.
func (c *Composer) Advance(ref time.Time, vt ViewType, direction int) time.Time {
	day := c.dateOnly(ref)
	switch vt {
	case ViewWeek:
		return day.AddDate(0, 0, 7*direction)
	case ViewMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, c.loc)
		target := first.AddDate(0, direction, 0)
		dom := day.Day()
		if last := target.AddDate(0, 1, -1).Day(); dom > last {
			dom = last
		}
		return time.Date(target.Year(), target.Month(), dom, 0, 0, 0, 0, c.loc)
	default:
		return day.AddDate(0, 0, direction)
	}
}

// IsToday reports calendar-date equality between ref and the current moment.
func (c *Composer) IsToday(ref time.Time) bool {
	n := c.now().In(c.loc)
	r := ref.In(c.loc)
	return n.Year() == r.Year() && n.YearDay() == r.YearDay()
}

// FormatDate renders a date in the canonical wire form.
func FormatDate(t time.Time) string { return t.Format(dateLayout) }

func (c *Composer) dateOnly(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// BucketByDate groups items under their date key by exact canonical
// "YYYY-MM-DD" match. Items with a non-canonical date are left out of the
// buckets, not globally discarded: producers are expected to emit canonical
// ISO dates and this is where that assumption is enforced for layout.
func BucketByDate[T any](items []T, dateOf func(T) string) map[string][]T {
	buckets := make(map[string][]T)
	for _, it := range items {
		d := dateOf(it)
		if !canonicalDate(d) {
			continue
		}
		buckets[d] = append(buckets[d], it)
	}
	return buckets
}

// BucketItems is BucketByDate over the shared occupancy interface.
func BucketItems(items []models.CalendarItem) map[string][]models.CalendarItem {
	return BucketByDate(items, models.CalendarItem.ItemDate)
}

// MonthCellItems caps how many items one month cell renders: the first limit
// items in original order, plus the count hidden behind "+N more".
func MonthCellItems[T any](items []T, limit int) ([]T, int) {
	if limit <= 0 || len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}

// MonthCellCap returns the configured per-cell cap, defaulting to 3.
func MonthCellCap() int {
	if config.AppConfig.MonthCellCap > 0 {
		return config.AppConfig.MonthCellCap
	}
	return 3
}

func canonicalDate(s string) bool {
	t, err := time.Parse(dateLayout, s)
	return err == nil && t.Format(dateLayout) == s
}

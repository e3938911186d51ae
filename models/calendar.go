package models

// CalendarItem is the occupancy view shared by appointments, blocked ranges
// and system-unavailable ranges. The calendar layer lays the three categories
// out identically; inconsistent source data may therefore overlap visually.
type CalendarItem interface {
	ItemDate() string
	ItemStart() string
	ItemEnd() string
	ItemSummary() string
}

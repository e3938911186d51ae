package models

// UnavailableRange is a system- or policy-derived closed period, distinct
// from a manual block (e.g. outside business hours). Read-only to the engine.
type UnavailableRange struct {
	Date      string `json:"date"`      // "YYYY-MM-DD"
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
	Source    string `json:"source"`    // e.g. "business-hours"
}

func (u UnavailableRange) ItemDate() string  { return u.Date }
func (u UnavailableRange) ItemStart() string { return u.StartTime }
func (u UnavailableRange) ItemEnd() string   { return u.EndTime }

func (u UnavailableRange) ItemSummary() string {
	if u.Source == "" {
		return "Unavailable"
	}
	return "Unavailable: " + u.Source
}

package models

// Appointment is one booked client visit as supplied by the API client.
// The engine treats it as an occupancy interval on a date; it never
// creates, merges or deduplicates appointments.
type Appointment struct {
	ID          string `json:"id"`
	Date        string `json:"date"`      // "YYYY-MM-DD"
	StartTime   string `json:"startTime"` // "HH:MM"
	EndTime     string `json:"endTime"`   // "HH:MM"
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
}

func (a Appointment) ItemDate() string  { return a.Date }
func (a Appointment) ItemStart() string { return a.StartTime }
func (a Appointment) ItemEnd() string   { return a.EndTime }

func (a Appointment) ItemSummary() string {
	if a.ServiceName == "" {
		return a.ClientName
	}
	return a.ClientName + " - " + a.ServiceName
}

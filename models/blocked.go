package models

import "time"

// BlockedRange is an ad-hoc period the provider marked unavailable
// (lunch, personal time). Supplied by the API client; the engine only
// constructs one from a block request that validated clean.
type BlockedRange struct {
	BlockID   string    `json:"blockId"`   // Unique identifier for the block
	Date      string    `json:"date"`      // Date (e.g., "2026-02-25")
	StartTime string    `json:"startTime"` // Wall-clock "HH:MM"
	EndTime   string    `json:"endTime"`   // Wall-clock "HH:MM"
	Reason    string    `json:"reason"`    // Reason for blocking (e.g., "lunch break")
	CreatedAt time.Time `json:"createdAt"` // Timestamp when the block was created
}

func (b BlockedRange) ItemDate() string  { return b.Date }
func (b BlockedRange) ItemStart() string { return b.StartTime }
func (b BlockedRange) ItemEnd() string   { return b.EndTime }

func (b BlockedRange) ItemSummary() string {
	if b.Reason == "" {
		return "Blocked"
	}
	return "Blocked: " + b.Reason
}

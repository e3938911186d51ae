// services/calendar/grid.go
package calendar

import (
	"trimly/config"
	"trimly/models"
)

// GridConfig describes the visible day window and its vertical scale.
// Explicit values rather than package globals so deployments can reconfigure
// the window and tests stay deterministic.
type GridConfig struct {
	WindowStart   models.TimeOfDay
	WindowEnd     models.TimeOfDay
	PixelsPerHour int
}

// DefaultGridConfig is the stock 09:00-21:00 window at 80px per hour.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		WindowStart:   models.TimeOfDay{Hour: 9},
		WindowEnd:     models.TimeOfDay{Hour: 21},
		PixelsPerHour: 80,
	}
}

// GridFromConfig builds the window from the loaded app configuration,
// falling back to the stock window on unparseable values.
func GridFromConfig() GridConfig {
	g := DefaultGridConfig()
	if t, err := models.ParseTimeOfDay(config.AppConfig.GridWindowStart); err == nil {
		g.WindowStart = t
	}
	if t, err := models.ParseTimeOfDay(config.AppConfig.GridWindowEnd); err == nil {
		g.WindowEnd = t
	}
	if config.AppConfig.PixelsPerHour > 0 {
		g.PixelsPerHour = config.AppConfig.PixelsPerHour
	}
	return g
}

// GridMapper converts wall-clock times to vertical pixel offsets within the
// visible window. Single column per day; no overlap-aware stacking.
type GridMapper struct {
	cfg GridConfig
}

func NewGridMapper(cfg GridConfig) GridMapper { return GridMapper{cfg: cfg} }

// TimeToOffset maps a time to pixels from the top of the window. Times
// outside the window yield negative or over-range offsets; callers decide
// visibility, the mapper does not clamp.
func (g GridMapper) TimeToOffset(t models.TimeOfDay) float64 {
	return float64(t.Minutes()-g.cfg.WindowStart.Minutes()) * float64(g.cfg.PixelsPerHour) / 60
}

// Box is a laid-out interval: top offset and height, both in pixels.
type Box struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// IntervalToBox lays out one occupancy interval. Zero- or negative-duration
// intervals never reach this point; interval construction rejects them.
func (g GridMapper) IntervalToBox(iv models.TimeInterval) Box {
	return Box{
		Top:    g.TimeToOffset(iv.Start),
		Height: float64(iv.DurationMinutes()) * float64(g.cfg.PixelsPerHour) / 60,
	}
}

// HourLabel is one row header of the day grid.
type HourLabel struct {
	Hour    int    `json:"hour"`
	Label24 string `json:"label24"`
	Label12 string `json:"label12"`
}

// HourLabels produces the row headers for every hour mark in the window,
// both bounds inclusive. Pure; safe to cache per window configuration.
func (g GridMapper) HourLabels() []HourLabel {
	labels := make([]HourLabel, 0, g.cfg.WindowEnd.Hour-g.cfg.WindowStart.Hour+1)
	for h := g.cfg.WindowStart.Hour; h <= g.cfg.WindowEnd.Hour; h++ {
		t := models.TimeOfDay{Hour: h}
		labels = append(labels, HourLabel{Hour: h, Label24: t.Format24(), Label12: t.Format12()})
	}
	return labels
}

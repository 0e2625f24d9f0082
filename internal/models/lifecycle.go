// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package models

// Phase is an ingredient's position in its adoption lifecycle.
type Phase string

// Phase values.
const (
	PhaseEmerging  Phase = "Emerging"
	PhaseGrowing   Phase = "Growing"
	PhaseMature    Phase = "Mature"
	PhaseDeclining Phase = "Declining"
)

// Number returns the phase's position (1..4) for the adoption-phase box.
func (p Phase) Number() int {
	switch p {
	case PhaseEmerging:
		return 1
	case PhaseGrowing:
		return 2
	case PhaseMature:
		return 3
	case PhaseDeclining:
		return 4
	default:
		return 0
	}
}

// LifecycleData is returned by the phase endpoint. YoYGrowthPercent is null
// when the previous year has no dishes.
type LifecycleData struct {
	Phase             Phase    `json:"phase"`
	CurrentYearCount  int      `json:"current_year_count"`
	PreviousYearCount int      `json:"previous_year_count"`
	YoYGrowthPercent  *float64 `json:"yoy_growth_percent"`
	Description       string   `json:"description"`
}

// ShareData is the ingredient's share of one source's current-year dishes.
type ShareData struct {
	SharePercent  *float64 `json:"share_percent"`
	ChangePercent float64  `json:"change_percent"`
	IsPositive    bool     `json:"is_positive"`
	CurrentCount  int      `json:"current_count"`
	PreviousCount int      `json:"previous_count"`
}

// MetricBox is one tile of the summary dashboard.
type MetricBox struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Growth      string `json:"growth,omitempty"`
	IsPositive  *bool  `json:"is_positive,omitempty"`
	Phase       int    `json:"phase,omitempty"`
	TotalPhases int    `json:"total_phases,omitempty"`
	Description string `json:"description"`
}

// SummaryStatsResponse bundles the dashboard tiles.
type SummaryStatsResponse struct {
	Ingredient string      `json:"ingredient"`
	Metrics    []MetricBox `json:"metrics"`
}

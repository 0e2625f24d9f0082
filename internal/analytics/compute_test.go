// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"testing"

	"github.com/tomtom215/flavorlens/internal/models"
)

func TestPercent(t *testing.T) {
	t.Parallel()

	if got := Percent(5, 0); got != nil {
		t.Errorf("Percent(5, 0) = %v, want nil", *got)
	}
	if got := Percent(0, 0); got != nil {
		t.Errorf("Percent(0, 0) = %v, want nil", *got)
	}
	if got := Percent(1, 4); got == nil || *got != 25 {
		t.Errorf("Percent(1, 4) = %v, want 25", got)
	}
}

func TestGrowth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		prev, cur float64
		zero      GrowthZero
		want      *float64
	}{
		{"increase", 10, 15, GrowthZeroNull, ptr(50)},
		{"decrease", 20, 5, GrowthZeroNull, ptr(-75)},
		{"from nothing", 0, 12, GrowthZeroNull, ptr(GrowthSentinel)},
		{"both zero null", 0, 0, GrowthZeroNull, nil},
		{"both zero zero", 0, 0, GrowthZeroZero, ptr(0)},
		{"to nothing", 8, 0, GrowthZeroZero, ptr(-100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Growth(tt.prev, tt.cur, tt.zero)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Growth = %v, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("Growth = nil, want %v", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("Growth = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v      float64
		places int32
		want   float64
	}{
		{2.345, 2, 2.35},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{33.33333, 1, 33.3},
		{66.66666, 2, 66.67},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
		}
	}
	if roundInt(87.5) != 88 {
		t.Errorf("roundInt(87.5) = %d, want 88", roundInt(87.5))
	}
}

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prev, cur int
		want      models.Status
	}{
		{0, 5, models.StatusHot},
		{0, 0, models.StatusNew},
		{100, 126, models.StatusHot},
		{100, 125, models.StatusRising},
		{100, 111, models.StatusRising},
		{100, 110, models.StatusStable},
		{100, 100, models.StatusStable},
		{100, 90, models.StatusStable},
		{100, 89, models.StatusDeclining},
		{10, 0, models.StatusDeclining},
		{4, 5, models.StatusRising},
		{20, 25, models.StatusRising},
	}
	for _, tt := range tests {
		if got := ClassifyStatus(tt.prev, tt.cur); got != tt.want {
			t.Errorf("ClassifyStatus(%d, %d) = %s, want %s", tt.prev, tt.cur, got, tt.want)
		}
	}
}

func TestClassifyStatusMonotonic(t *testing.T) {
	t.Parallel()

	rank := map[models.Status]int{
		models.StatusDeclining: 0,
		models.StatusStable:    1,
		models.StatusRising:    2,
		models.StatusHot:       3,
	}
	for prev := 1; prev <= 60; prev++ {
		last := -1
		for cur := 0; cur <= prev*2; cur++ {
			r, ok := rank[ClassifyStatus(prev, cur)]
			if !ok {
				t.Fatalf("ClassifyStatus(%d, %d) returned an unranked status", prev, cur)
			}
			if r < last {
				t.Fatalf("ClassifyStatus not monotonic at prev=%d cur=%d", prev, cur)
			}
			last = r
		}
	}
}

func TestClassifyPhase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		prev, cur int
		yoy       float64
		want      models.Phase
	}{
		{"appears", 0, 12, 0, models.PhaseEmerging},
		{"vanishes", 7, 0, -100, models.PhaseDeclining},
		{"never seen", 0, 0, 0, models.PhaseDeclining},
		{"strong growth", 10, 13, 30, models.PhaseGrowing},
		{"growth at threshold", 10, 12, 20, models.PhaseMature},
		{"steep decline", 10, 7, -30, models.PhaseDeclining},
		{"flat", 10, 10, 0, models.PhaseMature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyPhase(tt.prev, tt.cur, tt.yoy); got != tt.want {
				t.Errorf("ClassifyPhase = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTextCasing(t *testing.T) {
	t.Parallel()

	if got := titleCase("  sea salt "); got != "Sea Salt" {
		t.Errorf("titleCase = %q", got)
	}
	if got := capitalize("SWEET and sour"); got != "Sweet and sour" {
		t.Errorf("capitalize = %q", got)
	}
	if got := capitalize(""); got != "" {
		t.Errorf("capitalize(\"\") = %q", got)
	}
}

func ptr(v float64) *float64 { return &v }

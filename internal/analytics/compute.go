// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tomtom215/flavorlens/internal/models"
)

// GrowthSentinel is reported when a value appears from nothing.
const GrowthSentinel = 100.0

// GrowthZero selects the growth reported when both years are zero.
type GrowthZero int

const (
	// GrowthZeroNull reports null.
	GrowthZeroNull GrowthZero = iota
	// GrowthZeroZero reports 0.
	GrowthZeroZero
)

// palette colours dimension values by rank.
var palette = []string{
	"#00255a", "#199ef3", "#3179c0", "#5590d6", "#84abdd",
	"#adc5e5", "#c3d5ec", "#d1e3f6", "#e4eef9", "#f0f6fc",
}

func colorAt(i int) string {
	return palette[i%len(palette)]
}

// Percent returns count*100/total, or nil when total is zero.
func Percent(count, total int) *float64 {
	if total == 0 {
		return nil
	}
	v := float64(count) * 100 / float64(total)
	return &v
}

// Growth returns the percentage change from prev to cur. A start from zero
// reports GrowthSentinel; two zeros report per zero.
func Growth(prev, cur float64, zero GrowthZero) *float64 {
	var v float64
	switch {
	case prev > 0:
		v = (cur - prev) * 100 / prev
	case cur > 0:
		v = GrowthSentinel
	case zero == GrowthZeroNull:
		return nil
	}
	return &v
}

// Round rounds v half away from zero to places decimals.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// RoundPtr rounds a nullable value.
func RoundPtr(v *float64, places int32) *float64 {
	if v == nil {
		return nil
	}
	r := Round(*v, places)
	return &r
}

// roundInt rounds half away from zero to an int.
func roundInt(v float64) int {
	return int(decimal.NewFromFloat(v).Round(0).IntPart())
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// ClassifyStatus labels the change from prev to cur. Thresholds are compared
// in integer arithmetic: Hot above +25%, Rising above +10%, Stable down to
// -10%, Declining below. A value that appears from nothing is Hot; a value
// absent in both years is New.
func ClassifyStatus(prev, cur int) models.Status {
	p, c := int64(prev), int64(cur)
	switch {
	case p == 0 && c > 0:
		return models.StatusHot
	case p == 0:
		return models.StatusNew
	case c*100 > p*125:
		return models.StatusHot
	case c*100 > p*110:
		return models.StatusRising
	case c*100 >= p*90:
		return models.StatusStable
	default:
		return models.StatusDeclining
	}
}

// ClassifyPhase places an ingredient in its adoption lifecycle.
func ClassifyPhase(prev, cur int, yoy float64) models.Phase {
	switch {
	case prev == 0 && cur > 0:
		return models.PhaseEmerging
	case cur == 0:
		return models.PhaseDeclining
	case yoy > 20:
		return models.PhaseGrowing
	case yoy < -20:
		return models.PhaseDeclining
	default:
		return models.PhaseMature
	}
}

// titleCase upper-cases the first letter of every word.
func titleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

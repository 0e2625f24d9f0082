// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package database

import (
	"math/big"
	"testing"

	"github.com/goccy/go-json"
)

func TestRowAccessors(t *testing.T) {
	t.Parallel()

	row := map[string]any{
		"i64":    int64(12),
		"f64":    float64(12),
		"num":    json.Number("12"),
		"numf":   json.Number("12.5"),
		"str":    "12",
		"name":   "matcha",
		"null":   nil,
		"rating": 4.25,
		"list":   []any{"a", "b"},
		"structs": []any{
			map[string]any{"name": "x"},
			"skip",
		},
	}

	for _, col := range []string{"i64", "f64", "num", "str"} {
		t.Run(col, func(t *testing.T) {
			t.Parallel()
			if got := Int64(row, col); got != 12 {
				t.Errorf("Int64(%s) = %d, want 12", col, got)
			}
			if got := Float64(row, col); got != 12 {
				t.Errorf("Float64(%s) = %v, want 12", col, got)
			}
		})
	}

	if got := Float64(row, "numf"); got != 12.5 {
		t.Errorf("Float64(numf) = %v", got)
	}
	if got := Int(row, "missing"); got != 0 {
		t.Errorf("Int(missing) = %d", got)
	}
	if NullFloat64(row, "null") != nil {
		t.Error("NullFloat64(null) should be nil")
	}
	if p := NullFloat64(row, "rating"); p == nil || *p != 4.25 {
		t.Errorf("NullFloat64(rating) = %v", p)
	}
	if String(row, "name") != "matcha" || String(row, "null") != "" || String(row, "i64") != "12" {
		t.Error("String accessor mismatch")
	}
	if len(List(row, "list")) != 2 || List(row, "name") != nil {
		t.Error("List accessor mismatch")
	}
	if s := Structs(row, "structs"); len(s) != 1 || s[0]["name"] != "x" {
		t.Errorf("Structs = %v", s)
	}
}

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	huge := new(big.Int).Lsh(big.NewInt(1), 80)

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"bytes", []byte("abc"), "abc"},
		{"int32", int32(5), int64(5)},
		{"uint8", uint8(5), int64(5)},
		{"float32", float32(1.5), float64(1.5)},
		{"small bigint", big.NewInt(42), int64(42)},
		{"huge bigint", huge, float64(1 << 80)},
		{"string", "x", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeValue(tt.in); got != tt.want {
				t.Errorf("normalizeValue(%#v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}

	nested := normalizeValue([]any{int32(1), map[string]any{"v": []byte("z")}}).([]any)
	if nested[0] != int64(1) || nested[1].(map[string]any)["v"] != "z" {
		t.Errorf("nested normalize = %#v", nested)
	}
}

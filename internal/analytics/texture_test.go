// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"reflect"
	"testing"

	"github.com/tomtom215/flavorlens/internal/models"
	"github.com/tomtom215/flavorlens/internal/testinfra"
)

func TestTextureAttributes(t *testing.T) {
	exec := testinfra.NewExecutor(t)
	testinfra.CreateAttributeTable(t, exec, "ingredient_texture", "texture_attribute")
	testinfra.SeedMentions(t, exec, "ingredient_texture",
		testinfra.Mention{Ingredient: "matcha", Attribute: "Creamy", Year: 2023, Rating: 4, NumRatings: 10},
		testinfra.Mention{Ingredient: "matcha", Attribute: " creamy", Year: 2024, Rating: 5, NumRatings: 20},
		testinfra.Mention{Ingredient: "matcha", Attribute: "Smooth", Year: 2024},
		testinfra.Mention{Ingredient: "matcha", Attribute: "Crispy", Year: 2024, Rating: 3},
		testinfra.Mention{Ingredient: "matcha", Attribute: "Frothy", Year: 2017},
		testinfra.Mention{Ingredient: "matcha", Attribute: "", Year: 2024},
		testinfra.Mention{Ingredient: "coffee", Attribute: "Creamy", Year: 2022},
	)
	s := newFixtureService(exec)

	got, err := s.TextureAttributes(context.Background(), "Matcha")
	if err != nil {
		t.Fatalf("TextureAttributes() error = %v", err)
	}

	wantAttrs := []models.TextureAttribute{
		{Name: "Creamy", Value: 40, Count: 2, AvgRating: 4.5, TotalRatings: 30, Scale: []string{"Watery", "Creamy"}, Fill: "#00255a"},
		{Name: "Crispy", Value: 20, Count: 1, AvgRating: 3, Scale: []string{"Low", "High"}, Fill: "#199ef3"},
		{Name: "Frothy", Value: 20, Count: 1, Scale: []string{"Flat", "Frothy"}, Fill: "#10B981"},
		{Name: "Smooth", Value: 20, Count: 1, Scale: []string{"Rough", "Smooth"}, Fill: "#F59E0B"},
	}
	if !reflect.DeepEqual(got.Attributes, wantAttrs) {
		t.Errorf("attributes =\n%+v\nwant\n%+v", got.Attributes, wantAttrs)
	}

	// 2017 is before the trend window; 2022 only has another ingredient.
	wantTrends := []models.TextureTrend{
		{Year: "2022"},
		{Year: "2023", Creamy: 1},
		{Year: "2024", Creamy: 1, Smooth: 1},
	}
	if !reflect.DeepEqual(got.Trends, wantTrends) {
		t.Errorf("trends = %+v, want %+v", got.Trends, wantTrends)
	}
}

func TestTextureAttributes_NoMentions(t *testing.T) {
	exec := testinfra.NewExecutor(t)
	testinfra.CreateAttributeTable(t, exec, "ingredient_texture", "texture_attribute")
	s := newFixtureService(exec)

	got, err := s.TextureAttributes(context.Background(), "matcha")
	if err != nil {
		t.Fatalf("TextureAttributes() error = %v", err)
	}
	if got.Attributes == nil || len(got.Attributes) != 0 || got.Trends == nil || len(got.Trends) != 0 {
		t.Errorf("got %+v, want empty lists", got)
	}
}

func TestTextureScale(t *testing.T) {
	tests := map[string][]string{
		"Velvety": {"Rough", "Velvety"},
		"STICKY":  {"Non-sticky", "Sticky"},
		"Oily":    {"Low", "High"},
	}
	for name, want := range tests {
		if got := textureScale(name); !reflect.DeepEqual(got, want) {
			t.Errorf("textureScale(%q) = %v, want %v", name, got, want)
		}
	}
}

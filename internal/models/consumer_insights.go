// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package models

// Attribute is a consumer attribute's share of mentions.
type Attribute struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// KeyAttribute is a frequently mentioned attribute with its average rating.
type KeyAttribute struct {
	Attribute string  `json:"attribute"`
	Mentions  int     `json:"mentions"`
	AvgRating float64 `json:"avg_rating"`
}

// AttributeInsights is the narrative part of the consumer insights view.
type AttributeInsights struct {
	DominantAttribute string         `json:"dominant_attribute"`
	GrowingTrend      string         `json:"growing_trend"`
	DecliningTrend    string         `json:"declining_trend"`
	KeyAttributes     []KeyAttribute `json:"key_attributes"`
	TrendSummary      string         `json:"trend_summary"`
	AttributeType     string         `json:"attribute_type"`
}

// AttributeTrendPoint is one year of the attribute trend chart: the "year"
// key holds the year as a string and every other key is an attribute display
// name mapped to its share of that year's mentions.
type AttributeTrendPoint map[string]any

// AttributeInsightsResponse is returned by the consumer insights endpoint.
type AttributeInsightsResponse struct {
	Attributes    []Attribute           `json:"attributes"`
	Trends        []AttributeTrendPoint `json:"trends"`
	Insights      AttributeInsights     `json:"insights"`
	AttributeType string                `json:"attribute_type"`
}

// TextureAttribute is a texture's share of the ingredient's texture
// mentions. Scale names the low and high ends of the texture axis.
type TextureAttribute struct {
	Name         string   `json:"name"`
	Value        float64  `json:"value"`
	Count        int      `json:"count"`
	AvgRating    float64  `json:"avg_rating"`
	TotalRatings int      `json:"total_ratings"`
	Scale        []string `json:"scale"`
	Fill         string   `json:"fill"`
}

// TextureTrend is one year of mention counts for the tracked textures.
type TextureTrend struct {
	Year    string `json:"year"`
	Creamy  int    `json:"creamy"`
	Smooth  int    `json:"smooth"`
	Thick   int    `json:"thick"`
	Frothy  int    `json:"frothy"`
	Powdery int    `json:"powdery"`
}

// TextureData is returned by the texture attributes endpoint.
type TextureData struct {
	Attributes []TextureAttribute `json:"textureAttributesData"`
	Trends     []TextureTrend     `json:"textureAttributeTrendData"`
}

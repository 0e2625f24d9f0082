// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/database/query"
	"github.com/tomtom215/flavorlens/internal/models"
)

const allSeason = "All-Season"

// seasons are the canonical seasons in response order. key is the
// normalized column value.
var seasons = []struct {
	name, key, column string
}{
	{"Spring", "spring", "spring_dishes"},
	{"Summer", "summer", "summer_dishes"},
	{"Fall", "fall", "fall_dishes"},
	{"Winter", "winter", "winter_dishes"},
	{allSeason, "all-season", "all_season_dishes"},
}

// Season returns the ingredient's seasonal split over dishes that carry
// season data, plus the derived seasonality analysis and summary.
func (s *Service) Season(ctx context.Context, ingredient string) (*models.SeasonResponse, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	where, args := query.NewWhereBuilder().AddContains("ingredient_name", ingredient).Build()

	var b strings.Builder
	b.WriteString(`
	SELECT
		COUNT(DISTINCT dish_id) AS total_dishes,
		COUNT(DISTINCT CASE WHEN TRIM(season) <> '' THEN dish_id END) AS seasoned_dishes`)
	for _, sn := range seasons {
		fmt.Fprintf(&b, `,
		COUNT(DISTINCT CASE WHEN LOWER(TRIM(season)) = '%s' THEN dish_id END) AS %s`, sn.key, sn.column)
	}
	fmt.Fprintf(&b, `
	FROM %s
	WHERE %s`, s.table, where)

	res, err := s.run(ctx, "season", b.String(), args, shortTTL)
	if err != nil {
		return nil, err
	}

	var row map[string]any
	if len(res.Rows) > 0 {
		row = res.Rows[0]
	}
	total := database.Int(row, "total_dishes")
	seasoned := database.Int(row, "seasoned_dishes")

	dist := make([]models.SeasonDistribution, 0, len(seasons))
	for _, sn := range seasons {
		n := database.Int(row, sn.column)
		dist = append(dist, models.SeasonDistribution{
			Name:      sn.name,
			Value:     RoundPtr(Percent(n, seasoned), 2),
			DishCount: n,
		})
	}

	analysis := analyzeSeasons(dist, seasoned, total-seasoned)
	return &models.SeasonResponse{
		Ingredient:   ingredient,
		Distribution: dist,
		Analysis:     analysis,
		Summary:      seasonSummary(ingredient, analysis),
	}, nil
}

func analyzeSeasons(dist []models.SeasonDistribution, seasoned, unseasoned int) models.SeasonAnalysis {
	var all float64
	var four []models.SeasonDistribution
	for _, d := range dist {
		if d.Name == allSeason {
			all = valueOr(d.Value, 0)
			continue
		}
		four = append(four, d)
	}

	a := models.SeasonAnalysis{
		PeakSeason:              "Unknown",
		LowestSeason:            "Unknown",
		YearRoundAppeal:         all,
		SeasonalityIndex:        "Low",
		AllSeasonUsage:          all,
		TotalDishesAnalyzed:     seasoned,
		DishesWithSeasonData:    seasoned,
		DishesWithoutSeasonData: unseasoned,
	}
	if seasoned == 0 || len(four) == 0 {
		return a
	}

	peak, low := four[0], four[0]
	for _, d := range four[1:] {
		if valueOr(d.Value, 0) > valueOr(peak.Value, 0) {
			peak = d
		}
		if valueOr(d.Value, 0) < valueOr(low.Value, 0) {
			low = d
		}
	}
	variation := valueOr(peak.Value, 0) - valueOr(low.Value, 0)

	a.PeakSeason, a.PeakValue = peak.Name, valueOr(peak.Value, 0)
	a.LowestSeason, a.LowestValue = low.Name, valueOr(low.Value, 0)
	a.SeasonalVariation = Round(variation, 2)
	a.YearRoundAppeal = Round(min(100, (100-variation)*0.4+all*0.6), 2)
	switch {
	case variation < 15:
		a.SeasonalityIndex = "Low"
	case variation < 35:
		a.SeasonalityIndex = "Moderate"
	default:
		a.SeasonalityIndex = "High"
	}
	a.IsSeasonalIngredient = variation > 20 || a.PeakValue > 35
	return a
}

func seasonSummary(ingredient string, a models.SeasonAnalysis) string {
	var b strings.Builder
	name := titleCase(ingredient)
	if a.IsSeasonalIngredient {
		fmt.Fprintf(&b, "%s shows strong seasonal preferences, with peak usage in %s (%.1f%% of seasoned dishes). ", name, a.PeakSeason, a.PeakValue)
		if a.SeasonalVariation > 40 {
			fmt.Fprintf(&b, "The ingredient demonstrates high seasonal variation (%.1f%% difference between peak and low seasons), ", a.SeasonalVariation)
		} else {
			fmt.Fprintf(&b, "With moderate seasonal variation (%.1f%% range), ", a.SeasonalVariation)
		}
		if a.AllSeasonUsage > 20 {
			fmt.Fprintf(&b, "it also maintains significant year-round presence (%.1f%% in all-season dishes). ", a.AllSeasonUsage)
		} else {
			fmt.Fprintf(&b, "it shows limited all-season usage (%.1f%%). ", a.AllSeasonUsage)
		}
	} else {
		fmt.Fprintf(&b, "%s demonstrates consistent year-round usage with %s seasonal variation. ", name, strings.ToLower(a.SeasonalityIndex))
		if a.AllSeasonUsage > 30 {
			fmt.Fprintf(&b, "Strong all-season presence (%.1f%%) indicates broad culinary versatility across menu types. ", a.AllSeasonUsage)
		}
		if a.PeakValue > 0 {
			fmt.Fprintf(&b, "While showing slight preference for %s (%.1f%%), the ingredient maintains balanced usage across seasons. ", a.PeakSeason, a.PeakValue)
		} else {
			b.WriteString("The ingredient shows balanced usage across all seasons. ")
		}
	}

	fmt.Fprintf(&b, "Analysis based on %d dishes with season data", a.DishesWithSeasonData)
	if a.DishesWithoutSeasonData > 0 {
		total := a.DishesWithSeasonData + a.DishesWithoutSeasonData
		fmt.Fprintf(&b, " (%.1f%% of %d total dishes)", float64(a.DishesWithSeasonData)*100/float64(total), total)
	}
	b.WriteString(".")
	return b.String()
}

// temperatures are the standardized serving temperatures in response order.
var temperatures = []struct {
	name, fill string
}{
	{"Frozen", "#86EFAC"},
	{"Cold", "#38BDF8"},
	{"Room Temperature", "#00255a"},
	{"Warm", "#FB923C"},
	{"Hot", "#EF4444"},
}

// ServingTemperature returns the ingredient's split across the five
// standardized serving temperatures. Dishes without a recognized
// temperature are ignored. All five temperatures are always returned.
func (s *Service) ServingTemperature(ctx context.Context, ingredient string) ([]models.TemperatureDistribution, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	where, args := query.NewWhereBuilder().AddContains("ingredient_name", ingredient).Build()

	q := fmt.Sprintf(`
	WITH standardized AS (
		SELECT
			dish_id,
			CASE
				WHEN serving_temperature ILIKE '%%frozen%%' THEN 'Frozen'
				WHEN serving_temperature ILIKE '%%cold%%' OR serving_temperature ILIKE '%%chilled%%'
					OR serving_temperature ILIKE '%%cool%%' OR serving_temperature ILIKE '%%refrigerated%%' THEN 'Cold'
				WHEN serving_temperature ILIKE '%%room%%' OR serving_temperature ILIKE '%%ambient%%' THEN 'Room Temperature'
				WHEN serving_temperature ILIKE '%%warm%%' THEN 'Warm'
				WHEN serving_temperature ILIKE '%%hot%%' THEN 'Hot'
			END AS temperature
		FROM %s
		WHERE %s
	)
	SELECT temperature AS name, COUNT(DISTINCT dish_id) AS dish_count
	FROM standardized
	WHERE temperature IS NOT NULL
	GROUP BY temperature`, s.table, where)

	res, err := s.run(ctx, "serving_temperature", q, args, 0)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(res.Rows))
	total := 0
	for _, row := range res.Rows {
		n := database.Int(row, "dish_count")
		counts[database.String(row, "name")] = n
		total += n
	}

	out := make([]models.TemperatureDistribution, 0, len(temperatures))
	for _, t := range temperatures {
		out = append(out, models.TemperatureDistribution{
			Name:      t.name,
			Value:     Round(valueOr(Percent(counts[t.name], total), 0), 1),
			DishCount: counts[t.name],
			Fill:      t.fill,
		})
	}
	return out, nil
}

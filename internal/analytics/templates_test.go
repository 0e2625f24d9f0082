// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/models"
	"github.com/tomtom215/flavorlens/internal/testinfra"
)

// seedMatcha loads a small dataset around matcha. Dish 2 lists matcha twice
// to exercise distinct-dish counting.
func seedMatcha(t *testing.T) *Service {
	t.Helper()

	exec := testinfra.NewExecutor(t)
	testinfra.SeedDishes(t, exec,
		testinfra.Dish{ID: 1, Name: "Matcha Latte", Year: 2024, Category: "Beverages", Subcategory: "Hot Drinks",
			Cuisine: "Japanese", Country: "Japan", Source: SourceRecipe, Rating: 4.5, NumRatings: 120,
			Season: "Spring", Temperature: "Served hot",
			Ingredients: []testinfra.Ingredient{testinfra.Aromatic("matcha"), testinfra.Supporting("vanilla"), testinfra.Background("milk")}},
		testinfra.Dish{ID: 2, Name: "Iced Matcha", Year: 2024, Category: "Beverages", Subcategory: "Cold Drinks",
			Cuisine: "Japanese", Country: "Japan", Source: SourceMenu, Rating: 4.0, NumRatings: 40,
			Season: " spring ", Temperature: "iced cold",
			Ingredients: []testinfra.Ingredient{testinfra.Aromatic("Matcha powder"), testinfra.Aromatic("matcha"), testinfra.Supporting("vanilla")}},
		testinfra.Dish{ID: 3, Name: "Matcha Tart", Year: 2024, Category: "Desserts", Subcategory: "Pastry",
			Cuisine: "French", Country: "France", Source: SourceRecipe, Rating: 3.5, NumRatings: 10,
			Season: "Winter",
			Ingredients: []testinfra.Ingredient{testinfra.Aromatic("matcha"), testinfra.Supporting("vanilla"), testinfra.Supporting("honey")}},
		testinfra.Dish{ID: 4, Name: "Matcha Mochi", Year: 2023, Category: "Desserts", Subcategory: "Pastry",
			Cuisine: "Japanese", Country: "Japan", Source: SourceRecipe, Rating: 5.0, NumRatings: 80,
			Season: "All-Season",
			Ingredients: []testinfra.Ingredient{testinfra.Aromatic("matcha"), testinfra.Supporting("vanilla"), testinfra.Supporting("honey")}},
		testinfra.Dish{ID: 5, Name: "Cold Brew", Year: 2024, Category: "Bakery", Cuisine: "American", Country: "USA",
			Source: SourceSocial, Ingredients: []testinfra.Ingredient{testinfra.Aromatic("coffee")}},
		testinfra.Dish{ID: 6, Name: "Espresso", Year: 2023, Category: "Beverages", Cuisine: "Japanese", Country: "Japan",
			Source: SourceMenu, Ingredients: []testinfra.Ingredient{testinfra.Aromatic("coffee")}},
	)
	return newFixtureService(exec)
}

func newFixtureService(q Querier) *Service {
	s := newTestService(q)
	s.table = testinfra.DishTable
	return s
}

func TestDistribution_Matcha(t *testing.T) {
	s := seedMatcha(t)

	got, err := s.Distribution(context.Background(), DimCategory, "MATCHA", Filter{})
	if err != nil {
		t.Fatalf("Distribution() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rows = %+v, want Beverages and Desserts", got)
	}
	if got[0].Name != "Beverages" || got[0].DishCount != 2 || got[0].PreviousCount != 0 {
		t.Errorf("first = %+v, want Beverages with 2 distinct dishes", got[0])
	}
	if got[1].Name != "Desserts" || got[1].DishCount != 1 || *got[1].YoYGrowthPercentage != 0 {
		t.Errorf("second = %+v", got[1])
	}

	var sum float64
	for i, r := range got {
		if i > 0 && r.DishCount > got[i-1].DishCount {
			t.Errorf("not sorted by dish count at %d", i)
		}
		sum += *r.Value
	}
	if sum > 100.5 {
		t.Errorf("values sum to %.2f", sum)
	}
}

func TestPenetration_Matcha(t *testing.T) {
	s := seedMatcha(t)

	got, err := s.Penetration(context.Background(), DimCategory, "matcha", Filter{})
	if err != nil {
		t.Fatalf("Penetration() error = %v", err)
	}
	byName := make(map[string]models.PenetrationRow, len(got))
	for _, r := range got {
		byName[r.Name] = r
	}
	if r := byName["Desserts"]; r.Penetration != 100 || r.Status != models.StatusStable {
		t.Errorf("Desserts = %+v", r)
	}
	if r := byName["Beverages"]; r.IngredientDishes != 2 || r.TotalDishes != 3 || r.Penetration != 66.7 || r.Status != models.StatusHot {
		t.Errorf("Beverages = %+v", r)
	}
	if _, ok := byName["Bakery"]; ok {
		t.Error("Bakery has no matcha dishes but was returned")
	}
}

func TestTrends_PadsMissingYears(t *testing.T) {
	s := seedMatcha(t)

	got, err := s.Trends(context.Background(), DimCategory, "matcha", Filter{})
	if err != nil {
		t.Fatalf("Trends() error = %v", err)
	}
	if !reflect.DeepEqual(got.Years, []int{2023, 2024}) {
		t.Fatalf("years = %v", got.Years)
	}
	for _, s := range got.Categories {
		if s.Name == "Beverages" {
			if !reflect.DeepEqual(s.AbsoluteValues, []int{0, 2}) || !reflect.DeepEqual(s.Values, []float64{0, 100}) {
				t.Errorf("Beverages = %v / %v", s.Values, s.AbsoluteValues)
			}
			return
		}
	}
	t.Errorf("no Beverages series in %+v", got.Categories)
}

func TestPhase_TurmericEmerging(t *testing.T) {
	exec := testinfra.NewExecutor(t)
	var dishes []testinfra.Dish
	for i := 0; i < 12; i++ {
		dishes = append(dishes, testinfra.Dish{
			ID: 100 + i, Name: "Golden Bowl", Year: 2024, Category: "Bowls", Source: SourceRecipe,
			Ingredients: []testinfra.Ingredient{testinfra.Aromatic("turmeric")},
		})
	}
	testinfra.SeedDishes(t, exec, dishes...)
	s := newFixtureService(exec)

	got, err := s.Phase(context.Background(), "turmeric", SourceRecipe)
	if err != nil {
		t.Fatalf("Phase() error = %v", err)
	}
	if got.Phase != models.PhaseEmerging || got.CurrentYearCount != 12 || got.PreviousYearCount != 0 {
		t.Errorf("phase = %+v", got)
	}
	if got.YoYGrowthPercent != nil {
		t.Errorf("yoy = %v, want nil", *got.YoYGrowthPercent)
	}
	if !strings.Contains(got.Description, "12") {
		t.Errorf("description %q does not mention 12", got.Description)
	}

	menu, err := s.Phase(context.Background(), "turmeric", SourceMenu)
	if err != nil {
		t.Fatalf("Phase(menu) error = %v", err)
	}
	if menu.Description != "No dishes recorded in 2023 or 2024" {
		t.Errorf("menu description = %q", menu.Description)
	}
}

func TestShareAndSummaryStats(t *testing.T) {
	s := seedMatcha(t)
	ctx := context.Background()

	share, err := s.Share(ctx, "matcha", SourceMenu)
	if err != nil {
		t.Fatalf("Share() error = %v", err)
	}
	if share.SharePercent == nil || *share.SharePercent != 100 || share.ChangePercent != GrowthSentinel || !share.IsPositive {
		t.Errorf("menu share = %+v", share)
	}

	social, err := s.Share(ctx, "matcha", SourceSocial)
	if err != nil {
		t.Fatalf("Share(social) error = %v", err)
	}
	if social.SharePercent == nil || *social.SharePercent != 0 || social.ChangePercent != 0 || social.IsPositive {
		t.Errorf("social share = %+v", social)
	}

	stats, err := s.SummaryStats(ctx, "matcha")
	if err != nil {
		t.Fatalf("SummaryStats() error = %v", err)
	}
	if len(stats.Metrics) != 4 {
		t.Fatalf("metrics = %+v", stats.Metrics)
	}
	menu := stats.Metrics[1]
	if menu.Title != "Menu Share" || menu.Value != "100.0%" || menu.Growth != "+100.0%" || !*menu.IsPositive {
		t.Errorf("menu box = %+v", menu)
	}
	phase := stats.Metrics[3]
	if phase.Value != string(models.PhaseGrowing) || phase.Phase != 2 || phase.TotalPhases != 4 {
		t.Errorf("phase box = %+v", phase)
	}
}

func TestSeasonAndTemperature(t *testing.T) {
	s := seedMatcha(t)
	ctx := context.Background()

	season, err := s.Season(ctx, "matcha")
	if err != nil {
		t.Fatalf("Season() error = %v", err)
	}
	want := map[string]float64{"Spring": 50, "Summer": 0, "Fall": 0, "Winter": 25, "All-Season": 25}
	if len(season.Distribution) != 5 {
		t.Fatalf("distribution = %+v", season.Distribution)
	}
	for _, d := range season.Distribution {
		if d.Value == nil || *d.Value != want[d.Name] {
			t.Errorf("%s = %v, want %v", d.Name, d.Value, want[d.Name])
		}
	}
	if season.Analysis.PeakSeason != "Spring" || season.Analysis.SeasonalityIndex != "High" || season.Analysis.DishesWithSeasonData != 4 {
		t.Errorf("analysis = %+v", season.Analysis)
	}

	temps, err := s.ServingTemperature(ctx, "matcha")
	if err != nil {
		t.Fatalf("ServingTemperature() error = %v", err)
	}
	names := make([]string, len(temps))
	for i, tp := range temps {
		names[i] = tp.Name
	}
	if !reflect.DeepEqual(names, []string{"Frozen", "Cold", "Room Temperature", "Warm", "Hot"}) {
		t.Errorf("order = %v", names)
	}
	if temps[1].Value != 50 || temps[4].Value != 50 || temps[0].DishCount != 0 {
		t.Errorf("temperatures = %+v", temps)
	}
}

func TestPairings_ExcludesRarePartners(t *testing.T) {
	s := seedMatcha(t)
	ctx := context.Background()

	got, err := s.Pairings(ctx, "matcha", PairingsParams{})
	if err != nil {
		t.Fatalf("Pairings() error = %v", err)
	}
	if got.TotalPairings != 1 || len(got.Pairings) != 1 {
		t.Fatalf("pairings = %+v, want vanilla only (honey has 2 dishes, milk is background)", got.Pairings)
	}
	p := got.Pairings[0]
	if p.Title != "Matcha + Vanilla" || p.DishCount != 4 || p.SharePercent != 100 {
		t.Errorf("pairing = %+v", p)
	}
	if p.AppealScore != 85 || p.LifecyclePhase != "growing" || p.DominantIngredientPercent != 100 || p.PartnerIngredientPercent != 0 {
		t.Errorf("scores = %+v", p)
	}
	if !reflect.DeepEqual(p.TopDishes, []string{"Matcha Mochi", "Matcha Latte", "Iced Matcha", "Matcha Tart"}) {
		t.Errorf("top dishes = %v", p.TopDishes)
	}
	wantApps := []models.TopApplication{{Application: "Beverages", Percentage: 50}, {Application: "Desserts", Percentage: 50}}
	if !reflect.DeepEqual(p.TopApplications, wantApps) {
		t.Errorf("applications = %+v", p.TopApplications)
	}
	if got.Pagination.TotalPages != 1 || got.Pagination.HasNext || got.Pagination.HasPrevious {
		t.Errorf("pagination = %+v", got.Pagination)
	}

	filtered := []PairingsParams{
		{Search: "xyz"},
		{LifecyclePhase: "mature"},
		{Category: "Bakery"},
		{Page: 2},
	}
	for _, params := range filtered {
		res, err := s.Pairings(ctx, "matcha", params)
		if err != nil {
			t.Fatalf("Pairings(%+v) error = %v", params, err)
		}
		if len(res.Pairings) != 0 {
			t.Errorf("Pairings(%+v) = %+v, want none", params, res.Pairings)
		}
	}
}

func TestConsumerInsights(t *testing.T) {
	s := seedMatcha(t)
	fixture := s.exec.(*database.Executor)
	testinfra.CreateAttributeTable(t, fixture, "ingredient_flavor", "flavor_attribute")
	testinfra.SeedMentions(t, fixture, "ingredient_flavor",
		testinfra.Mention{Ingredient: "matcha", Attribute: "Earthy", Year: 2023, Rating: 4},
		testinfra.Mention{Ingredient: "matcha", Attribute: "Earthy", Year: 2023, Rating: 5},
		testinfra.Mention{Ingredient: "matcha", Attribute: "Sweet", Year: 2023},
		testinfra.Mention{Ingredient: "matcha", Attribute: "Earthy", Year: 2024, Rating: 3},
		testinfra.Mention{Ingredient: "matcha", Attribute: "bitter", Year: 2024},
		testinfra.Mention{Ingredient: "matcha", Attribute: " Bitter", Year: 2024},
		testinfra.Mention{Ingredient: "coffee", Attribute: "Bitter", Year: 2024},
	)
	ctx := context.Background()

	got, err := s.ConsumerInsights(ctx, "matcha", "flavor", YearRange{})
	if err != nil {
		t.Fatalf("ConsumerInsights() error = %v", err)
	}
	wantAttrs := []models.Attribute{{Name: "Earthy", Value: 50}, {Name: "Bitter", Value: 33.3}, {Name: "Sweet", Value: 16.7}}
	if !reflect.DeepEqual(got.Attributes, wantAttrs) {
		t.Errorf("attributes = %+v", got.Attributes)
	}
	if len(got.Trends) != 2 || got.Trends[0]["year"] != "2023" || got.Trends[0]["Bitter"] != 0.0 {
		t.Errorf("trends = %+v", got.Trends)
	}
	in := got.Insights
	if in.DominantAttribute != "Earthy" || in.GrowingTrend != "Earthy" || in.DecliningTrend != "Sweet" || in.AttributeType != "flavor" {
		t.Errorf("insights = %+v", in)
	}
	if len(in.KeyAttributes) == 0 || in.KeyAttributes[0].Attribute != "Earthy" || in.KeyAttributes[0].Mentions != 3 || in.KeyAttributes[0].AvgRating != 4 {
		t.Errorf("key attributes = %+v", in.KeyAttributes)
	}

	start := 2024
	recent, err := s.ConsumerInsights(ctx, "matcha", "flavor", YearRange{Start: &start})
	if err != nil {
		t.Fatalf("ConsumerInsights(start) error = %v", err)
	}
	if len(recent.Attributes) == 0 || recent.Attributes[0].Name != "Bitter" {
		t.Errorf("recent attributes = %+v", recent.Attributes)
	}
}

func TestTopDishesAndCuisine(t *testing.T) {
	s := seedMatcha(t)
	ctx := context.Background()

	dishes, err := s.TopDishes(ctx, "matcha", DishFilter{Source: SourceRecipe})
	if err != nil {
		t.Fatalf("TopDishes() error = %v", err)
	}
	var names []string
	for _, d := range dishes {
		names = append(names, d.Name)
	}
	if !reflect.DeepEqual(names, []string{"Matcha Mochi", "Matcha Latte", "Matcha Tart"}) {
		t.Errorf("dishes = %v", names)
	}
	if dishes[0].Rating == nil || *dishes[0].Rating != 5 || dishes[0].Reviews == nil || *dishes[0].Reviews != 80 {
		t.Errorf("first dish = %+v", dishes[0])
	}

	cuisine, err := s.CuisineAnalysis(ctx, "matcha")
	if err != nil {
		t.Fatalf("CuisineAnalysis() error = %v", err)
	}
	if cuisine.TotalCuisines != 1 || cuisine.CuisineData[0].Cuisine != "Japanese" ||
		cuisine.CuisineData[0].DishCount != 3 || cuisine.CuisineData[0].Penetration != 75 {
		t.Errorf("cuisine analysis = %+v", cuisine.CuisineData)
	}
}

func TestUnknownIngredientIsEmpty(t *testing.T) {
	s := seedMatcha(t)
	ctx := context.Background()
	const none = "unobtainium"

	dist, err := s.Distribution(ctx, DimCountry, none, Filter{})
	if err != nil || dist == nil || len(dist) != 0 {
		t.Errorf("Distribution = %#v, %v", dist, err)
	}
	trends, err := s.Trends(ctx, DimCategory, none, Filter{})
	if err != nil || len(trends.Categories) != 0 || trends.Analysis.TopPerformer != "Unknown" {
		t.Errorf("Trends = %+v, %v", trends, err)
	}
	cuisine, err := s.CuisineAnalysis(ctx, none)
	if err != nil || cuisine.HighestGrowthCuisine != nil || len(cuisine.PieData) != 0 {
		t.Errorf("CuisineAnalysis = %+v, %v", cuisine, err)
	}
	pairs, err := s.Pairings(ctx, none, PairingsParams{})
	if err != nil || pairs.TotalPairings != 0 || pairs.Pairings == nil || pairs.Pagination.TotalPages != 0 {
		t.Errorf("Pairings = %+v, %v", pairs, err)
	}
	season, err := s.Season(ctx, none)
	if err != nil || season.Distribution[0].Value != nil || season.Analysis.PeakSeason != "Unknown" {
		t.Errorf("Season = %+v, %v", season, err)
	}
	dishes, err := s.TopDishes(ctx, none, DishFilter{})
	if err != nil || dishes == nil || len(dishes) != 0 {
		t.Errorf("TopDishes = %#v, %v", dishes, err)
	}
	regions, err := s.Regions(ctx, none)
	if err != nil || len(regions.Regions) != 0 || len(regions.RegionalInsights) != 0 {
		t.Errorf("Regions = %+v, %v", regions, err)
	}
}

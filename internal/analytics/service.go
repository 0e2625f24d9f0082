// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/flavorlens/internal/config"
	"github.com/tomtom215/flavorlens/internal/database"
)

// shortTTL is used by the share, phase, season and summary templates.
const shortTTL = 10 * time.Minute

// ErrEmptyIngredient is returned when the ingredient is blank.
var ErrEmptyIngredient = errors.New("ingredient must not be empty")

// Querier runs a parameterized query. *database.Executor satisfies it.
type Querier interface {
	Execute(ctx context.Context, query string, args []any, opts database.Options) (*database.QueryResult, error)
}

// Service builds and runs the metric templates.
type Service struct {
	exec  Querier
	cfg   config.AnalyticsConfig
	table string
	now   func() time.Time
}

// NewService creates a Service over exec. table is the dish table name and
// must already be validated as an identifier.
func NewService(exec Querier, cfg config.AnalyticsConfig, table string) *Service {
	if table == "" {
		table = "ingredient_details"
	}
	if cfg.TrendMaxPoints <= 0 {
		cfg.TrendMaxPoints = 7
	}
	if cfg.TrendStartYear <= 0 {
		cfg.TrendStartYear = 2018
	}
	return &Service{exec: exec, cfg: cfg, table: table, now: time.Now}
}

// years returns the current (reference) year and the one before it.
func (s *Service) years() (current, previous int) {
	current = s.cfg.CurrentYear(s.now())
	return current, current - 1
}

// run executes a cacheable template query and records it on the request's
// QueryStats. ttl 0 uses the executor default.
func (s *Service) run(ctx context.Context, template, query string, args []any, ttl time.Duration) (*database.QueryResult, error) {
	res, err := s.exec.Execute(ctx, query, args, database.Options{
		Template:  template,
		Cacheable: true,
		TTL:       ttl,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", template, err)
	}
	statsFrom(ctx).record(res)
	return res, nil
}

func cleanIngredient(ingredient string) (string, error) {
	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return "", ErrEmptyIngredient
	}
	return ingredient, nil
}

// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestTruncateQuery(t *testing.T) {
	t.Parallel()

	long := "SELECT " + strings.Repeat("col, ", 60) + "x FROM flavorlens"

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"short", "SELECT 1", len("SELECT 1")},
		{"exact", strings.Repeat("a", MaxQueryLogLength), MaxQueryLogLength},
		{"long", long, MaxQueryLogLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := len([]rune(TruncateQuery(tt.query))); got != tt.want {
				t.Errorf("len(TruncateQuery) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTruncateQuery_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	got := TruncateQuery("SELECT\n\t  a,\n  b\nFROM t")
	if got != "SELECT a, b FROM t" {
		t.Errorf("TruncateQuery = %q", got)
	}
}

func TestLogQuery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))

	LogQuery(ctx, QueryEvent{
		Template: "pairings",
		Query:    strings.Repeat("SELECT * FROM flavorlens ", 20),
		Args:     []any{"%matcha%", 2024},
		Duration: 2 * time.Second,
		Err:      errors.New("Binder Error"),
	})

	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("expected error level: %s", out)
	}
	if !strings.Contains(out, `"template":"pairings"`) {
		t.Errorf("expected template field: %s", out)
	}
	if !strings.Contains(out, `"args":["%matcha%",2024]`) {
		t.Errorf("expected bound args: %s", out)
	}
	if strings.Count(out, "FROM flavorlens") > 5 {
		t.Errorf("query text was not truncated: %s", out)
	}
}

func TestLogQuery_SuccessCarriesArgs(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	logger := NewTestLogger(&buf).Level(zerolog.DebugLevel)
	ctx := ContextWithLogger(context.Background(), logger)

	LogQuery(ctx, QueryEvent{
		Template: "season",
		Query:    "SELECT season FROM flavorlens WHERE ingredient_name ILIKE ?",
		Args:     []any{"%yuzu%"},
		Rows:     4,
		Cached:   true,
	})

	out := buf.String()
	for _, want := range []string{`"level":"debug"`, `"args":["%yuzu%"]`, `"rows":4`, `"cached":true`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
}

func TestRedactDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"md:flavorlens", "md:flavorlens"},
		{"md:flavorlens?motherduck_token=abc123", "md:flavorlens?motherduck_token=REDACTED"},
		{"data.duckdb?access_mode=READ_ONLY&password=x", "data.duckdb?access_mode=READ_ONLY&password=REDACTED"},
	}
	for _, tt := range tests {
		if got := RedactDSN(tt.in); got != tt.want {
			t.Errorf("RedactDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

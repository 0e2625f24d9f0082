// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/logging"
)

func TestRespondServiceError_LogsQueryArgs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/api/phase?ingredient=matcha", nil)
	req = req.WithContext(logging.ContextWithLogger(req.Context(), logging.NewTestLogger(&buf)))
	rec := httptest.NewRecorder()

	respondServiceError(rec, req, &database.QueryError{
		Op:    "execute",
		Query: "SELECT COUNT(*) FROM flavorlens WHERE ingredient_name ILIKE ? AND year = ?",
		Args:  []any{"%matcha%", 2024},
		Err:   errors.New("Binder Error"),
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	out := buf.String()
	for _, want := range []string{
		`"level":"error"`,
		`"op":"execute"`,
		`"args":["%matcha%",2024]`,
		`"path":"/api/phase"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %s: %s", want, out)
		}
	}
	if strings.Contains(rec.Body.String(), "%matcha%") {
		t.Error("bound args leaked to the client")
	}
}

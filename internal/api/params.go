// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/flavorlens/internal/models"
	"github.com/tomtom215/flavorlens/internal/validation"
)

// paramError is a query parameter that could not be parsed.
type paramError struct {
	field string
	want  string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be %s", e.field, e.want)
}

// queryParams reads query parameters and remembers the first parse failure.
type queryParams struct {
	r   *http.Request
	err *paramError
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

// String returns the trimmed value of key, or def when absent or blank.
func (q *queryParams) String(key, def string) string {
	v := strings.TrimSpace(q.r.URL.Query().Get(key))
	if v == "" {
		return def
	}
	return v
}

// Int returns key as an integer, or def when absent.
func (q *queryParams) Int(key string, def int) int {
	v := q.String(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.fail(key, "an integer")
		return def
	}
	return n
}

// OptionalInt returns key as an integer pointer, nil when absent.
func (q *queryParams) OptionalInt(key string) *int {
	v := q.String(key, "")
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.fail(key, "an integer")
		return nil
	}
	return &n
}

// OptionalFloat returns key as a float pointer, nil when absent.
func (q *queryParams) OptionalFloat(key string) *float64 {
	v := q.String(key, "")
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		q.fail(key, "a number")
		return nil
	}
	return &f
}

func (q *queryParams) fail(field, want string) {
	if q.err == nil {
		q.err = &paramError{field: field, want: want}
	}
}

// check reports a parse failure or a validation failure of v, writing the 400
// response. It returns false when the handler must stop.
func (q *queryParams) check(w http.ResponseWriter, v any) bool {
	if q.err != nil {
		respondError(w, q.r, http.StatusBadRequest, &models.APIError{
			Code:    models.ErrCodeBadRequest,
			Message: q.err.Error(),
			Details: map[string]any{"field": q.err.field},
		})
		return false
	}
	if verr := validation.ValidateStruct(v); verr != nil {
		respondError(w, q.r, http.StatusBadRequest, verr.ToAPIError())
		return false
	}
	return true
}

// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/flavorlens/internal/models"
)

// FieldError is one failed rule on one query parameter.
type FieldError struct {
	Field   string // query parameter name
	Tag     string // failed rule, e.g. "max" or "oneof"
	Param   string // rule argument, e.g. "100" for max=100
	Value   any
	Message string
}

// Errors is the set of failed rules for a parameter struct. A nil Errors
// means the struct is valid.
type Errors []FieldError

func (errs Errors) Error() string {
	if len(errs) == 0 {
		return "validation failed"
	}
	return errs.joined()
}

func (errs Errors) joined() string {
	msgs := make([]string, len(errs))
	for i, fe := range errs {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// ToAPIError builds the VALIDATION_ERROR body. A single failure reports its
// field and tag (plus the allow-list for oneof); several failures are listed
// under details.fields.
func (errs Errors) ToAPIError() *models.APIError {
	apiErr := &models.APIError{Code: models.ErrCodeValidation, Message: "Validation failed"}

	switch len(errs) {
	case 0:
	case 1:
		fe := errs[0]
		apiErr.Message = fe.Message
		apiErr.Details = map[string]any{"field": fe.Field, "tag": fe.Tag}
		if fe.Tag == "oneof" {
			apiErr.Details["allowed"] = strings.Fields(fe.Param)
		}
	default:
		fields := make([]map[string]any, len(errs))
		for i, fe := range errs {
			fields[i] = map[string]any{"field": fe.Field, "tag": fe.Tag, "message": fe.Message}
		}
		apiErr.Message = errs.joined()
		apiErr.Details = map[string]any{"fields": fields}
	}
	return apiErr
}

// instance is built once; validator.Validate caches struct metadata and is
// safe for concurrent use.
var instance = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(queryTagName)
	v.RegisterStructValidation(yearRangeOrder, ConsumerInsightsParams{})
	return v
})

// queryTagName reports fields under their `query` tag name.
func queryTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("query"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// ValidateStruct checks s against its validate tags.
func ValidateStruct(s any) Errors {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return Errors{{Field: "unknown", Tag: "unknown", Message: err.Error()}}
	}

	out := make(Errors, len(ves))
	for i, fe := range ves {
		out[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: message(fe),
		}
	}
	return out
}

// messages renders a failed rule. Length rules on strings count characters.
var messages = map[string]func(field, param string, isString bool) string{
	"required": func(f, _ string, _ bool) string { return f + " is required" },
	"year_order": func(f, _ string, _ bool) string {
		return f + " must not be after end_year"
	},
	"oneof": func(f, p string, _ bool) string {
		return fmt.Sprintf("%s must be one of: %s", f, strings.Join(strings.Fields(p), ", "))
	},
	"gte": func(f, p string, _ bool) string { return fmt.Sprintf("%s must be greater than or equal to %s", f, p) },
	"lte": func(f, p string, _ bool) string { return fmt.Sprintf("%s must be less than or equal to %s", f, p) },
	"gt":  func(f, p string, _ bool) string { return fmt.Sprintf("%s must be greater than %s", f, p) },
	"lt":  func(f, p string, _ bool) string { return fmt.Sprintf("%s must be less than %s", f, p) },
	"min": func(f, p string, s bool) string { return fmt.Sprintf("%s must be at least %s", f, withUnit(p, s)) },
	"max": func(f, p string, s bool) string { return fmt.Sprintf("%s must be at most %s", f, withUnit(p, s)) },
}

func withUnit(param string, isString bool) string {
	if isString {
		return param + " characters"
	}
	return param
}

func message(fe validator.FieldError) string {
	if render, ok := messages[fe.Tag()]; ok {
		return render(fe.Field(), fe.Param(), fe.Kind() == reflect.String)
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

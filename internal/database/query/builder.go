// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package query

import (
	"fmt"
	"strings"
)

// likeEscaper escapes the ILIKE wildcard characters and the escape character itself.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes s for use inside an ILIKE pattern with ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern returns the bound value for a case-insensitive substring
// match of s: %<escaped s>%.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// ContainsClause returns the SQL fragment matching column against a bound
// ContainsPattern. column must come from code, never from user input.
func ContainsClause(column string) string {
	return column + ` ILIKE ? ESCAPE '\'`
}

// NotContainsClause is the negation of ContainsClause.
func NotContainsClause(column string) string {
	return column + ` NOT ILIKE ? ESCAPE '\'`
}

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
// User values are always bound; column names are supplied by callers from
// fixed identifiers.
//
//	wb := query.NewWhereBuilder()
//	wb.AddContains("ingredient_name", "garlic")
//	wb.AddContains("general_category", category) // skipped when empty
//	wb.AddYearRange("year", start, end)
//	where, args := wb.Build()
//	// ingredient_name ILIKE ? ESCAPE '\' AND year >= ? AND year <= ?
type WhereBuilder struct {
	clauses []string
	args    []any
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []any{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
func (wb *WhereBuilder) AddClause(clause string, args ...any) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddContains adds a case-insensitive substring filter. Empty (after trim)
// values are skipped.
func (wb *WhereBuilder) AddContains(column, value string) *WhereBuilder {
	value = strings.TrimSpace(value)
	if value == "" {
		return wb
	}
	return wb.AddClause(ContainsClause(column), ContainsPattern(value))
}

// AddEquals adds "column = ?". Empty strings are skipped.
func (wb *WhereBuilder) AddEquals(column string, value any) *WhereBuilder {
	if s, ok := value.(string); ok && s == "" {
		return wb
	}
	return wb.AddClause(column+" = ?", value)
}

// AddYearRange adds inclusive bounds on an integer year column. Nil bounds
// are skipped.
func (wb *WhereBuilder) AddYearRange(column string, start, end *int) *WhereBuilder {
	if start != nil {
		wb.AddClause(column+" >= ?", *start)
	}
	if end != nil {
		wb.AddClause(column+" <= ?", *end)
	}
	return wb
}

// AddIn adds "column IN (?, ...)". An empty list is skipped.
func (wb *WhereBuilder) AddIn(column string, values ...any) *WhereBuilder {
	if len(values) == 0 {
		return wb
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	return wb.AddClause(fmt.Sprintf("%s IN (%s)", column, placeholders), values...)
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
func (wb *WhereBuilder) Build() (string, []any) {
	if len(wb.clauses) == 0 {
		return "1=1", []any{}
	}
	args := make([]any, len(wb.args))
	copy(args, wb.args)
	return strings.Join(wb.clauses, " AND "), args
}

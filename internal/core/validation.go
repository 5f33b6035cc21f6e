package core

// validation.go turns raw catalog rows into suits.
//
// Validation happens at two levels:
//  1. Header validation: the code, type and durability columns must be present
//     (any order, case-insensitive)
//  2. Row validation: each cell is cleaned and checked against the suit invariants
//
// Row failures are returned as ValidationError so the store can attach the
// file and line before surfacing them as a DataCorruptionError.

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a single validation error for a field.
type ValidationError struct {
	Field   string // Column name
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
}

// ValidateHeaders checks that every catalog column exists in the header row.
// Returns the column positions, or an error listing missing columns.
func ValidateHeaders(headers []string) (HeaderIndex, error) {
	idx := MakeHeaderIndex(headers)
	var missing []string

	for _, col := range Header() {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrInvalidHeader, strings.Join(missing, ", "))
	}
	return idx, nil
}

// ParseRow builds a suit from a catalog row. A malformed code, an unknown
// category or a non-integer durability is rejected; an integer durability
// outside [MinDurability, MaxDurability] is clamped.
func ParseRow(row []string, idx HeaderIndex) (Suit, error) {
	cell := func(col string) (string, error) {
		pos, ok := idx[col]
		if !ok || pos >= len(row) {
			return "", ValidationError{Field: col, Message: "missing value"}
		}
		return CleanCell(row[pos]), nil
	}

	code, err := cell(ColumnCode)
	if err != nil {
		return Suit{}, err
	}
	if !ValidateCode(code) {
		return Suit{}, ValidationError{Field: ColumnCode, Value: code, Message: "must be 6 digits with first digit not 0"}
	}

	label, err := cell(ColumnType)
	if err != nil {
		return Suit{}, err
	}
	category := ParseCategory(label)
	if !category.Valid() {
		return Suit{}, ValidationError{Field: ColumnType, Value: label, Message: "unknown suit type"}
	}

	raw, err := cell(ColumnDurability)
	if err != nil {
		return Suit{}, err
	}
	durability, err := strconv.Atoi(raw)
	if err != nil {
		return Suit{}, ValidationError{Field: ColumnDurability, Value: raw, Message: "not an integer"}
	}

	suit, err := NewSuit(code, category, durability)
	if err != nil {
		return Suit{}, ValidationError{Field: ColumnCode, Value: code, Message: err.Error()}
	}
	return suit, nil
}

// FormatRow renders a suit as a catalog row in header order.
func FormatRow(s Suit) []string {
	return []string{s.Code, s.Category.Label(), strconv.Itoa(s.Durability)}
}

package core

import (
	"fmt"
	"strings"
)

// Durability bounds and the repair step.
const (
	MinDurability          = 0
	MaxDurability          = 100
	DefaultRepairIncrement = 25
)

// CodeLength is the number of digits in a suit code.
const CodeLength = 6

// Category identifies a suit family. The set is closed; CategoryUnknown only
// shows up when a label outside the set is parsed.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryPower
	CategoryStealth
	CategoryDisguise
)

// Category labels as they appear in the catalog file.
const (
	LabelPower    = "ชุดทรงพลัง"
	LabelStealth  = "ชุดลอบเร้น"
	LabelDisguise = "ชุดปกปิดตัวตน"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{CategoryPower, CategoryStealth, CategoryDisguise}
}

// ParseCategory maps a catalog label to its Category.
// Returns CategoryUnknown for anything outside the closed set.
func ParseCategory(label string) Category {
	switch strings.TrimSpace(label) {
	case LabelPower:
		return CategoryPower
	case LabelStealth:
		return CategoryStealth
	case LabelDisguise:
		return CategoryDisguise
	default:
		return CategoryUnknown
	}
}

// Label returns the label written to the catalog file.
func (c Category) Label() string {
	switch c {
	case CategoryPower:
		return LabelPower
	case CategoryStealth:
		return LabelStealth
	case CategoryDisguise:
		return LabelDisguise
	default:
		return ""
	}
}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	return c >= CategoryPower && c <= CategoryDisguise
}

func (c Category) String() string {
	switch c {
	case CategoryPower:
		return "power"
	case CategoryStealth:
		return "stealth"
	case CategoryDisguise:
		return "disguise"
	default:
		return "unknown"
	}
}

// Suit is a single catalog entry.
type Suit struct {
	Code       string   // Six digits, first digit not '0'
	Category   Category // Decides the acceptance rule and the tally bucket
	Durability int      // Always within [MinDurability, MaxDurability]
}

// NewSuit builds a suit, rejecting malformed codes and clamping durability.
func NewSuit(code string, category Category, durability int) (Suit, error) {
	if !ValidateCode(code) {
		return Suit{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	return Suit{
		Code:       code,
		Category:   category,
		Durability: ClampDurability(durability),
	}, nil
}

// ClampDurability forces d into [MinDurability, MaxDurability].
func ClampDurability(d int) int {
	return max(MinDurability, min(MaxDurability, d))
}

// Catalog file columns, in write order.
const (
	ColumnCode       = "code"
	ColumnType       = "type"
	ColumnDurability = "durability"
)

// Header returns the header row of the catalog file.
func Header() []string {
	return []string{ColumnCode, ColumnType, ColumnDurability}
}

// HeaderIndex maps column names (lowercase) to their position in a CSV row.
type HeaderIndex map[string]int

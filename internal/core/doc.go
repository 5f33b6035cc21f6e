// Package core provides the business rules for the suit catalog.
//
// This package holds the domain types and the pure rules that the catalog
// store and the interactive session are built on. It has no I/O of its own
// beyond reader adapters, so it can be used by the CLI, the store, or tests
// without modification.
//
// # Suits
//
// A [Suit] is identified by a six digit code whose first digit is not zero
// (see [ValidateCode]). Every suit belongs to exactly one [Category] and
// carries a durability score clamped to [MinDurability, MaxDurability].
//
// # Acceptance
//
// [MeetsCriteria] decides whether a suit is usable as-is. The rule depends on
// the category:
//
//   - Power: durability >= 70
//   - Stealth: durability >= 50
//   - Disguise: the last digit of durability is neither 3 nor 7
//
// Any other category never passes.
//
// # Repair
//
// [Repair] raises durability by an increment, saturating at [MaxDurability].
// The canonical increment is [DefaultRepairIncrement]. Repair does not
// persist anything; callers write the result back through the store.
//
// # Error Handling
//
// Row level problems found while reading a catalog file are reported as
// [*DataCorruptionError], which matches [ErrDataCorruption] with errors.Is.
// Technical errors are mapped to user-friendly messages using [MapError]:
//
//   - DATA001: damaged catalog rows
//   - FILE001-FILE004: missing, unreadable or malformed catalog files
//   - INP001: malformed suit codes
package core

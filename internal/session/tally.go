package session

import "github.com/JonMunkholm/suitctl/internal/core"

// Tally counts successful repairs per category for one session.
// It is never persisted.
type Tally struct {
	counts map[core.Category]int
}

// TallyEntry is one category's count.
type TallyEntry struct {
	Category core.Category
	Count    int
}

// NewTally returns a tally with every category at zero.
func NewTally() *Tally {
	t := &Tally{counts: make(map[core.Category]int, len(core.Categories()))}
	for _, c := range core.Categories() {
		t.counts[c] = 0
	}
	return t
}

// Inc records one repair for category. Categories outside the closed set
// are ignored so Total always matches Entries.
func (t *Tally) Inc(category core.Category) {
	if !category.Valid() {
		return
	}
	t.counts[category]++
}

// Count returns the repairs recorded for category.
func (t *Tally) Count(category core.Category) int {
	return t.counts[category]
}

// Total returns the repairs recorded across all categories.
func (t *Tally) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Entries returns the counts for the closed category set in display order,
// including zero counts.
func (t *Tally) Entries() []TallyEntry {
	categories := core.Categories()
	out := make([]TallyEntry, 0, len(categories))
	for _, c := range categories {
		out = append(out, TallyEntry{Category: c, Count: t.counts[c]})
	}
	return out
}

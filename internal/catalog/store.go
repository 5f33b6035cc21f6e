// Package catalog owns the in-memory suit collection and its flat-file
// backing store.
//
// The store is write-through: every Update rewrites the whole file before
// returning. The file is assumed to be owned by the running process; external
// writers produce undefined results on the next load or save.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/JonMunkholm/suitctl/internal/core"
)

// Sample data defaults used when the catalog file does not exist yet.
const (
	DefaultSampleSize        = 50
	DefaultSamplePerCategory = 10
)

// Store holds suits keyed by code.
type Store struct {
	path   string
	suits  map[string]core.Suit
	logger *slog.Logger

	rng               *rand.Rand
	sampleSize        int
	samplePerCategory int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRand sets the random source for sample data generation.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSampleSize overrides the generated catalog size and the number of
// suits seeded per category. Non-positive values keep the defaults.
func WithSampleSize(total, perCategory int) Option {
	return func(s *Store) {
		if total > 0 {
			s.sampleSize = total
		}
		if perCategory > 0 {
			s.samplePerCategory = perCategory
		}
	}
}

// New creates an empty store backed by path. Call Load to populate it.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:              path,
		suits:             make(map[string]core.Suit),
		logger:            slog.Default(),
		rng:               rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		sampleSize:        DefaultSampleSize,
		samplePerCategory: DefaultSamplePerCategory,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store and loads it, generating sample data if the file is missing.
func Open(path string, opts ...Option) (*Store, error) {
	s := New(path, opts...)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory catalog with the contents of the backing file.
// A missing file is first created with GenerateSampleData. A row that cannot
// be read as a suit fails the whole load with a *core.DataCorruptionError and
// leaves the current contents untouched.
func (s *Store) Load() error {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("catalog file not found, generating sample data", "path", s.path)
		if err := s.GenerateSampleData(); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("stat catalog: %w", err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	suits, n, err := decode(f, s.path)
	if err != nil {
		return err
	}

	s.suits = suits
	s.logger.Info("catalog loaded", "path", s.path, "suits", len(suits), "bytes", n)
	return nil
}

// GenerateSampleData writes a fresh synthetic catalog to the backing file.
// The in-memory catalog is not touched; Load reads the file afterwards.
func (s *Store) GenerateSampleData() error {
	suits := generate(s.rng, s.sampleSize, s.samplePerCategory)
	if err := writeFile(s.path, suits); err != nil {
		return fmt.Errorf("generate sample data: %w", err)
	}
	s.logger.Info("sample data generated", "path", s.path, "suits", len(suits))
	return nil
}

// Save rewrites the backing file with every suit, sorted by code.
func (s *Store) Save() error {
	if err := writeFile(s.path, s.All()); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	s.logger.Debug("catalog saved", "path", s.path, "suits", len(s.suits))
	return nil
}

// Get returns the suit with the given code.
func (s *Store) Get(code string) (core.Suit, bool) {
	suit, ok := s.suits[code]
	return suit, ok
}

// Update stores suit under its code and saves the catalog. If the save
// fails the previous value is restored so memory and file stay in step.
func (s *Store) Update(suit core.Suit) error {
	if !core.ValidateCode(suit.Code) {
		return fmt.Errorf("update suit: %w: %q", core.ErrInvalidCode, suit.Code)
	}
	suit.Durability = core.ClampDurability(suit.Durability)

	prev, existed := s.suits[suit.Code]
	s.suits[suit.Code] = suit

	if err := s.Save(); err != nil {
		if existed {
			s.suits[suit.Code] = prev
		} else {
			delete(s.suits, suit.Code)
		}
		return err
	}
	return nil
}

// Len returns the number of suits.
func (s *Store) Len() int {
	return len(s.suits)
}

// All returns every suit sorted by code.
func (s *Store) All() []core.Suit {
	out := make([]core.Suit, 0, len(s.suits))
	for _, suit := range s.suits {
		out = append(out, suit)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return out
}

package testutil

import (
	"testing"

	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/store"
)

// Seed describes one task to create in a test store.
type Seed struct {
	Text      string
	Category  domain.Category
	Completed bool
}

// Task options
type SeedOption func(*Seed)

func Completed() SeedOption {
	return func(s *Seed) {
		s.Completed = true
	}
}

func NewSeed(text string, category domain.Category, opts ...SeedOption) Seed {
	s := Seed{Text: text, Category: category}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewStore returns a store holding seeds in order. IDs are assigned from 1,
// so the i-th seed gets TaskID(i+1).
func NewStore(t *testing.T, seeds ...Seed) *store.Store {
	t.Helper()
	st := store.New()
	for _, s := range seeds {
		task, ok := st.Create(s.Text, s.Category)
		if !ok {
			t.Fatalf("seeding %q in %q was rejected", s.Text, s.Category)
		}
		if s.Completed && !st.Toggle(task.ID) {
			t.Fatalf("completing seeded task %s failed", task.ID)
		}
	}
	return st
}

// MixedSeeds is a small list spanning every assignable category, with one
// completed task.
func MixedSeeds() []Seed {
	return []Seed{
		NewSeed("write report", domain.CategoryWork),
		NewSeed("call mom", domain.CategoryPrivate),
		NewSeed("buy milk", domain.CategoryShopping, Completed()),
		NewSeed("water plants", domain.CategoryOther),
	}
}

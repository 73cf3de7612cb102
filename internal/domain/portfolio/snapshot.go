package portfolio

import (
	"sync"
	"time"
)

// Snapshot is the immutable dataset for one generation pass. GeneratedAt is
// the frozen "now" every installment state was derived against; aggregations
// over the snapshot must use it instead of the wall clock.
type Snapshot struct {
	Clients      []Client
	Loans        []Loan
	Installments []Installment
	GeneratedAt  time.Time
	Seed         int64
}

// BuildSnapshot runs one full generation pass. Deterministic per (seed, now).
func BuildSnapshot(seed int64, loanCount int, now time.Time) (*Snapshot, error) {
	gen, err := NewGenerator(seed, DefaultRoster(), loanCount)
	if err != nil {
		return nil, err
	}
	clients, loans, installments := gen.Generate(now)
	return &Snapshot{
		Clients:      clients,
		Loans:        loans,
		Installments: installments,
		GeneratedAt:  now,
		Seed:         seed,
	}, nil
}

// Store hands the current snapshot to readers and lets the refresh job swap
// in a new one. Snapshots themselves are never mutated, so readers can hold a
// reference for as long as they like.
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
}

func NewStore(initial *Snapshot) *Store {
	return &Store{current: initial}
}

func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) Replace(snap *Snapshot) {
	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()
}

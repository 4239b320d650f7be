// AngelaMos | 2026
// store.go

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgegym/api/internal/core"
)

// ErrNoRecord is returned by a Gateway when no durable record exists yet.
var ErrNoRecord = errors.New("no durable record")

// Gateway reads and writes the one durable record, wholesale. There are no
// partial writes and no versioning; every Save replaces the prior content.
type Gateway interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Ping(ctx context.Context) error
}

// Store owns the aggregate lifecycle: load, seed on first run, mutate,
// save. All access goes through View or Update so a mutation is a single
// load-mutate-save cycle under one lock.
type Store struct {
	mu      sync.Mutex
	gateway Gateway
	seed    Seed
	now     func() time.Time
}

func New(gateway Gateway, seed Seed) *Store {
	return &Store{
		gateway: gateway,
		seed:    seed,
		now:     time.Now,
	}
}

// View loads the aggregate and runs fn against it. Nothing is written
// back; fn must not retain the state beyond the call.
func (s *Store) View(ctx context.Context, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	return fn(state)
}

// Update loads the aggregate, applies fn, and writes the whole record
// back. Everything fn changes is persisted together or not at all: a save
// failure surfaces to the caller and nothing durable is touched.
func (s *Store) Update(ctx context.Context, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := fn(state); err != nil {
		return err
	}

	return s.save(ctx, state)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.gateway.Ping(ctx)
}

// load degrades to the seeded initial state when the record is absent or
// unreadable. Stale or corrupt local data is treated as "no data yet",
// never as fatal.
func (s *Store) load(ctx context.Context) (*State, error) {
	data, err := s.gateway.Load(ctx)
	if errors.Is(err, ErrNoRecord) {
		return NewState(s.seed, s.now()), nil
	}
	if err != nil {
		slog.Warn("durable record unreadable, falling back to seeded state",
			"error", err,
		)
		return NewState(s.seed, s.now()), nil
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		slog.Warn("durable record corrupt, falling back to seeded state",
			"error", err,
		)
		return NewState(s.seed, s.now()), nil
	}

	return state, nil
}

func (s *Store) save(ctx context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", core.ErrPersistence)
	}

	if err := s.gateway.Save(ctx, data); err != nil {
		return fmt.Errorf("save state: %v: %w", err, core.ErrPersistence)
	}

	return nil
}

// AngelaMos | 2026
// memory.go

package store

import (
	"context"
	"sync"
)

// MemoryGateway holds the record in process memory. Used for tests and
// for ephemeral runs where nothing should survive a restart.
type MemoryGateway struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

func (g *MemoryGateway) Load(_ context.Context) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.data == nil {
		return nil, ErrNoRecord
	}

	out := make([]byte, len(g.data))
	copy(out, g.data)
	return out, nil
}

func (g *MemoryGateway) Save(_ context.Context, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.data = make([]byte, len(data))
	copy(g.data, data)
	g.saves++
	return nil
}

func (g *MemoryGateway) Ping(_ context.Context) error {
	return nil
}

// Saves reports how many times the record has been rewritten.
func (g *MemoryGateway) Saves() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saves
}

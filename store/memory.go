package store

import (
	"context"
	"sync"

	bingo "github.com/tigredonorte/bingo-sub004"
)

// memory is an in-memory map-based CardStore implementation. State is lost
// when the process restarts; useful for development and tests.
type memory struct {
	mu      sync.RWMutex
	byID    map[string]*bingo.BingoCard
	session map[string][]*bingo.BingoCard
}

var _ CardStore = &memory{}

// NewMemoryStore constructs a new in-memory CardStore.
func NewMemoryStore() CardStore {
	return &memory{
		byID:    make(map[string]*bingo.BingoCard),
		session: make(map[string][]*bingo.BingoCard),
	}
}

func (m *memory) Save(_ context.Context, card *bingo.BingoCard) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.byID[card.ID.String()] = card
	m.session[card.SessionID] = append(m.session[card.SessionID], card)
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*bingo.BingoCard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if card, ok := m.byID[id]; ok {
		return card, nil
	}
	return nil, ErrNotFound
}

func (m *memory) ListBySession(_ context.Context, sessionID string) ([]*bingo.BingoCard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cards := make([]*bingo.BingoCard, len(m.session[sessionID]))
	copy(cards, m.session[sessionID])
	return cards, nil
}

func (m *memory) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, card := range m.session[sessionID] {
		delete(m.byID, card.ID.String())
	}
	delete(m.session, sessionID)
	return nil
}

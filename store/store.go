// Package store persists generated cards after the engine hands them off.
// The uniqueness registry deliberately stays in-memory; only the finished
// cards are durable.
package store

import (
	"context"
	"errors"

	bingo "github.com/tigredonorte/bingo-sub004"
)

// ErrNotFound is returned when a lookup misses.
var ErrNotFound = errors.New("card not found")

// CardStore defines the persistence interface for generated cards.
// Implementations may be backed by memory (this package), SQLite, etc.
type CardStore interface {
	// Save persists a generated card. Cards are immutable, so Save never
	// updates an existing row.
	Save(ctx context.Context, card *bingo.BingoCard) error

	// Get retrieves a card by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*bingo.BingoCard, error)

	// ListBySession returns all persisted cards for a session, oldest first.
	ListBySession(ctx context.Context, sessionID string) ([]*bingo.BingoCard, error)

	// DeleteSession removes every persisted card for a session.
	DeleteSession(ctx context.Context, sessionID string) error
}

// Package cardservice exposes the public card generation operations,
// composing the format strategies with the per-session uniqueness registry.
package cardservice

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	bingo "github.com/tigredonorte/bingo-sub004"
	"github.com/tigredonorte/bingo-sub004/cardgen"
	"github.com/tigredonorte/bingo-sub004/cardregistry"
)

// MaxGenerationAttempts bounds how many times a single GenerateCard call may
// regenerate after a hash collision before failing with
// bingo.ErrGenerationExhausted. Both formats' hash spaces are so large that
// honest collisions are vanishingly rare; the bound exists to stop a livelock
// when a session's registry has swallowed most of a format's state space.
const MaxGenerationAttempts = 100

// Service orchestrates card generation: strategy selection, hashing,
// uniqueness registration, and assembly of the final cards.
type Service struct {
	strategies map[bingo.CardFormat]cardgen.Strategy
	registry   *cardregistry.Registry
}

// New creates a Service with the default strategies for every supported
// format, seeded from rngSeed.
func New(rngSeed int64, registry *cardregistry.Registry) *Service {
	return NewWithStrategies(cardgen.Strategies(rngSeed), registry)
}

// NewWithStrategies creates a Service around an explicit strategy set.
// Mostly useful for tests that need to control what GenerateCells returns.
func NewWithStrategies(strategies map[bingo.CardFormat]cardgen.Strategy, registry *cardregistry.Registry) *Service {
	return &Service{
		strategies: strategies,
		registry:   registry,
	}
}

// GenerateCard produces one card of the given format whose hash is unique
// within the session. Hash collisions are expected and transient, so they are
// retried up to MaxGenerationAttempts times; strategy errors indicate a
// misconfigured format and fail immediately.
func (s *Service) GenerateCard(format bingo.CardFormat, sessionID string) (*bingo.BingoCard, error) {
	strategy, ok := s.strategies[format]
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, bingo.ErrUnknownFormat)
	}

	for attempt := 1; attempt <= MaxGenerationAttempts; attempt++ {
		cells, err := strategy.GenerateCells()
		if err != nil {
			return nil, fmt.Errorf("generating %s cells: %w", format, err)
		}

		hash := cardgen.GenerateCardHash(cells)
		if !s.registry.Register(sessionID, hash) {
			log.Debug().
				Str("session", sessionID).
				Str("format", string(format)).
				Int("attempt", attempt).
				Msg("duplicate card hash, regenerating")
			continue
		}

		return &bingo.BingoCard{
			ID:        uuid.New(),
			SessionID: sessionID,
			Format:    format,
			Cells:     cells,
			Hash:      hash,
			CreatedAt: time.Now().UTC(),
		}, nil
	}

	return nil, fmt.Errorf("no unique %s card for session %q after %d attempts: %w",
		format, sessionID, MaxGenerationAttempts, bingo.ErrGenerationExhausted)
}

// GenerateBatch produces count cards of the given format. Every card runs
// through the same session-scoped registry, so batch members are pairwise
// unique by construction rather than by post-hoc filtering. Count must be
// positive; upper bounds are the caller's concern.
func (s *Service) GenerateBatch(format bingo.CardFormat, sessionID string, count int) ([]*bingo.BingoCard, error) {
	if count < 1 {
		return nil, fmt.Errorf("card count must be positive, got %d", count)
	}

	cards := make([]*bingo.BingoCard, 0, count)
	for i := 0; i < count; i++ {
		card, err := s.GenerateCard(format, sessionID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ClearSession drops every hash tracked for the session, so subsequent
// generations start from a clean slate. The registry is owned exclusively by
// this service; callers that need a reset go through here.
func (s *Service) ClearSession(sessionID string) {
	s.registry.ClearSession(sessionID)
}

// SessionCardCount returns how many unique card hashes have been issued to
// the session so far.
func (s *Service) SessionCardCount(sessionID string) int {
	return s.registry.SessionCount(sessionID)
}

// ValidateUniqueness reports whether the card's stored hash is still
// considered unique for the session, i.e. whether registering it now would
// succeed.
func (s *Service) ValidateUniqueness(card *bingo.BingoCard, sessionID string) bool {
	return !s.registry.Exists(sessionID, card.Hash)
}

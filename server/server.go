// Package server exposes the card generation engine over HTTP. The engine
// itself has no network surface; everything here is the caller-side boundary
// the engine is specified against: request validation, session resolution,
// persistence of finished cards.
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	bingo "github.com/tigredonorte/bingo-sub004"
	"github.com/tigredonorte/bingo-sub004/cardservice"
	"github.com/tigredonorte/bingo-sub004/session"
	"github.com/tigredonorte/bingo-sub004/store"
)

// GenerateCardsRequest is the payload of POST /cards/generate. Count must be
// between bingo.MinBatchCards and bingo.MaxBatchCards; the engine itself only
// requires a positive count, so the bound lives here.
type GenerateCardsRequest struct {
	Count  int    `json:"count"`
	Format string `json:"format"`
}

// GenerateCardsResponse is the result of a successful batch generation.
type GenerateCardsResponse struct {
	SessionID      string             `json:"sessionId"`
	GeneratedCount int                `json:"generatedCount"`
	Cards          []*bingo.BingoCard `json:"cards"`
}

// SessionResponse is returned when a new session is minted.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server bundles the router with the engine and its collaborators.
type Server struct {
	router   *chi.Mux
	cards    *cardservice.Service
	store    store.CardStore
	sessions *session.Manager
}

// New constructs a Server, installs middleware, and registers routes.
func New(cards *cardservice.Service, cardStore store.CardStore, sessions *session.Manager) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		cards:    cards,
		store:    cardStore,
		sessions: sessions,
	}

	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Timeout(10 * time.Second))

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]bool{"ok": true})
	})

	s.router.Post("/sessions", s.createSession)
	s.router.Delete("/sessions/{sessionID}", s.deleteSession)

	s.router.Route("/cards", func(r chi.Router) {
		r.Post("/generate", s.generateCards)
		r.Get("/", s.listCards)
		r.Get("/{cardID}", s.getCard)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

// Router exposes the internal router, useful for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

// resolveSession extracts the caller's session id, preferring a signed
// bearer token and falling back to the X-Session-Id header for callers that
// manage their own opaque ids. Returns "" when neither is usable.
func (s *Server) resolveSession(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		sessionID, err := s.sessions.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err == nil {
			return sessionID
		}
	}
	return r.Header.Get("X-Session-Id")
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	sessionID, token, err := s.sessions.Issue()
	if err != nil {
		log.Error().Err(err).Msg("minting session")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "could not create session"})
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, SessionResponse{SessionID: sessionID, Token: token})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	s.cards.ClearSession(sessionID)
	if err := s.store.DeleteSession(r.Context(), sessionID); err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("deleting session cards")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "could not delete session cards"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) generateCards(w http.ResponseWriter, r *http.Request) {
	sessionID := s.resolveSession(r)
	if sessionID == "" {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, errorResponse{Error: "missing session"})
		return
	}

	var req GenerateCardsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "malformed request body"})
		return
	}
	if req.Count < bingo.MinBatchCards || req.Count > bingo.MaxBatchCards {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "count must be between 1 and 100"})
		return
	}
	format, err := bingo.ParseCardFormat(req.Format)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: err.Error()})
		return
	}

	cards, err := s.cards.GenerateBatch(format, sessionID, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, bingo.ErrGenerationExhausted):
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, errorResponse{Error: err.Error()})
		case errors.Is(err, bingo.ErrInvalidRange):
			log.Error().Err(err).Str("format", req.Format).Msg("misconfigured format")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, errorResponse{Error: "format is misconfigured"})
		default:
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, errorResponse{Error: "card generation failed"})
		}
		return
	}

	for _, card := range cards {
		if err := s.store.Save(r.Context(), card); err != nil {
			log.Error().Err(err).Str("card", card.ID.String()).Msg("persisting card")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, errorResponse{Error: "could not persist cards"})
			return
		}
	}

	log.Info().
		Str("session", sessionID).
		Str("format", string(format)).
		Int("count", len(cards)).
		Msg("generated cards")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, GenerateCardsResponse{
		SessionID:      sessionID,
		GeneratedCount: len(cards),
		Cards:          cards,
	})
}

func (s *Server) listCards(w http.ResponseWriter, r *http.Request) {
	sessionID := s.resolveSession(r)
	if sessionID == "" {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, errorResponse{Error: "missing session"})
		return
	}

	cards, err := s.store.ListBySession(r.Context(), sessionID)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "could not list cards"})
		return
	}
	if cards == nil {
		cards = []*bingo.BingoCard{}
	}
	render.JSON(w, r, GenerateCardsResponse{
		SessionID:      sessionID,
		GeneratedCount: len(cards),
		Cards:          cards,
	})
}

func (s *Server) getCard(w http.ResponseWriter, r *http.Request) {
	sessionID := s.resolveSession(r)
	card, err := s.store.Get(r.Context(), chi.URLParam(r, "cardID"))
	if err != nil || sessionID == "" || card.SessionID != sessionID {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "card not found"})
		return
	}
	render.JSON(w, r, card)
}

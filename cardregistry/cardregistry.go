// Package cardregistry tracks the card hashes already issued to each session
// so that the generator service can guarantee per-session uniqueness.
package cardregistry

import (
	"sync"
)

// Registry maps each session to the set of card hashes it has been issued.
// A session's entry is created on first registration, grows monotonically,
// and only goes away through ClearSession; in a long-lived process the growth
// per active session is unbounded, and reclaiming it is the hosting service's
// capacity-planning call.
//
// All methods are safe for concurrent use. The check-then-insert of Register
// runs under the lock, so two simultaneous registrations of the same hash for
// one session can never both succeed.
type Registry struct {
	sessions map[string]map[string]struct{}
	mtx      *sync.Mutex
}

// New creates a new instance of a Registry. Registries are meant to be
// injected into the generator service rather than shared as package state, so
// tests can instantiate isolated ones.
func New() *Registry {
	return &Registry{
		sessions: make(map[string]map[string]struct{}),
		mtx:      &sync.Mutex{},
	}
}

// Register records hash for the session. Returns false without mutating
// anything if the hash is already tracked for that session.
func (r *Registry) Register(sessionID string, hash string) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	hashes, ok := r.sessions[sessionID]
	if !ok {
		hashes = make(map[string]struct{})
		r.sessions[sessionID] = hashes
	}
	if _, exists := hashes[hash]; exists {
		return false
	}
	hashes[hash] = struct{}{}
	return true
}

// Exists reports whether hash is already tracked for the session.
func (r *Registry) Exists(sessionID string, hash string) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	_, exists := r.sessions[sessionID][hash]
	return exists
}

// ClearSession removes all tracked hashes for a session.
func (r *Registry) ClearSession(sessionID string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, sessionID)
}

// SessionCount returns how many hashes are tracked for a session, 0 if the
// session is unknown.
func (r *Registry) SessionCount(sessionID string) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return len(r.sessions[sessionID])
}

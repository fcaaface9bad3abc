// Package session holds the authenticated user state shared by every
// command and view. The store is the only place session fields are mutated,
// and each operation is atomic.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sellerpulse/pulse/internal/model"
)

// persistedState is the on-disk session blob. The wrapper object matches
// the shape the backend dashboard persists, so a session survives tooling
// changes.
type persistedState struct {
	State struct {
		IsAuthenticated bool        `json:"isAuthenticated"`
		User            *model.User `json:"user,omitempty"`
		Token           string      `json:"token,omitempty"`
	} `json:"state"`
}

// Store owns the current session. Persistence failures are swallowed: a
// broken disk must never block login or logout.
type Store struct {
	mu      sync.RWMutex
	session model.Session
	path    string
}

// NewStore creates a store persisting to the given file path and rehydrates
// any previously saved session. An unreadable or corrupt file yields a
// clean unauthenticated session.
func NewStore(path string) *Store {
	s := &Store{path: path, session: model.Session{ViewMode: model.ViewModeBuyer}}
	s.rehydrate()
	return s
}

// Current returns a copy of the session
func (s *Store) Current() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Token returns the bearer token, or "" when unauthenticated
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// Login replaces token and user atomically and marks the session
// authenticated
func (s *Store) Login(token string, user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = model.Session{
		IsAuthenticated: true,
		User:            user,
		Token:           token,
		ViewMode:        model.ViewModeBuyer,
	}
	s.persistLocked()
}

// Logout clears all session fields and removes the persisted blob before
// returning
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = model.Session{ViewMode: model.ViewModeBuyer}
	_ = os.Remove(s.path)
}

// UpdateUser shallow-merges the given fields onto the current user.
// A no-op when no user is present.
func (s *Store) UpdateUser(partial model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return
	}

	u := *s.session.User
	if partial.Name != "" {
		u.Name = partial.Name
	}
	if partial.Email != "" {
		u.Email = partial.Email
	}
	if partial.Role != "" {
		u.Role = partial.Role
	}
	if partial.IsVerified {
		u.IsVerified = true
	}
	s.session.User = &u
	s.persistLocked()
}

// ReplaceUser swaps in a complete account snapshot, keeping the token and
// authentication state. Unlike UpdateUser this also clears fields the
// backend has revoked, such as a withdrawn verification. A no-op when no
// user is present.
func (s *Store) ReplaceUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return
	}

	s.session.User = &user
	s.persistLocked()
}

// ToggleViewMode flips between seller and buyer perspective. Only
// meaningful for seller accounts; anyone else stays in buyer mode.
func (s *Store) ToggleViewMode() model.ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil || s.session.User.Role != model.RoleSeller {
		return s.session.ViewMode
	}

	if s.session.ViewMode == model.ViewModeSeller {
		s.session.ViewMode = model.ViewModeBuyer
	} else {
		s.session.ViewMode = model.ViewModeSeller
	}
	return s.session.ViewMode
}

// TokenClaims decodes the bearer token payload without verifying the
// signature. Verification belongs to the backend; this is display-only
// (expiry, subject).
func (s *Store) TokenClaims() (jwt.MapClaims, error) {
	tok := s.Token()
	if tok == "" {
		return nil, jwt.ErrTokenMalformed
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *Store) persistLocked() {
	var state persistedState
	state.State.IsAuthenticated = s.session.IsAuthenticated
	state.State.User = s.session.User
	state.State.Token = s.session.Token

	data, err := json.Marshal(state)
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0600)
}

func (s *Store) rehydrate() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return
	}

	s.session.IsAuthenticated = state.State.IsAuthenticated
	s.session.User = state.State.User
	s.session.Token = state.State.Token
}

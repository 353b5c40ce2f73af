// Package session manages live editing sessions for the HTTP host.
//
// A session is the server-side copy of one diagram being edited: the
// network, its style, and an expiry. Sessions live in memory only and
// expire after a TTL; nothing is written to disk. Closing the browser
// tab loses the diagram, which is the intended model.
//
// # Usage
//
// Create a store and a session:
//
//	store := session.NewMemoryStore()
//	sess := session.New(network.Default(), network.DefaultStyle(), session.DefaultTTL)
//	store.Set(ctx, sess)
//
// Retrieve and edit:
//
//	sess, err := store.Get(ctx, id)
//	if err != nil {
//	    // session.ErrNotFound or session.ErrExpired
//	}
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/netsketch/netsketch/pkg/network"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExpired is returned when a session has exceeded its TTL.
	ErrExpired = errors.New("expired")
)

// DefaultTTL is how long an idle session survives. Each edit refreshes
// the expiry.
const DefaultTTL = 4 * time.Hour

// Session is one diagram being edited.
type Session struct {
	ID        string          `json:"id"`
	Network   network.Network `json:"network"`
	Style     network.Style   `json:"style"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`

	ttl time.Duration
}

// New creates a session with a fresh uuid and the given initial state.
func New(net network.Network, style network.Style, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Network:   net,
		Style:     style,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		ttl:       ttl,
	}
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Touch extends the session's expiry by its TTL.
func (s *Session) Touch() {
	ttl := s.ttl
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s.ExpiresAt = time.Now().Add(ttl)
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session doesn't exist and ErrExpired if
	// it exists but has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}

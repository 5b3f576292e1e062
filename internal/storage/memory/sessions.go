package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

type session struct {
	identity  domain.Identity
	expiresAt time.Time
}

// SessionStore is the in-process identity lookup used by the memory driver.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]session)}
}

func (s *SessionStore) Lookup(ctx context.Context, token string) (domain.Identity, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || (!sess.expiresAt.IsZero() && time.Now().After(sess.expiresAt)) {
		return domain.Identity{}, fmt.Errorf("memory.Session.Lookup: %w", e.ErrUnauthenticated)
	}
	return sess.identity, nil
}

func (s *SessionStore) Save(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.sessions[token] = session{identity: identity, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

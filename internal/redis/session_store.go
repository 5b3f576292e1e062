package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

// SessionStore resolves presented tokens to authenticated identities.
// Token issuance lives outside this service; the store only reads what the
// auth collaborator wrote.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

func NewSessionStore(r *Redis) *SessionStore {
	return &SessionStore{
		client: r.Client,
		prefix: "sessions:",
	}
}

func (s *SessionStore) Lookup(ctx context.Context, token string) (domain.Identity, error) {
	data, err := s.client.Get(ctx, s.prefix+token).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.Identity{}, fmt.Errorf("redis.Session.Lookup: %w", e.ErrUnauthenticated)
		}
		return domain.Identity{}, err
	}

	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return domain.Identity{}, err
	}
	if !identity.Role.Valid() {
		return domain.Identity{}, fmt.Errorf("redis.Session.Lookup: %w", e.ErrUnauthenticated)
	}
	return identity, nil
}

func (s *SessionStore) Save(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error {
	b, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+token, b, ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.prefix+token).Err()
}

package preferences

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"

	redisclient "github.com/angelmondragon/panier-backend/pkg/redis"
)

// ErrNotSet is returned by stores when no value was saved for the key.
var ErrNotSet = errors.New("preference not set")

// Store persists client preferences as plain strings.
type Store interface {
	Get(ctx context.Context, clientID, name string) (string, error)
	Set(ctx context.Context, clientID, name, value string) error
}

type redisBackend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	PreferenceKey(clientID, name string) string
}

type redisStore struct {
	client redisBackend
}

// NewRedisStore keeps preferences in redis without expiry.
func NewRedisStore(client *redisclient.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, clientID, name string) (string, error) {
	value, err := s.client.Get(ctx, s.client.PreferenceKey(clientID, name))
	if errors.Is(err, redisclient.ErrNil) {
		return "", ErrNotSet
	}
	return value, err
}

func (s *redisStore) Set(ctx context.Context, clientID, name, value string) error {
	return s.client.Set(ctx, s.client.PreferenceKey(clientID, name), value, 0)
}

type memoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore keeps preferences in process memory. Values are lost on restart.
func NewMemoryStore() Store {
	return &memoryStore{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (s *memoryStore) Get(_ context.Context, clientID, name string) (string, error) {
	value, ok := s.cache.Get(memoryKey(clientID, name))
	if !ok {
		return "", ErrNotSet
	}
	return value.(string), nil
}

func (s *memoryStore) Set(_ context.Context, clientID, name, value string) error {
	s.cache.Set(memoryKey(clientID, name), value, gocache.NoExpiration)
	return nil
}

func memoryKey(clientID, name string) string {
	return clientID + ":" + name
}

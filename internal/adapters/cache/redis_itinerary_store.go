package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/platform/obs"
	"terminal-itinerary-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

const itineraryKeyPrefix = "itinerary:"

// RedisItineraryStore keeps itinerary sessions as JSON values with a sliding TTL.
// Every Save refreshes the expiry. A zero TTL keeps sessions forever.
type RedisItineraryStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisItineraryStore(client *redis.Client, ttl time.Duration) *RedisItineraryStore {
	return &RedisItineraryStore{Client: client, TTL: ttl}
}

// OpenRedis parses a redis:// URL and verifies the connection.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("open redis: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("open redis: ping: %w", err)
	}

	return client, nil
}

func (s *RedisItineraryStore) Load(ctx context.Context, id string) (_ domain.ItineraryState, err error) {
	defer obs.Time(ctx, "itinerary.redis.Load")(&err)

	key, err := s.key(id)
	if err != nil {
		return domain.ItineraryState{}, err
	}

	raw, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ItineraryState{}, ports.ErrItineraryNotFound
	}
	if err != nil {
		return domain.ItineraryState{}, fmt.Errorf("load itinerary: get %q: %w", key, err)
	}

	var state domain.ItineraryState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.ItineraryState{}, fmt.Errorf("load itinerary: decode %q: %w", key, err)
	}

	return state, nil
}

func (s *RedisItineraryStore) Save(ctx context.Context, id string, state domain.ItineraryState) error {
	key, err := s.key(id)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("save itinerary: encode %q: %w", key, err)
	}

	if err := s.Client.Set(ctx, key, raw, s.TTL).Err(); err != nil {
		return fmt.Errorf("save itinerary: set %q: %w", key, err)
	}

	return nil
}

func (s *RedisItineraryStore) Delete(ctx context.Context, id string) error {
	key, err := s.key(id)
	if err != nil {
		return err
	}

	n, err := s.Client.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("delete itinerary: del %q: %w", key, err)
	}
	if n == 0 {
		return ports.ErrItineraryNotFound
	}

	return nil
}

func (s *RedisItineraryStore) key(id string) (string, error) {
	if s.Client == nil {
		return "", errors.New("itinerary store: redis client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("itinerary store: id must not be empty")
	}
	return itineraryKeyPrefix + id, nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/label-system/internal/core/domain"
)

const DefaultTemplatesKey = "label:templates"

// TemplateStore keeps every template as a JSON value in a single hash,
// field = template name.
type TemplateStore struct {
	client *redis.Client
	key    string
}

// NewTemplateStore wraps client. An empty key falls back to DefaultTemplatesKey.
func NewTemplateStore(client *redis.Client, key string) *TemplateStore {
	if key == "" {
		key = DefaultTemplatesKey
	}
	return &TemplateStore{client: client, key: key}
}

func (s *TemplateStore) Get(ctx context.Context, name string) (*domain.NamedTemplate, error) {
	raw, err := s.client.HGet(ctx, s.key, name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("redis hget: %w", err)
	}
	var t domain.NamedTemplate
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode template %q: %w", name, err)
	}
	return &t, nil
}

func (s *TemplateStore) Set(ctx context.Context, t *domain.NamedTemplate) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode template %q: %w", t.Name, err)
	}
	if err := s.client.HSet(ctx, s.key, t.Name, raw).Err(); err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

func (s *TemplateStore) Delete(ctx context.Context, name string) (bool, error) {
	n, err := s.client.HDel(ctx, s.key, name).Result()
	if err != nil {
		return false, fmt.Errorf("redis hdel: %w", err)
	}
	return n > 0, nil
}

// List returns names sorted lexically; hash order is not stable.
func (s *TemplateStore) List(ctx context.Context) ([]string, error) {
	names, err := s.client.HKeys(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hkeys: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (s *TemplateStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

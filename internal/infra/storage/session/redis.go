package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ProfileService/internal/viewstate"
)

const maxUpdateRetries = 5

// RedisStore хранит сессии в Redis, чтобы несколько инстансов видели одно состояние страницы
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	now       func() time.Time
}

// NewRedisStore создает хранилище поверх redis клиента
func NewRedisStore(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *RedisStore) key(id string) string {
	return s.keyPrefix + id
}

func (s *RedisStore) Create(ctx context.Context, page *viewstate.Page) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("%w: Create - marshal: %v", ErrStorage, err)
	}
	if err := s.client.Set(ctx, s.key(page.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Create - set: %v", ErrStorage, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*viewstate.Page, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get: %v", ErrStorage, err)
	}
	return decodePage(raw)
}

// Update применяет fn в оптимистичной транзакции WATCH/MULTI.
// При конкурентной записи попытка повторяется.
func (s *RedisStore) Update(ctx context.Context, id string, fn func(page *viewstate.Page) error) (*viewstate.Page, error) {
	key := s.key(id)
	var result *viewstate.Page

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: Update - get: %v", ErrStorage, err)
		}

		page, err := decodePage(raw)
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}
		page.Touch(s.now())

		data, err := json.Marshal(page)
		if err != nil {
			return fmt.Errorf("%w: Update - marshal: %v", ErrStorage, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		result = page
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: session=%s", ErrConflict, id)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrStorage, err)
	}
	return nil
}

func decodePage(raw []byte) (*viewstate.Page, error) {
	var page viewstate.Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("%w: decode session: %v", ErrStorage, err)
	}
	return &page, nil
}

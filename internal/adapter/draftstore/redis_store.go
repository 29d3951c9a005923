package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/config"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/budget"
)

const keyPrefix = "quotation_state:"

// RedisStore guarda os rascunhos de orçamento no Redis, um por usuário
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisClient abre a conexão com o Redis configurado
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
	}
	return rdb, nil
}

// NewRedisStore cria o store; ttl zero mantém os rascunhos sem expiração
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) budget.DraftStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(userID string) string {
	return keyPrefix + userID
}

// Load implementa budget.DraftStore.Load
func (s *RedisStore) Load(ctx context.Context, userID string) (*budget.Draft, error) {
	data, err := s.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, budget.ErrDraftNotFound
		}
		return nil, fmt.Errorf("erro ao ler rascunho: %w", err)
	}

	var d budget.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("erro ao converter rascunho: %w", err)
	}
	return &d, nil
}

// Save implementa budget.DraftStore.Save. Cada gravação renova a expiração.
func (s *RedisStore) Save(ctx context.Context, d *budget.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("erro ao converter rascunho para JSON: %w", err)
	}
	if err := s.client.Set(ctx, key(d.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar rascunho: %w", err)
	}
	return nil
}

// Delete implementa budget.DraftStore.Delete
func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("erro ao remover rascunho: %w", err)
	}
	return nil
}

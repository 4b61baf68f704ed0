package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ghost_protocol/internal/entity"
	"ghost_protocol/internal/usecase"
)

// KeyRepository persists encrypted provider credentials.
type KeyRepository struct {
	pool *pgxpool.Pool
}

func NewKeyRepository(pool *pgxpool.Pool) *KeyRepository {
	return &KeyRepository{pool: pool}
}

func (r *KeyRepository) GetApiKey(ctx context.Context, service string) (*entity.ApiKey, error) {
	var key entity.ApiKey
	err := r.pool.QueryRow(ctx, `
		SELECT service, encrypted_key, created_at
		FROM api_keys
		WHERE service = $1`, service,
	).Scan(&key.Service, &key.EncryptedKey, &key.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrApiKeyNotFound
		}
		return nil, fmt.Errorf("get api key %q: %w", service, err)
	}
	return &key, nil
}

func (r *KeyRepository) UpsertApiKey(ctx context.Context, key *entity.ApiKey) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO api_keys (service, encrypted_key, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (service) DO UPDATE
		SET encrypted_key = EXCLUDED.encrypted_key, created_at = EXCLUDED.created_at`,
		key.Service, key.EncryptedKey, key.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert api key %q: %w", key.Service, err)
	}
	return nil
}

func (r *KeyRepository) DeleteApiKey(ctx context.Context, service string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM api_keys WHERE service = $1`, service)
	if err != nil {
		return fmt.Errorf("delete api key %q: %w", service, err)
	}
	return nil
}

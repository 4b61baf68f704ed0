package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ghost_protocol/internal/entity"
	"ghost_protocol/internal/secrets"
)

// KnownServices are the providers the settings screen offers slots for.
// The store schema accepts arbitrary service names.
var KnownServices = []string{"claude", "plaid", "solana_rpc"}

// ApiKeys is the credential vault use case. Keys are encrypted before they
// are handed to the repository.
type ApiKeys struct {
	Kr     ApiKeyRepository
	cipher *secrets.Cipher

	now func() time.Time
}

// NewApiKeys creates the vault service with the given repository and cipher.
func NewApiKeys(kr ApiKeyRepository, cipher *secrets.Cipher) *ApiKeys {
	return &ApiKeys{
		Kr:     kr,
		cipher: cipher,
		now:    time.Now,
	}
}

// List reports presence and creation time for every known service. A
// missing key resolves to "no key present", never an error.
func (a *ApiKeys) List(ctx context.Context) ([]*ApiKeyStatus, error) {
	statuses := make([]*ApiKeyStatus, 0, len(KnownServices))
	for _, service := range KnownServices {
		key, err := a.Kr.GetApiKey(ctx, service)
		switch {
		case errors.Is(err, ErrApiKeyNotFound):
			statuses = append(statuses, &ApiKeyStatus{Service: service})
		case err != nil:
			return nil, fmt.Errorf("list api keys: %w", err)
		default:
			created := key.CreatedAt
			statuses = append(statuses, &ApiKeyStatus{
				Service:   service,
				HasKey:    true,
				CreatedAt: &created,
			})
		}
	}
	return statuses, nil
}

// Save encrypts and inserts-or-replaces the credential for a service.
func (a *ApiKeys) Save(ctx context.Context, service, key string) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("%w: empty service", ErrInvalidApiKey)
	}
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidApiKey)
	}

	encrypted, err := a.cipher.Encrypt(key)
	if err != nil {
		return fmt.Errorf("encrypt api key: %w", err)
	}
	return a.Kr.UpsertApiKey(ctx, &entity.ApiKey{
		Service:      service,
		EncryptedKey: encrypted,
		CreatedAt:    a.now().UTC(),
	})
}

// Delete removes the credential for a service. Deleting a key that was
// never saved is not an error.
func (a *ApiKeys) Delete(ctx context.Context, service string) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("%w: empty service", ErrInvalidApiKey)
	}
	return a.Kr.DeleteApiKey(ctx, service)
}

package entity

import "time"

// ApiKey is a stored provider credential. The key material is encrypted
// before it reaches the store.
type ApiKey struct {
	Service      string
	EncryptedKey string
	CreatedAt    time.Time
}

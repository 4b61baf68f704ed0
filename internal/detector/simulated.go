// Package detector provides the detection pass that feeds the seeder. In
// production this would analyze aggregated bank transactions with an AI
// classifier; the shipped implementation returns a fixed candidate set.
package detector

import (
	"context"

	"ghost_protocol/internal/entity"
)

// Simulated returns the same seven subscriptions on every run.
type Simulated struct{}

func NewSimulated() *Simulated {
	return &Simulated{}
}

func (d *Simulated) DetectSubscriptions(_ context.Context) ([]*entity.Subscription, error) {
	candidates := []struct {
		name        string
		amountCents int64
		merchant    string
	}{
		{"Netflix Premium", 2299, "Netflix Inc."},
		{"Spotify Family", 1699, "Spotify AB"},
		{"Adobe Creative Cloud", 5499, "Adobe Systems"},
		{"ChatGPT Plus", 2000, "OpenAI"},
		{"Gym Membership", 4999, "Planet Fitness"},
		{"iCloud+ 200GB", 299, "Apple Inc."},
		{"YouTube Premium", 1399, "Google LLC"},
	}

	subs := make([]*entity.Subscription, 0, len(candidates))
	for _, c := range candidates {
		subs = append(subs, &entity.Subscription{
			Name:        c.name,
			AmountCents: c.amountCents,
			Frequency:   "monthly",
			Merchant:    c.merchant,
			Status:      entity.StatusActive,
		})
	}
	return subs, nil
}

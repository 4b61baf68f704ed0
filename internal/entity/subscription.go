package entity

import (
	"fmt"
	"time"
)

// Status of a subscription. The only transition is active -> cancelled.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Subscription is one recurring charge detected on the user's accounts.
type Subscription struct {
	// ID - identifier assigned by the store on insert
	ID int64
	// Name - display label, e.g. "Netflix Premium"
	Name string
	// AmountCents - charge per billing cycle, in integer cents
	AmountCents int64
	// Frequency - billing cadence tag; the detector only emits "monthly"
	Frequency string
	// Merchant - billing entity, used in generated correspondence
	Merchant string
	// Status - active or cancelled
	Status Status
	// CancelledAt - set iff Status is cancelled
	CancelledAt *time.Time
	// CancelTx - optional proof reference recorded at cancellation time
	CancelTx *string
}

// AmountString renders the cycle amount with two decimals, e.g. "22.99".
func (s *Subscription) AmountString() string {
	return fmt.Sprintf("%d.%02d", s.AmountCents/100, s.AmountCents%100)
}

// AmountDollars converts the cent amount for JSON responses.
func (s *Subscription) AmountDollars() float64 {
	return float64(s.AmountCents) / 100
}

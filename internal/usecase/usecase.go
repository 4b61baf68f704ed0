package usecase

import (
	"context"
	"errors"
	"time"

	"ghost_protocol/internal/entity"
)

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -destination=usecase_mock.go -package=usecase ghost_protocol/internal/usecase SubscriptionRepository,ApiKeyRepository,Detector,ProofRecorder

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadyCancelled     = errors.New("subscription already cancelled")
	ErrInvalidID            = errors.New("invalid id")
	ErrInvalidFilter        = errors.New("invalid filter")
	ErrApiKeyNotFound       = errors.New("api key not found")
	ErrInvalidApiKey        = errors.New("invalid api key")
)

// ListFilter selects which subscriptions a listing returns.
type ListFilter string

const (
	FilterAll    ListFilter = "all"
	FilterActive ListFilter = "active"
)

// ScanResult is the outcome of the detection pass over active subscriptions.
type ScanResult struct {
	SubscriptionsFound int64
	TotalMonthlyCents  int64
	TotalAnnualCents   int64
}

// Stats holds the header counters across both statuses.
type Stats struct {
	ActiveCount        int64
	CancelledCount     int64
	ActiveMonthlyCents int64
	SavedMonthlyCents  int64
	SavedAnnualCents   int64
	OnchainProofCount  int64
}

// SavingsSummary reports spend still active vs. spend eliminated by cancellations.
type SavingsSummary struct {
	MonthlySavedCents  int64
	AnnualSavedCents   int64
	MonthlyActiveCents int64
	AnnualActiveCents  int64
}

// CancellationRequest is the email artifact produced for one subscription.
// It is computed on demand and never persisted.
type CancellationRequest struct {
	ID           int64
	EmailSubject string
	EmailBody    string
}

// ActivityEntry is one line of the reconstructed event history.
type ActivityEntry struct {
	ID        int64
	Action    string
	Detail    string
	Timestamp string
}

// ApiKeyStatus reports credential presence for one provider service.
type ApiKeyStatus struct {
	Service   string
	HasKey    bool
	CreatedAt *time.Time
}

// SubscriptionRepository is store access for the lifecycle engine and the
// aggregation queries. Aggregates return zero for an empty table.
type SubscriptionRepository interface {
	// CountSubs - total number of stored subscriptions
	CountSubs(ctx context.Context) (int64, error)
	// InsertSubs - bulk insert inside one transaction, assigns IDs
	InsertSubs(ctx context.Context, subs []*entity.Subscription) error
	// GetSubByID - fetch one subscription
	GetSubByID(ctx context.Context, id int64) (*entity.Subscription, error)
	// ListSubs - list by filter, ordered by id
	ListSubs(ctx context.Context, f ListFilter) ([]*entity.Subscription, error)
	// ListCancelledSubs - cancelled rows ordered by cancelled_at descending
	ListCancelledSubs(ctx context.Context) ([]*entity.Subscription, error)
	// MarkCancelled - set status, timestamp and proof reference for an id
	MarkCancelled(ctx context.Context, id int64, at time.Time, txRef *string) error
	// CountByStatus - row count for one status
	CountByStatus(ctx context.Context, status entity.Status) (int64, error)
	// SumAmountByStatus - cent total for one status
	SumAmountByStatus(ctx context.Context, status entity.Status) (int64, error)
	// SumAmountAll - cent total regardless of status
	SumAmountAll(ctx context.Context) (int64, error)
	// CountWithCancelTx - rows carrying an on-chain proof reference
	CountWithCancelTx(ctx context.Context) (int64, error)
}

// ApiKeyRepository is store access for the credential vault.
type ApiKeyRepository interface {
	// GetApiKey - fetch one credential row, ErrApiKeyNotFound when absent
	GetApiKey(ctx context.Context, service string) (*entity.ApiKey, error)
	// UpsertApiKey - insert or replace a credential row
	UpsertApiKey(ctx context.Context, key *entity.ApiKey) error
	// DeleteApiKey - remove a credential row; absent rows are not an error
	DeleteApiKey(ctx context.Context, service string) error
}

// Detector produces the candidate subscription set for the seeding pass.
// A production implementation would call a transaction aggregator plus an
// AI classifier; the shipped one is simulated.
type Detector interface {
	DetectSubscriptions(ctx context.Context) ([]*entity.Subscription, error)
}

// ProofRecorder obtains an opaque on-chain reference attesting that a
// cancellation was confirmed.
type ProofRecorder interface {
	RecordProof(ctx context.Context, sub *entity.Subscription) (string, error)
}

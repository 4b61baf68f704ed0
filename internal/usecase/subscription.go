package usecase

import (
	"context"
	"fmt"
	"time"

	"ghost_protocol/internal/entity"
)

const (
	actionScanComplete          = "scan_complete"
	actionSubscriptionCancelled = "subscription_cancelled"

	// No real scan timestamp is persisted, so the synthetic detection
	// entry carries a placeholder.
	firstLaunchTimestamp = "On first launch"
)

// Subscription coordinates the lifecycle, seeding and aggregation use cases
// via the repository. All aggregates are recomputed from the store on every
// call; the use case itself holds no state.
type Subscription struct {
	Sr    SubscriptionRepository
	Det   Detector
	Proof ProofRecorder

	now func() time.Time
}

// NewSubscription creates the use case service with the given repository
// and capability implementations.
func NewSubscription(sr SubscriptionRepository, det Detector, proof ProofRecorder) *Subscription {
	return &Subscription{
		Sr:    sr,
		Det:   det,
		Proof: proof,
		now:   time.Now,
	}
}

// EnsureSeeded populates an empty store with the detector's candidate set.
// Safe to call on every startup: any existing subscription makes it a no-op.
func (s *Subscription) EnsureSeeded(ctx context.Context) error {
	count, err := s.Sr.CountSubs(ctx)
	if err != nil {
		return fmt.Errorf("ensure seeded: %w", err)
	}
	if count > 0 {
		return nil
	}

	subs, err := s.Det.DetectSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("detect subscriptions: %w", err)
	}
	if err := s.Sr.InsertSubs(ctx, subs); err != nil {
		return fmt.Errorf("insert detected subscriptions: %w", err)
	}
	return nil
}

// Scan runs the first-scan entry point: seed if empty, then report the
// active set and its monthly/annual totals.
func (s *Subscription) Scan(ctx context.Context) (*ScanResult, error) {
	if err := s.EnsureSeeded(ctx); err != nil {
		return nil, err
	}

	count, err := s.Sr.CountByStatus(ctx, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	total, err := s.Sr.SumAmountByStatus(ctx, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return &ScanResult{
		SubscriptionsFound: count,
		TotalMonthlyCents:  total,
		TotalAnnualCents:   total * 12,
	}, nil
}

// Stats reports header counters across both statuses.
func (s *Subscription) Stats(ctx context.Context) (*Stats, error) {
	active, err := s.Sr.CountByStatus(ctx, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	cancelled, err := s.Sr.CountByStatus(ctx, entity.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	activeTotal, err := s.Sr.SumAmountByStatus(ctx, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	savedTotal, err := s.Sr.SumAmountByStatus(ctx, entity.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	proofs, err := s.Sr.CountWithCancelTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	return &Stats{
		ActiveCount:        active,
		CancelledCount:     cancelled,
		ActiveMonthlyCents: activeTotal,
		SavedMonthlyCents:  savedTotal,
		SavedAnnualCents:   savedTotal * 12,
		OnchainProofCount:  proofs,
	}, nil
}

// ListSubs returns subscriptions by filter. An empty filter means active
// only, matching the dashboard default.
func (s *Subscription) ListSubs(ctx context.Context, f ListFilter) ([]*entity.Subscription, error) {
	switch f {
	case "":
		f = FilterActive
	case FilterAll, FilterActive:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, f)
	}
	return s.Sr.ListSubs(ctx, f)
}

// RequestCancellation materializes the cancellation email for an active
// subscription. Read-only: the store is not touched, the caller hands the
// artifact to a mail client. Requesting twice for a cancelled subscription
// fails with ErrAlreadyCancelled.
func (s *Subscription) RequestCancellation(ctx context.Context, id int64) (*CancellationRequest, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	sub, err := s.Sr.GetSubByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status == entity.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	return &CancellationRequest{
		ID:           sub.ID,
		EmailSubject: fmt.Sprintf("Cancellation Request - %s Subscription", sub.Name),
		EmailBody:    cancellationEmailBody(sub),
	}, nil
}

// ConfirmCancellation records a completed cancellation: status, timestamp
// and optional proof reference. It deliberately does not re-check the prior
// status: repeated confirmation is legal and the last writer's timestamp
// wins. With recordProof set and no reference supplied, the proof recorder
// produces one.
func (s *Subscription) ConfirmCancellation(ctx context.Context, id int64, txRef *string, recordProof bool) (*entity.Subscription, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	sub, err := s.Sr.GetSubByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if txRef == nil && recordProof && s.Proof != nil {
		sig, err := s.Proof.RecordProof(ctx, sub)
		if err != nil {
			return nil, fmt.Errorf("record proof: %w", err)
		}
		txRef = &sig
	}

	if err := s.Sr.MarkCancelled(ctx, id, s.now().UTC(), txRef); err != nil {
		return nil, err
	}
	return s.Sr.GetSubByID(ctx, id)
}

// SavingsSummary reports monthly/annual spend still active and eliminated.
func (s *Subscription) SavingsSummary(ctx context.Context) (*SavingsSummary, error) {
	saved, err := s.Sr.SumAmountByStatus(ctx, entity.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("savings summary: %w", err)
	}
	active, err := s.Sr.SumAmountByStatus(ctx, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("savings summary: %w", err)
	}

	return &SavingsSummary{
		MonthlySavedCents:  saved,
		AnnualSavedCents:   saved * 12,
		MonthlyActiveCents: active,
		AnnualActiveCents:  active * 12,
	}, nil
}

// ActivityLog reconstructs the event history from store state: one
// detection entry covering every stored subscription, then one entry per
// cancelled subscription, newest first. Nothing is persisted.
func (s *Subscription) ActivityLog(ctx context.Context) ([]*ActivityEntry, error) {
	var entries []*ActivityEntry
	nextID := int64(1)

	count, err := s.Sr.CountSubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("activity log: %w", err)
	}
	if count > 0 {
		total, err := s.Sr.SumAmountAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("activity log: %w", err)
		}
		entries = append(entries, &ActivityEntry{
			ID:        nextID,
			Action:    actionScanComplete,
			Detail:    fmt.Sprintf("Detected %d subscriptions totaling $%s/month", count, centsString(total)),
			Timestamp: firstLaunchTimestamp,
		})
		nextID++
	}

	cancelled, err := s.Sr.ListCancelledSubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("activity log: %w", err)
	}
	for _, sub := range cancelled {
		txInfo := ""
		if sub.CancelTx != nil {
			txInfo = " (on-chain proof recorded)"
		}
		ts := "Unknown"
		if sub.CancelledAt != nil {
			ts = sub.CancelledAt.UTC().Format(time.RFC3339)
		}
		entries = append(entries, &ActivityEntry{
			ID:        nextID,
			Action:    actionSubscriptionCancelled,
			Detail:    fmt.Sprintf("Cancelled %s — saving $%s/month%s", sub.Name, sub.AmountString(), txInfo),
			Timestamp: ts,
		})
		nextID++
	}

	return entries, nil
}

// DBStatus reports store connectivity for the settings screen.
func (s *Subscription) DBStatus(ctx context.Context) (string, error) {
	count, err := s.Sr.CountSubs(ctx)
	if err != nil {
		return "", fmt.Errorf("db status: %w", err)
	}
	return fmt.Sprintf("Connected (%d subscriptions)", count), nil
}

func centsString(c int64) string {
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}

func cancellationEmailBody(sub *entity.Subscription) string {
	return fmt.Sprintf(`To Whom It May Concern at %s,

I am writing to request the immediate cancellation of my %s subscription, currently billed at $%s per %s billing cycle.

Please treat this message as a formal cancellation request under applicable consumer protection regulations. I expect the cancellation to be processed within 24 hours of receipt.

Kindly reply with written confirmation of the cancellation and issue any prorated refund owed for the unused portion of the current billing period.

Regards,
The account holder`,
		sub.Merchant, sub.Name, sub.AmountString(), sub.Frequency)
}

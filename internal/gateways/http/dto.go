package http

import (
	"github.com/go-openapi/strfmt"

	"ghost_protocol/internal/entity"
	"ghost_protocol/internal/usecase"
)

type subscriptionResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Amount      float64          `json:"amount"`
	Frequency   string           `json:"frequency"`
	Merchant    string           `json:"merchant"`
	Status      string           `json:"status"`
	CancelledAt *strfmt.DateTime `json:"cancelled_at,omitempty"`
	CancelTx    *string          `json:"cancel_tx,omitempty"`
}

func toSubscriptionResponse(s *entity.Subscription) *subscriptionResponse {
	resp := &subscriptionResponse{
		ID:        s.ID,
		Name:      s.Name,
		Amount:    s.AmountDollars(),
		Frequency: s.Frequency,
		Merchant:  s.Merchant,
		Status:    string(s.Status),
		CancelTx:  s.CancelTx,
	}
	if s.CancelledAt != nil {
		dt := strfmt.DateTime(*s.CancelledAt)
		resp.CancelledAt = &dt
	}
	return resp
}

type scanResponse struct {
	SubscriptionsFound int64   `json:"subscriptions_found"`
	TotalMonthly       float64 `json:"total_monthly"`
	TotalAnnual        float64 `json:"total_annual"`
}

func toScanResponse(r *usecase.ScanResult) *scanResponse {
	return &scanResponse{
		SubscriptionsFound: r.SubscriptionsFound,
		TotalMonthly:       dollars(r.TotalMonthlyCents),
		TotalAnnual:        dollars(r.TotalAnnualCents),
	}
}

type statsResponse struct {
	ActiveCount       int64   `json:"active_count"`
	CancelledCount    int64   `json:"cancelled_count"`
	ActiveMonthly     float64 `json:"active_monthly"`
	SavedMonthly      float64 `json:"saved_monthly"`
	SavedAnnual       float64 `json:"saved_annual"`
	OnchainProofCount int64   `json:"onchain_proof_count"`
}

func toStatsResponse(s *usecase.Stats) *statsResponse {
	return &statsResponse{
		ActiveCount:       s.ActiveCount,
		CancelledCount:    s.CancelledCount,
		ActiveMonthly:     dollars(s.ActiveMonthlyCents),
		SavedMonthly:      dollars(s.SavedMonthlyCents),
		SavedAnnual:       dollars(s.SavedAnnualCents),
		OnchainProofCount: s.OnchainProofCount,
	}
}

type savingsResponse struct {
	MonthlySaved  float64 `json:"monthly_saved"`
	AnnualSaved   float64 `json:"annual_saved"`
	MonthlyActive float64 `json:"monthly_active"`
	AnnualActive  float64 `json:"annual_active"`
}

func toSavingsResponse(s *usecase.SavingsSummary) *savingsResponse {
	return &savingsResponse{
		MonthlySaved:  dollars(s.MonthlySavedCents),
		AnnualSaved:   dollars(s.AnnualSavedCents),
		MonthlyActive: dollars(s.MonthlyActiveCents),
		AnnualActive:  dollars(s.AnnualActiveCents),
	}
}

type cancellationRequestResponse struct {
	ID           int64  `json:"id"`
	EmailSubject string `json:"email_subject"`
	EmailBody    string `json:"email_body"`
}

type activityEntryResponse struct {
	ID        int64  `json:"id"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	Timestamp string `json:"timestamp"`
}

type apiKeyStatusResponse struct {
	Service   string           `json:"service"`
	HasKey    bool             `json:"has_key"`
	CreatedAt *strfmt.DateTime `json:"created_at,omitempty"`
}

func toApiKeyStatusResponse(s *usecase.ApiKeyStatus) *apiKeyStatusResponse {
	resp := &apiKeyStatusResponse{
		Service: s.Service,
		HasKey:  s.HasKey,
	}
	if s.CreatedAt != nil {
		dt := strfmt.DateTime(*s.CreatedAt)
		resp.CreatedAt = &dt
	}
	return resp
}

type confirmCancellationInput struct {
	TxReference *string `json:"tx_reference"`
	RecordProof bool    `json:"record_proof"`
}

type saveApiKeyInput struct {
	Key string `json:"key"`
}

func dollars(cents int64) float64 {
	return float64(cents) / 100
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"ooh-ops/internal/core/domain"
	"ooh-ops/internal/core/port"
)

// CreateQuotation stores a quotation with the supplied fields verbatim.
// Totals and durations are the caller's responsibility, computed through
// CalculateQuotationTotal before calling.
func (s *CampaignService) CreateQuotation(ctx context.Context, in port.CreateQuotationInput) (string, error) {
	q := &domain.Quotation{
		QuotationNumber: newQuotationNumber(),
		ProposalID:      in.ProposalID,
		Client:          in.Client,
		Products:        in.Products,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		ValidUntil:      in.ValidUntil,
		Status:          domain.QuotationDraft,
		DurationDays:    in.DurationDays,
		TotalAmount:     in.TotalAmount,
		CreatedBy:       in.CreatedBy,
	}
	id, err := s.quotations.Create(ctx, q)
	if err != nil {
		s.logger.Error("create quotation", slog.String("proposal_id", in.ProposalID), slog.Any("error", err))
		return "", err
	}
	if s.metrics != nil {
		s.metrics.QuotationsCreatedTotal.Inc()
	}
	return id, nil
}

// CalculateQuotationTotal prorates the items over one shared range. Pure
// arithmetic; callers re-run it whenever the range changes and fall back
// to flat unit prices when the range is cleared.
func (s *CampaignService) CalculateQuotationTotal(items []domain.LineItem, r *domain.DateRange) domain.CampaignTotal {
	return domain.ProrateAll(items, r)
}

// newQuotationNumber composes a human-readable, practically unique
// number from the current time and a random suffix. It is not a true
// sequence and carries no global uniqueness guarantee.
func newQuotationNumber() string {
	return fmt.Sprintf("QT-%d-%04d", time.Now().Unix(), rand.IntN(10000))
}

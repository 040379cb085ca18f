package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"ooh-ops/internal/core/domain"
	"ooh-ops/internal/core/port"
)

// CreateCostEstimateFromProposal derives an estimate from the proposal's
// products, one rental line per site plus the two always-present
// synthetic cost lines at zero. Rental lines are prorated when the
// options carry a date range. With SendEmail set the stored estimate is
// mailed to the recipient and the owning campaign moves to
// cost_estimate_pending; a missing campaign skips the transition.
func (s *CampaignService) CreateCostEstimateFromProposal(ctx context.Context, proposalID string, actor domain.Actor, opts port.CostEstimateOptions) (string, error) {
	p, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		s.logger.Error("fetch proposal", slog.String("proposal_id", proposalID), slog.Any("error", err))
		return "", err
	}
	if p == nil {
		return "", port.ErrProposalNotFound
	}
	products, err := s.proposals.GetProducts(ctx, proposalID)
	if err != nil {
		s.logger.Error("fetch proposal products", slog.String("proposal_id", proposalID), slog.Any("error", err))
		return "", err
	}

	var r *domain.DateRange
	if opts.StartDate != nil && opts.EndDate != nil {
		r = &domain.DateRange{Start: *opts.StartDate, End: *opts.EndDate}
	}

	items := make([]domain.CostEstimateLineItem, 0, len(products)+2)
	for _, prod := range products {
		li := domain.CostEstimateLineItem{
			ItemID:      prod.ID,
			Category:    domain.CategoryRental,
			Description: prod.Name,
			Location:    prod.Location,
			Quantity:    max(prod.Quantity, 1),
			UnitPrice:   prod.MonthlyRate,
		}
		li.Recalculate(r)
		items = append(items, li)
	}
	for _, synthetic := range []struct{ category, description string }{
		{domain.CategoryProduction, "Production cost"},
		{domain.CategoryInstallation, "Installation cost"},
	} {
		li := domain.CostEstimateLineItem{
			Category:    synthetic.category,
			Description: synthetic.description,
			Quantity:    1,
			UnitPrice:   decimal.Zero,
		}
		li.Recalculate(r)
		items = append(items, li)
	}

	status := domain.CostEstimateDraft
	if opts.SendEmail {
		status = domain.CostEstimateSent
	}
	ce := &domain.CostEstimate{
		ProposalID: proposalID,
		Status:     status,
		LineItems:  items,
		StartDate:  opts.StartDate,
		EndDate:    opts.EndDate,
		CreatedBy:  actor.OrSystem().UserID,
	}
	if r.Valid() {
		ce.DurationDays = r.Days()
	}
	ce.SumTotals()

	id, err := s.costEstimates.Create(ctx, ce)
	if err != nil {
		s.logger.Error("create cost estimate", slog.String("proposal_id", proposalID), slog.Any("error", err))
		return "", err
	}
	ce.ID = id
	if s.metrics != nil {
		s.metrics.CostEstimatesTotal.Inc()
	}

	if opts.SendEmail {
		if err = s.mailer.SendCostEstimate(ctx, opts.Recipient, ce); err != nil {
			// The estimate is already stored; delivery failure is logged
			// and does not fail the creation.
			s.logger.Error("send cost estimate", slog.String("cost_estimate_id", id), slog.Any("error", err))
		}
		campaign, err := s.campaigns.GetByProposalID(ctx, proposalID)
		if err != nil {
			s.logger.Error("fetch campaign for transition", slog.String("proposal_id", proposalID), slog.Any("error", err))
			return id, nil
		}
		if campaign != nil {
			if err = s.UpdateCampaignStatus(ctx, campaign.ID, domain.StatusCostEstimatePending, actor); err != nil {
				return id, err
			}
		}
	}
	return id, nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"ooh-ops/internal/core/domain"
	"ooh-ops/internal/core/port"
	"ooh-ops/internal/metrics"
)

// CampaignService implements port.CampaignUseCase. It glues the pricing
// engine and the status state machine to the repositories and carries the
// error policy: write failures are logged and re-thrown, list and
// timeline reads degrade to empty results.
type CampaignService struct {
	campaigns     port.CampaignRepository
	proposals     port.ProposalRepository
	quotations    port.QuotationRepository
	costEstimates port.CostEstimateRepository
	mailer        port.Mailer
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// NewCampaignService wires the service. Metrics may be nil; the logger
// defaults to slog.Default when nil.
func NewCampaignService(
	campaigns port.CampaignRepository,
	proposals port.ProposalRepository,
	quotations port.QuotationRepository,
	costEstimates port.CostEstimateRepository,
	mailer port.Mailer,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CampaignService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignService{
		campaigns:     campaigns,
		proposals:     proposals,
		quotations:    quotations,
		costEstimates: costEstimates,
		mailer:        mailer,
		metrics:       m,
		logger:        logger,
	}
}

// CreateCampaignFromProposal converts a proposal into a campaign record.
// The initial status mirrors the proposal's own status and is chosen at
// creation, not applied as a transition; the seeded timeline entry is a
// creation event, not a status event.
func (s *CampaignService) CreateCampaignFromProposal(ctx context.Context, proposalID string, actor domain.Actor) (*domain.Campaign, error) {
	p, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		s.logger.Error("fetch proposal", slog.String("proposal_id", proposalID), slog.Any("error", err))
		return nil, err
	}
	if p == nil {
		return nil, port.ErrProposalNotFound
	}

	total := p.TotalAmount
	if total.IsZero() {
		products, err := s.proposals.GetProducts(ctx, proposalID)
		if err != nil {
			s.logger.Error("fetch proposal products", slog.String("proposal_id", proposalID), slog.Any("error", err))
			return nil, err
		}
		total = decimal.Zero
		for _, prod := range products {
			total = total.Add(prod.MonthlyRate.Mul(decimal.NewFromInt(max(prod.Quantity, 1))))
		}
	}

	initial := domain.StatusProposalDraft
	if p.Status != domain.ProposalDraft {
		initial = domain.StatusProposalSent
	}

	created := domain.NewTimelineEvent(
		domain.EventProposalCreated,
		"Campaign Created",
		fmt.Sprintf("Campaign created from proposal %q", p.Title),
		actor,
	)
	c := &domain.Campaign{
		Title:        p.Title,
		Client:       p.Client,
		ProposalID:   p.ID,
		QuotationIDs: []string{},
		TotalAmount:  total,
		Status:       initial,
		Timeline:     []domain.TimelineEvent{created},
		CreatedBy:    actor.OrSystem().UserID,
	}
	id, err := s.campaigns.Create(ctx, c)
	if err != nil {
		s.logger.Error("create campaign", slog.String("proposal_id", proposalID), slog.Any("error", err))
		return nil, err
	}
	c.ID = id
	return c, nil
}

// GetCampaignByID returns the campaign, or nil when absent.
func (s *CampaignService) GetCampaignByID(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.campaigns.GetByID(ctx, id)
}

// GetCampaignByProposalID returns the campaign owning the proposal.
func (s *CampaignService) GetCampaignByProposalID(ctx context.Context, proposalID string) (*domain.Campaign, error) {
	return s.campaigns.GetByProposalID(ctx, proposalID)
}

// GetCampaigns lists campaigns matching the filter. Store failures are
// logged and yield an empty slice.
func (s *CampaignService) GetCampaigns(ctx context.Context, f port.CampaignFilter) []domain.Campaign {
	list, err := s.campaigns.List(ctx, f)
	if err != nil {
		s.logger.Error("list campaigns", slog.Any("error", err))
		return []domain.Campaign{}
	}
	return list
}

// GetCampaignsByUserID lists campaigns created by the user.
func (s *CampaignService) GetCampaignsByUserID(ctx context.Context, userID string) []domain.Campaign {
	return s.GetCampaigns(ctx, port.CampaignFilter{CreatedBy: userID})
}

// UpdateCampaignStatus applies the status and records exactly one paired
// timeline event through an atomic repository write. Reachability is not
// validated; any status may follow any other.
func (s *CampaignService) UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus, actor domain.Actor) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", port.ErrInvalidStatus, status)
	}
	event := domain.NewStatusEvent(status, actor)
	if err := s.campaigns.UpdateStatus(ctx, id, status, event); err != nil {
		s.logger.Error("update campaign status",
			slog.String("campaign_id", id),
			slog.String("status", string(status)),
			slog.Any("error", err))
		return err
	}
	if s.metrics != nil {
		s.metrics.StatusTransitionsTotal.WithLabelValues(string(status)).Inc()
	}
	return nil
}

// AddCampaignTimelineEvent appends a free-form event without changing
// status.
func (s *CampaignService) AddCampaignTimelineEvent(ctx context.Context, id string, t domain.EventType, title, description string, actor domain.Actor) error {
	event := domain.NewTimelineEvent(t, title, description, actor)
	if err := s.campaigns.AppendTimelineEvent(ctx, id, event); err != nil {
		s.logger.Error("append timeline event", slog.String("campaign_id", id), slog.Any("error", err))
		return err
	}
	return nil
}

// AddQuotationToCampaign links the quotation id with set semantics and
// records a quotation_created event. Status is untouched.
func (s *CampaignService) AddQuotationToCampaign(ctx context.Context, id, quotationID string, actor domain.Actor) error {
	event := domain.NewTimelineEvent(
		domain.EventQuotationCreated,
		"Quotation Created",
		fmt.Sprintf("Quotation %s linked to campaign", quotationID),
		actor,
	)
	if err := s.campaigns.LinkQuotation(ctx, id, quotationID, event); err != nil {
		s.logger.Error("link quotation",
			slog.String("campaign_id", id),
			slog.String("quotation_id", quotationID),
			slog.Any("error", err))
		return err
	}
	return nil
}

// GetCampaignTimeline merges the campaign's own events with the mapped
// proposal activity log, newest first. Any failure degrades to an empty
// slice so the audit trail never blocks primary functionality.
func (s *CampaignService) GetCampaignTimeline(ctx context.Context, id string) []domain.TimelineEvent {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("fetch campaign for timeline", slog.String("campaign_id", id), slog.Any("error", err))
		s.countTimelineFailure()
		return []domain.TimelineEvent{}
	}
	if c == nil {
		return []domain.TimelineEvent{}
	}
	var activities []domain.ProposalActivity
	if c.ProposalID != "" {
		activities, err = s.proposals.GetActivities(ctx, c.ProposalID)
		if err != nil {
			s.logger.Error("fetch proposal activities",
				slog.String("proposal_id", c.ProposalID),
				slog.Any("error", err))
			s.countTimelineFailure()
			return []domain.TimelineEvent{}
		}
	}
	return domain.MergeTimeline(c.Timeline, activities)
}

func (s *CampaignService) countTimelineFailure() {
	if s.metrics != nil {
		s.metrics.TimelineMergeFailures.Inc()
	}
}

package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"ooh-ops/internal/core/domain"
)

// CampaignUseCase is the primary port into the campaign lifecycle core.
// Write operations log and re-throw store failures; list and timeline
// reads degrade to empty results so a failing audit trail never blocks
// the caller.
type CampaignUseCase interface {
	// CreateCampaignFromProposal converts a proposal into a campaign. The
	// initial status follows the proposal's own status; this is not a
	// transition and emits a creation event instead of a status event.
	CreateCampaignFromProposal(ctx context.Context, proposalID string, actor domain.Actor) (*domain.Campaign, error)

	// GetCampaignByID returns the campaign or nil when absent.
	GetCampaignByID(ctx context.Context, id string) (*domain.Campaign, error)
	// GetCampaignByProposalID returns the campaign owning the proposal.
	GetCampaignByProposalID(ctx context.Context, proposalID string) (*domain.Campaign, error)
	// GetCampaigns lists campaigns matching the filter; failures yield an
	// empty slice.
	GetCampaigns(ctx context.Context, f CampaignFilter) []domain.Campaign
	// GetCampaignsByUserID lists campaigns created by the user; failures
	// yield an empty slice.
	GetCampaignsByUserID(ctx context.Context, userID string) []domain.Campaign

	// UpdateCampaignStatus applies a status and records exactly one
	// timeline event for it. Any status may be set from any status; the
	// machine is permissive by design.
	UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus, actor domain.Actor) error
	// AddCampaignTimelineEvent appends a free-form event (e.g. a note)
	// without changing status.
	AddCampaignTimelineEvent(ctx context.Context, id string, t domain.EventType, title, description string, actor domain.Actor) error
	// AddQuotationToCampaign links a quotation id (idempotent) and records
	// a quotation_created event. Status is untouched.
	AddQuotationToCampaign(ctx context.Context, id, quotationID string, actor domain.Actor) error
	// GetCampaignTimeline merges the campaign's own events with the
	// proposal activity log, newest first. Missing campaign or a failing
	// fetch returns an empty slice, never an error.
	GetCampaignTimeline(ctx context.Context, id string) []domain.TimelineEvent

	// CreateQuotation stores a quotation. Totals and durations must be
	// supplied by the caller, computed via CalculateQuotationTotal.
	CreateQuotation(ctx context.Context, in CreateQuotationInput) (string, error)
	// CalculateQuotationTotal prorates the items over the range. Pure.
	CalculateQuotationTotal(items []domain.LineItem, r *domain.DateRange) domain.CampaignTotal
	// CreateCostEstimateFromProposal builds an estimate from the
	// proposal's products plus the synthetic production and installation
	// lines, optionally sending it by email and moving the campaign to
	// cost_estimate_pending.
	CreateCostEstimateFromProposal(ctx context.Context, proposalID string, actor domain.Actor, opts CostEstimateOptions) (string, error)
}

// CreateQuotationInput carries the fields stored verbatim on quotation
// creation. The quotation number is assigned by the service.
type CreateQuotationInput struct {
	ProposalID   string
	Client       string
	Products     []domain.QuotationProduct
	StartDate    *time.Time
	EndDate      *time.Time
	ValidUntil   time.Time
	DurationDays int
	TotalAmount  decimal.Decimal
	CreatedBy    string
}

// CostEstimateOptions tunes cost-estimate creation. When both dates are
// set the rental lines are prorated; SendEmail additionally delivers the
// estimate and transitions the owning campaign.
type CostEstimateOptions struct {
	StartDate *time.Time
	EndDate   *time.Time
	SendEmail bool
	Recipient string
}

package port

import (
	"context"
	"errors"

	"ooh-ops/internal/core/domain"
)

var (
	ErrProposalNotFound = errors.New("proposal not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidStatus    = errors.New("invalid campaign status")
)

// CampaignFilter narrows campaign list reads. Zero-value fields are
// ignored.
type CampaignFilter struct {
	Status    domain.CampaignStatus
	Client    string
	CreatedBy string
}

// CampaignRepository is the outbound persistence port for campaigns.
// Reads return (nil, nil) when the record is absent. Timeline and
// quotation-id fields are append-only: implementations must append
// atomically so concurrent writers never lose entries, even though the
// status column itself stays last-write-wins.
type CampaignRepository interface {
	// Create stores a new campaign and returns its id.
	Create(ctx context.Context, c *domain.Campaign) (string, error)
	// GetByID returns the campaign or nil when absent.
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	// GetByProposalID returns the campaign owning the proposal, or nil.
	GetByProposalID(ctx context.Context, proposalID string) (*domain.Campaign, error)
	// List returns campaigns matching the filter, newest first.
	List(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	// UpdateStatus writes the new status, bumps updatedAt and appends the
	// paired timeline event in one atomic operation. A status must never
	// be persisted without its event, or vice versa.
	UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus, event domain.TimelineEvent) error
	// AppendTimelineEvent appends one event without touching status.
	AppendTimelineEvent(ctx context.Context, id string, event domain.TimelineEvent) error
	// LinkQuotation adds the quotation id with set semantics (repeat calls
	// do not duplicate) and appends the given event.
	LinkQuotation(ctx context.Context, id, quotationID string, event domain.TimelineEvent) error
}

// ProposalRepository reads proposals and their activity log. Both are
// owned by the sales module; this service never writes them.
type ProposalRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Proposal, error)
	GetProducts(ctx context.Context, proposalID string) ([]domain.ProposalProduct, error)
	// GetActivities returns the external activity log entries for the
	// proposal, used only for timeline merging.
	GetActivities(ctx context.Context, proposalID string) ([]domain.ProposalActivity, error)
}

// QuotationRepository is the outbound persistence port for quotations.
type QuotationRepository interface {
	Create(ctx context.Context, q *domain.Quotation) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Quotation, error)
}

// CostEstimateRepository is the outbound persistence port for cost
// estimates.
type CostEstimateRepository interface {
	Create(ctx context.Context, ce *domain.CostEstimate) (string, error)
	GetByID(ctx context.Context, id string) (*domain.CostEstimate, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]domain.CostEstimate, error)
}

// Mailer delivers cost estimates to recipients. Delivery failures are
// reported to the caller; they do not roll back the stored estimate.
type Mailer interface {
	SendCostEstimate(ctx context.Context, to string, ce *domain.CostEstimate) error
}

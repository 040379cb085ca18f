package usecase

import (
	"context"
	"io"
	"log/slog"

	"ooh-ops/internal/core/domain"
	"ooh-ops/internal/core/port"
)

// Hand-rolled port fakes. They record calls and keep just enough
// in-memory behavior to exercise the service's orchestration.

type statusUpdate struct {
	id     string
	status domain.CampaignStatus
	event  domain.TimelineEvent
}

type linkCall struct {
	id          string
	quotationID string
	event       domain.TimelineEvent
}

type fakeCampaignRepo struct {
	byID          map[string]*domain.Campaign
	byProposal    map[string]*domain.Campaign
	listResult    []domain.Campaign
	lastFilter    port.CampaignFilter
	created       []*domain.Campaign
	statusUpdates []statusUpdate
	appended      []domain.TimelineEvent
	linked        []linkCall

	getErr    error
	listErr   error
	createErr error
	writeErr  error
}

func (f *fakeCampaignRepo) Create(_ context.Context, c *domain.Campaign) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, c)
	return "camp-1", nil
}

func (f *fakeCampaignRepo) GetByID(_ context.Context, id string) (*domain.Campaign, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byID[id], nil
}

func (f *fakeCampaignRepo) GetByProposalID(_ context.Context, proposalID string) (*domain.Campaign, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byProposal[proposalID], nil
}

func (f *fakeCampaignRepo) List(_ context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeCampaignRepo) UpdateStatus(_ context.Context, id string, status domain.CampaignStatus, event domain.TimelineEvent) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.statusUpdates = append(f.statusUpdates, statusUpdate{id, status, event})
	return nil
}

func (f *fakeCampaignRepo) AppendTimelineEvent(_ context.Context, _ string, event domain.TimelineEvent) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.appended = append(f.appended, event)
	return nil
}

func (f *fakeCampaignRepo) LinkQuotation(_ context.Context, id, quotationID string, event domain.TimelineEvent) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.linked = append(f.linked, linkCall{id, quotationID, event})
	if c := f.byID[id]; c != nil && !c.HasQuotation(quotationID) {
		c.QuotationIDs = append(c.QuotationIDs, quotationID)
	}
	return nil
}

type fakeProposalRepo struct {
	proposal   *domain.Proposal
	products   []domain.ProposalProduct
	activities []domain.ProposalActivity

	getErr        error
	productsErr   error
	activitiesErr error
}

func (f *fakeProposalRepo) GetByID(_ context.Context, id string) (*domain.Proposal, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.proposal == nil || f.proposal.ID != id {
		return nil, nil
	}
	return f.proposal, nil
}

func (f *fakeProposalRepo) GetProducts(_ context.Context, _ string) ([]domain.ProposalProduct, error) {
	return f.products, f.productsErr
}

func (f *fakeProposalRepo) GetActivities(_ context.Context, _ string) ([]domain.ProposalActivity, error) {
	if f.activitiesErr != nil {
		return nil, f.activitiesErr
	}
	return f.activities, nil
}

type fakeQuotationRepo struct {
	created   []*domain.Quotation
	createErr error
}

func (f *fakeQuotationRepo) Create(_ context.Context, q *domain.Quotation) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, q)
	return "quo-1", nil
}

func (f *fakeQuotationRepo) GetByID(_ context.Context, _ string) (*domain.Quotation, error) {
	return nil, nil
}

type fakeCostEstimateRepo struct {
	created   []*domain.CostEstimate
	createErr error
}

func (f *fakeCostEstimateRepo) Create(_ context.Context, ce *domain.CostEstimate) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, ce)
	return "ce-1", nil
}

func (f *fakeCostEstimateRepo) GetByID(_ context.Context, _ string) (*domain.CostEstimate, error) {
	return nil, nil
}

func (f *fakeCostEstimateRepo) ListByProposalID(_ context.Context, _ string) ([]domain.CostEstimate, error) {
	return nil, nil
}

type sentMail struct {
	to string
	ce *domain.CostEstimate
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) SendCostEstimate(_ context.Context, to string, ce *domain.CostEstimate) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{to, ce})
	return nil
}

type testEnv struct {
	campaigns     *fakeCampaignRepo
	proposals     *fakeProposalRepo
	quotations    *fakeQuotationRepo
	costEstimates *fakeCostEstimateRepo
	mailer        *fakeMailer
	svc           *CampaignService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		campaigns:     &fakeCampaignRepo{byID: map[string]*domain.Campaign{}, byProposal: map[string]*domain.Campaign{}},
		proposals:     &fakeProposalRepo{},
		quotations:    &fakeQuotationRepo{},
		costEstimates: &fakeCostEstimateRepo{},
		mailer:        &fakeMailer{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.svc = NewCampaignService(env.campaigns, env.proposals, env.quotations, env.costEstimates, env.mailer, nil, logger)
	return env
}

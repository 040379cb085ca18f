package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ooh-ops/internal/core/domain"
	"ooh-ops/internal/core/port"
)

func testProposal() *domain.Proposal {
	return &domain.Proposal{ID: "prop-1", Title: "EDSA Q3", Client: "Acme", Status: domain.ProposalSent}
}

func testProducts() []domain.ProposalProduct {
	return []domain.ProposalProduct{
		{ID: "s1", Name: "EDSA Guadalupe NB", Location: "Makati", MonthlyRate: decimal.RequireFromString("30000"), Quantity: 1},
		{ID: "s2", Name: "EDSA Ortigas NB", Location: "Mandaluyong", MonthlyRate: decimal.RequireFromString("9000"), Quantity: 1},
	}
}

func TestCreateCostEstimateFromProposal(t *testing.T) {
	env := newTestEnv()
	env.proposals.proposal = testProposal()
	env.proposals.products = testProducts()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)
	id, err := env.svc.CreateCostEstimateFromProposal(context.Background(), "prop-1", domain.Actor{UserID: "u1"}, port.CostEstimateOptions{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.Equal(t, "ce-1", id)
	require.Len(t, env.costEstimates.created, 1)

	ce := env.costEstimates.created[0]
	require.Equal(t, domain.CostEstimateDraft, ce.Status)
	require.Len(t, ce.LineItems, 4, "one line per product plus production and installation")
	require.Equal(t, domain.CategoryProduction, ce.LineItems[2].Category)
	require.Equal(t, domain.CategoryInstallation, ce.LineItems[3].Category)
	require.True(t, ce.LineItems[2].Total.IsZero())
	require.True(t, ce.LineItems[3].Total.IsZero())

	require.Equal(t, 5, ce.DurationDays)
	require.True(t, ce.LineItems[0].Total.Equal(decimal.RequireFromString("5000")))
	require.True(t, ce.LineItems[1].Total.Equal(decimal.RequireFromString("1500")))
	require.True(t, ce.TotalAmount.Equal(decimal.RequireFromString("6500")))

	require.Empty(t, env.mailer.sent)
	require.Empty(t, env.campaigns.statusUpdates)
}

func TestCreateCostEstimateWithoutDates(t *testing.T) {
	env := newTestEnv()
	env.proposals.proposal = testProposal()
	env.proposals.products = testProducts()

	_, err := env.svc.CreateCostEstimateFromProposal(context.Background(), "prop-1", domain.Actor{}, port.CostEstimateOptions{})
	require.NoError(t, err)

	ce := env.costEstimates.created[0]
	require.Equal(t, 0, ce.DurationDays)
	require.True(t, ce.LineItems[0].Total.Equal(decimal.RequireFromString("30000")), "flat monthly rate without a range")
	require.True(t, ce.TotalAmount.Equal(decimal.RequireFromString("39000")))
}

func TestCreateCostEstimateSendsEmailAndTransitions(t *testing.T) {
	env := newTestEnv()
	env.proposals.proposal = testProposal()
	env.proposals.products = testProducts()
	env.campaigns.byProposal["prop-1"] = &domain.Campaign{ID: "camp-1", ProposalID: "prop-1", Status: domain.StatusProposalSent}

	_, err := env.svc.CreateCostEstimateFromProposal(context.Background(), "prop-1", domain.Actor{UserID: "u1"}, port.CostEstimateOptions{
		SendEmail: true,
		Recipient: "client@acme.example",
	})
	require.NoError(t, err)

	require.Equal(t, domain.CostEstimateSent, env.costEstimates.created[0].Status)
	require.Len(t, env.mailer.sent, 1)
	require.Equal(t, "client@acme.example", env.mailer.sent[0].to)

	require.Len(t, env.campaigns.statusUpdates, 1)
	require.Equal(t, domain.StatusCostEstimatePending, env.campaigns.statusUpdates[0].status)
	require.Equal(t, "camp-1", env.campaigns.statusUpdates[0].id)
}

func TestCreateCostEstimateSendEmailNoCampaign(t *testing.T) {
	env := newTestEnv()
	env.proposals.proposal = testProposal()
	env.proposals.products = testProducts()

	id, err := env.svc.CreateCostEstimateFromProposal(context.Background(), "prop-1", domain.Actor{}, port.CostEstimateOptions{
		SendEmail: true,
		Recipient: "client@acme.example",
	})
	require.NoError(t, err, "missing campaign skips the transition")
	require.Equal(t, "ce-1", id)
	require.Len(t, env.mailer.sent, 1)
	require.Empty(t, env.campaigns.statusUpdates)
}

func TestCreateCostEstimateMailFailureDoesNotFail(t *testing.T) {
	env := newTestEnv()
	env.proposals.proposal = testProposal()
	env.proposals.products = testProducts()
	env.mailer.sendErr = errors.New("relay down")

	id, err := env.svc.CreateCostEstimateFromProposal(context.Background(), "prop-1", domain.Actor{}, port.CostEstimateOptions{
		SendEmail: true,
		Recipient: "client@acme.example",
	})
	require.NoError(t, err, "the estimate is stored; delivery failure is logged")
	require.Equal(t, "ce-1", id)
}

func TestCreateCostEstimateProposalMissing(t *testing.T) {
	env := newTestEnv()
	_, err := env.svc.CreateCostEstimateFromProposal(context.Background(), "nope", domain.Actor{}, port.CostEstimateOptions{})
	require.ErrorIs(t, err, port.ErrProposalNotFound)
	require.Empty(t, env.costEstimates.created)
}

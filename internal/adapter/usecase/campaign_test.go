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

func TestCreateCampaignFromProposal(t *testing.T) {
	env := newTestEnv()
	env.proposals.proposal = &domain.Proposal{
		ID:     "prop-1",
		Title:  "EDSA Q3",
		Client: "Acme",
		Status: domain.ProposalSent,
	}
	env.proposals.products = []domain.ProposalProduct{
		{ID: "s1", MonthlyRate: decimal.RequireFromString("30000"), Quantity: 1},
		{ID: "s2", MonthlyRate: decimal.RequireFromString("9000"), Quantity: 1},
	}

	c, err := env.svc.CreateCampaignFromProposal(context.Background(), "prop-1", domain.Actor{UserID: "u1", UserName: "Alice"})
	require.NoError(t, err)
	require.Equal(t, "camp-1", c.ID)
	require.Equal(t, domain.StatusProposalSent, c.Status, "initial status follows the proposal status")
	require.Equal(t, "Acme", c.Client)
	require.True(t, c.TotalAmount.Equal(decimal.RequireFromString("39000")))
	require.Len(t, c.Timeline, 1)
	require.Equal(t, domain.EventProposalCreated, c.Timeline[0].Type)
	require.Equal(t, "u1", c.Timeline[0].UserID)
}

func TestCreateCampaignFromDraftProposal(t *testing.T) {
	env := newTestEnv()
	env.proposals.proposal = &domain.Proposal{ID: "prop-1", Status: domain.ProposalDraft}

	c, err := env.svc.CreateCampaignFromProposal(context.Background(), "prop-1", domain.Actor{})
	require.NoError(t, err)
	require.Equal(t, domain.StatusProposalDraft, c.Status)
	require.Equal(t, "system", c.CreatedBy, "absent actor defaults to the system sentinel")
}

func TestCreateCampaignProposalMissing(t *testing.T) {
	env := newTestEnv()
	_, err := env.svc.CreateCampaignFromProposal(context.Background(), "nope", domain.Actor{})
	require.ErrorIs(t, err, port.ErrProposalNotFound)
	require.Empty(t, env.campaigns.created)
}

func TestUpdateCampaignStatusEmitsOneEvent(t *testing.T) {
	env := newTestEnv()
	for _, status := range domain.Statuses() {
		env.campaigns.statusUpdates = nil
		err := env.svc.UpdateCampaignStatus(context.Background(), "camp-1", status, domain.Actor{UserID: "u1", UserName: "Alice"})
		require.NoError(t, err)
		require.Len(t, env.campaigns.statusUpdates, 1, "status %q", status)

		up := env.campaigns.statusUpdates[0]
		require.Equal(t, status, up.status)
		require.Equal(t, status.EventType(), up.event.Type)
		require.Equal(t, status.Title(), up.event.Title)
		require.Equal(t, "Campaign status changed to "+status.Label(), up.event.Description)
		require.Equal(t, "u1", up.event.UserID)
	}
}

func TestUpdateCampaignStatusRejectsUnknown(t *testing.T) {
	env := newTestEnv()
	err := env.svc.UpdateCampaignStatus(context.Background(), "camp-1", "paused", domain.Actor{})
	require.ErrorIs(t, err, port.ErrInvalidStatus)
	require.Empty(t, env.campaigns.statusUpdates)
}

func TestUpdateCampaignStatusRethrowsWriteError(t *testing.T) {
	env := newTestEnv()
	env.campaigns.writeErr = errors.New("store down")
	err := env.svc.UpdateCampaignStatus(context.Background(), "camp-1", domain.StatusCampaignActive, domain.Actor{})
	require.Error(t, err)
}

func TestGetCampaignsSwallowsStoreFailure(t *testing.T) {
	env := newTestEnv()
	env.campaigns.listErr = errors.New("store down")
	list := env.svc.GetCampaigns(context.Background(), port.CampaignFilter{})
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestGetCampaignsByUserID(t *testing.T) {
	env := newTestEnv()
	env.campaigns.listResult = []domain.Campaign{{ID: "camp-1", CreatedBy: "u1"}}
	list := env.svc.GetCampaignsByUserID(context.Background(), "u1")
	require.Len(t, list, 1)
	require.Equal(t, port.CampaignFilter{CreatedBy: "u1"}, env.campaigns.lastFilter)
}

func TestAddQuotationToCampaign(t *testing.T) {
	env := newTestEnv()
	env.campaigns.byID["camp-1"] = &domain.Campaign{ID: "camp-1"}

	err := env.svc.AddQuotationToCampaign(context.Background(), "camp-1", "quo-9", domain.Actor{UserID: "u1"})
	require.NoError(t, err)
	require.NoError(t, env.svc.AddQuotationToCampaign(context.Background(), "camp-1", "quo-9", domain.Actor{UserID: "u1"}))

	require.Equal(t, []string{"quo-9"}, env.campaigns.byID["camp-1"].QuotationIDs, "repeated links do not duplicate")
	require.Len(t, env.campaigns.linked, 2)
	require.Equal(t, domain.EventQuotationCreated, env.campaigns.linked[0].event.Type)
	require.Empty(t, env.campaigns.statusUpdates, "linking never changes status")
}

func TestAddCampaignTimelineEvent(t *testing.T) {
	env := newTestEnv()
	err := env.svc.AddCampaignTimelineEvent(context.Background(), "camp-1", domain.EventNoteAdded, "Note", "Client asked for a discount", domain.Actor{UserID: "u2", UserName: "Bob"})
	require.NoError(t, err)
	require.Len(t, env.campaigns.appended, 1)
	require.Equal(t, domain.EventNoteAdded, env.campaigns.appended[0].Type)
	require.Equal(t, "Bob", env.campaigns.appended[0].UserName)
}

func TestGetCampaignTimelineMerges(t *testing.T) {
	env := newTestEnv()
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	env.campaigns.byID["camp-1"] = &domain.Campaign{
		ID:         "camp-1",
		ProposalID: "prop-1",
		Timeline: []domain.TimelineEvent{
			{ID: "e1", Timestamp: base.Add(time.Hour)},
			{ID: "e2", Timestamp: base.Add(4 * time.Hour)},
		},
	}
	env.proposals.activities = []domain.ProposalActivity{
		{ID: "a1", Type: "created", Timestamp: base},
		{ID: "a2", Type: "viewed", Timestamp: base.Add(2 * time.Hour)},
		{ID: "a3", Type: "email_sent", Timestamp: base.Add(3 * time.Hour)},
	}

	timeline := env.svc.GetCampaignTimeline(context.Background(), "camp-1")
	require.Len(t, timeline, 5)
	for i := 1; i < len(timeline); i++ {
		require.False(t, timeline[i].Timestamp.After(timeline[i-1].Timestamp))
	}
}

func TestGetCampaignTimelineMissingCampaign(t *testing.T) {
	env := newTestEnv()
	timeline := env.svc.GetCampaignTimeline(context.Background(), "nope")
	require.NotNil(t, timeline)
	require.Empty(t, timeline)
}

func TestGetCampaignTimelineActivityFailure(t *testing.T) {
	env := newTestEnv()
	env.campaigns.byID["camp-1"] = &domain.Campaign{
		ID:         "camp-1",
		ProposalID: "prop-1",
		Timeline:   []domain.TimelineEvent{{ID: "e1"}},
	}
	env.proposals.activitiesErr = errors.New("activity log down")

	timeline := env.svc.GetCampaignTimeline(context.Background(), "camp-1")
	require.Empty(t, timeline, "audit-trail failures degrade to an empty result")
}

func TestGetCampaignTimelineNoProposal(t *testing.T) {
	env := newTestEnv()
	env.campaigns.byID["camp-1"] = &domain.Campaign{
		ID:       "camp-1",
		Timeline: []domain.TimelineEvent{{ID: "e1"}, {ID: "e2"}},
	}
	timeline := env.svc.GetCampaignTimeline(context.Background(), "camp-1")
	require.Len(t, timeline, 2)
}

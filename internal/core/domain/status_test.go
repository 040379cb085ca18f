package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusTableIsTotal(t *testing.T) {
	for _, s := range Statuses() {
		require.True(t, s.Valid(), "status %q missing from table", s)
		require.NotEmpty(t, s.Title(), "status %q has no title", s)
		require.NotEmpty(t, s.EventType(), "status %q has no event type", s)
	}
	require.Len(t, Statuses(), 16)
}

func TestStatusValid(t *testing.T) {
	require.True(t, StatusBookingConfirmed.Valid())
	require.False(t, CampaignStatus("paused").Valid())
	require.False(t, CampaignStatus("").Valid())
}

func TestStatusTerminal(t *testing.T) {
	terminal := map[CampaignStatus]bool{
		StatusProposalDeclined:     true,
		StatusCostEstimateDeclined: true,
		StatusQuotationDeclined:    true,
		StatusCampaignCompleted:    true,
		StatusCampaignCancelled:    true,
	}
	for _, s := range Statuses() {
		require.Equal(t, terminal[s], s.Terminal(), "status %q", s)
	}
}

func TestStatusLabel(t *testing.T) {
	require.Equal(t, "cost estimate pending", StatusCostEstimatePending.Label())
	require.Equal(t, "proposal_draft", string(StatusProposalDraft))
	require.Equal(t, "proposal draft", StatusProposalDraft.Label())
}

func TestStatusEventTypeMirrorsName(t *testing.T) {
	// Status events use the status name as their event type.
	for _, s := range Statuses() {
		require.Equal(t, string(s), string(s.EventType()), "status %q", s)
	}
}

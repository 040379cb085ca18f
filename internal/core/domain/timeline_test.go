package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewStatusEvent(t *testing.T) {
	e := NewStatusEvent(StatusProposalSent, Actor{UserID: "u1", UserName: "Alice"})
	require.Equal(t, EventProposalSent, e.Type)
	require.Equal(t, "Proposal Sent", e.Title)
	require.Equal(t, "Campaign status changed to proposal sent", e.Description)
	require.Equal(t, "u1", e.UserID)
	require.Equal(t, "Alice", e.UserName)
	require.NotEmpty(t, e.ID)
	require.False(t, e.Timestamp.IsZero())
}

func TestNewStatusEventSystemActorDefault(t *testing.T) {
	e := NewStatusEvent(StatusCampaignActive, Actor{})
	require.Equal(t, "system", e.UserID)
	require.Equal(t, "System", e.UserName)
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	events := []TimelineEvent{
		{ID: "a", Timestamp: base},
		{ID: "b", Timestamp: base.Add(2 * time.Hour)},
		{ID: "c", Timestamp: base.Add(time.Hour)},
	}
	SortNewestFirst(events)
	require.Equal(t, []string{"b", "c", "a"}, []string{events[0].ID, events[1].ID, events[2].ID})
}

func TestMergeTimeline(t *testing.T) {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	own := []TimelineEvent{
		{ID: "e1", Type: EventProposalCreated, Timestamp: base.Add(1 * time.Hour)},
		{ID: "e2", Type: EventProposalSent, Timestamp: base.Add(5 * time.Hour)},
	}
	activities := []ProposalActivity{
		{ID: "a1", Type: "viewed", Timestamp: base.Add(2 * time.Hour)},
		{ID: "a2", Type: "comment_added", Timestamp: base.Add(3 * time.Hour)},
		{ID: "a3", Type: "pdf_generated", Timestamp: base.Add(4 * time.Hour)},
	}

	merged := MergeTimeline(own, activities)
	require.Len(t, merged, 5, "length equals own plus mapped activities")
	for i := 1; i < len(merged); i++ {
		require.False(t, merged[i].Timestamp.After(merged[i-1].Timestamp), "not sorted newest first at %d", i)
	}
	require.Equal(t, "e2", merged[0].ID)
	require.Equal(t, "e1", merged[4].ID)
}

func TestActivityMapping(t *testing.T) {
	tests := []struct {
		activityType string
		want         EventType
	}{
		{"created", EventProposalCreated},
		{"status_changed", EventProposalSent},
		{"viewed", EventNoteAdded},
		{"pdf_generated", EventNoteAdded},
		{"email_sent", EventProposalSent},
		{"updated", EventNoteAdded},
		{"comment_added", EventNoteAdded},
		{"something_else", EventNoteAdded},
	}
	for _, tt := range tests {
		t.Run(tt.activityType, func(t *testing.T) {
			a := ProposalActivity{Type: tt.activityType}
			require.Equal(t, tt.want, a.TimelineEvent().Type)
		})
	}
}

func TestActivityMappingPreservesPerformer(t *testing.T) {
	ts := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	a := ProposalActivity{
		ID:              "a1",
		Type:            "viewed",
		Description:     "Proposal opened",
		PerformedBy:     "u9",
		PerformedByName: "Bob",
		Timestamp:       ts,
		Location:        &ActivityLocation{City: "Quezon City"},
	}
	e := a.TimelineEvent()
	require.Equal(t, "a1", e.ID)
	require.Equal(t, "u9", e.UserID)
	require.Equal(t, "Bob", e.UserName)
	require.Equal(t, ts, e.Timestamp)
	require.Equal(t, "Proposal opened from Quezon City", e.Description)
}

func TestActivityMappingNoLocation(t *testing.T) {
	a := ProposalActivity{Type: "updated", Description: "Prices revised"}
	require.Equal(t, "Prices revised", a.TimelineEvent().Description)
}

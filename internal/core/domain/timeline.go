package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// EventType classifies a timeline entry. Status events mirror the
// campaign status names; the remaining types record auxiliary activity.
type EventType string

const (
	EventProposalCreated      EventType = "proposal_created"
	EventProposalDraft        EventType = "proposal_draft"
	EventProposalSent         EventType = "proposal_sent"
	EventProposalAccepted     EventType = "proposal_accepted"
	EventProposalDeclined     EventType = "proposal_declined"
	EventCostEstimatePending  EventType = "cost_estimate_pending"
	EventCostEstimateSent     EventType = "cost_estimate_sent"
	EventCostEstimateApproved EventType = "cost_estimate_approved"
	EventCostEstimateDeclined EventType = "cost_estimate_declined"
	EventQuotationPending     EventType = "quotation_pending"
	EventQuotationSent        EventType = "quotation_sent"
	EventQuotationAccepted    EventType = "quotation_accepted"
	EventQuotationDeclined    EventType = "quotation_declined"
	EventBookingConfirmed     EventType = "booking_confirmed"
	EventCampaignActive       EventType = "campaign_active"
	EventCampaignCompleted    EventType = "campaign_completed"
	EventCampaignCancelled    EventType = "campaign_cancelled"
	EventQuotationCreated     EventType = "quotation_created"
	EventNoteAdded            EventType = "note_added"
)

// TimelineEvent is one immutable audit-trail entry on a campaign.
type TimelineEvent struct {
	ID          string            `json:"id"`
	Type        EventType         `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	UserID      string            `json:"userId"`
	UserName    string            `json:"userName"`
	Timestamp   time.Time         `json:"timestamp"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// NewTimelineEvent builds a timeline entry attributed to the actor, or to
// the system sentinel when the actor is absent.
func NewTimelineEvent(t EventType, title, description string, actor Actor) TimelineEvent {
	actor = actor.OrSystem()
	return TimelineEvent{
		ID:          uuid.NewString(),
		Type:        t,
		Title:       title,
		Description: description,
		UserID:      actor.UserID,
		UserName:    actor.UserName,
		Timestamp:   time.Now().UTC(),
	}
}

// NewStatusEvent builds the single timeline entry recorded for a status
// change. Type and title come from the status table.
func NewStatusEvent(status CampaignStatus, actor Actor) TimelineEvent {
	desc := fmt.Sprintf("Campaign status changed to %s", status.Label())
	return NewTimelineEvent(status.EventType(), status.Title(), desc, actor)
}

// SortNewestFirst orders events by descending timestamp in place. Order
// among equal timestamps is unspecified.
func SortNewestFirst(events []TimelineEvent) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
}

// MergeTimeline combines a campaign's own events with externally recorded
// proposal activity into one audit trail, newest first. The result is a
// read-time projection and is never persisted.
func MergeTimeline(own []TimelineEvent, activities []ProposalActivity) []TimelineEvent {
	merged := make([]TimelineEvent, 0, len(own)+len(activities))
	merged = append(merged, own...)
	for _, a := range activities {
		merged = append(merged, a.TimelineEvent())
	}
	SortNewestFirst(merged)
	return merged
}

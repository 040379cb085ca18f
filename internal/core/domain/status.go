package domain

import "strings"

// CampaignStatus is the lifecycle stage of a client engagement across the
// proposal, cost-estimate, quotation, booking and campaign pipeline.
type CampaignStatus string

const (
	StatusProposalDraft        CampaignStatus = "proposal_draft"
	StatusProposalSent         CampaignStatus = "proposal_sent"
	StatusProposalAccepted     CampaignStatus = "proposal_accepted"
	StatusProposalDeclined     CampaignStatus = "proposal_declined"
	StatusCostEstimatePending  CampaignStatus = "cost_estimate_pending"
	StatusCostEstimateSent     CampaignStatus = "cost_estimate_sent"
	StatusCostEstimateApproved CampaignStatus = "cost_estimate_approved"
	StatusCostEstimateDeclined CampaignStatus = "cost_estimate_declined"
	StatusQuotationPending     CampaignStatus = "quotation_pending"
	StatusQuotationSent        CampaignStatus = "quotation_sent"
	StatusQuotationAccepted    CampaignStatus = "quotation_accepted"
	StatusQuotationDeclined    CampaignStatus = "quotation_declined"
	StatusBookingConfirmed     CampaignStatus = "booking_confirmed"
	StatusCampaignActive       CampaignStatus = "campaign_active"
	StatusCampaignCompleted    CampaignStatus = "campaign_completed"
	StatusCampaignCancelled    CampaignStatus = "campaign_cancelled"
)

type statusInfo struct {
	title    string
	event    EventType
	terminal bool
}

// statusTable maps every status to its display title and the timeline
// event type emitted when the status is applied. The table is total: a
// missing entry means the status string is not part of the enum.
var statusTable = map[CampaignStatus]statusInfo{
	StatusProposalDraft:        {"Proposal Draft", EventProposalDraft, false},
	StatusProposalSent:         {"Proposal Sent", EventProposalSent, false},
	StatusProposalAccepted:     {"Proposal Accepted", EventProposalAccepted, false},
	StatusProposalDeclined:     {"Proposal Declined", EventProposalDeclined, true},
	StatusCostEstimatePending:  {"Cost Estimate Pending", EventCostEstimatePending, false},
	StatusCostEstimateSent:     {"Cost Estimate Sent", EventCostEstimateSent, false},
	StatusCostEstimateApproved: {"Cost Estimate Approved", EventCostEstimateApproved, false},
	StatusCostEstimateDeclined: {"Cost Estimate Declined", EventCostEstimateDeclined, true},
	StatusQuotationPending:     {"Quotation Pending", EventQuotationPending, false},
	StatusQuotationSent:        {"Quotation Sent", EventQuotationSent, false},
	StatusQuotationAccepted:    {"Quotation Accepted", EventQuotationAccepted, false},
	StatusQuotationDeclined:    {"Quotation Declined", EventQuotationDeclined, true},
	StatusBookingConfirmed:     {"Booking Confirmed", EventBookingConfirmed, false},
	StatusCampaignActive:       {"Campaign Active", EventCampaignActive, false},
	StatusCampaignCompleted:    {"Campaign Completed", EventCampaignCompleted, true},
	StatusCampaignCancelled:    {"Campaign Cancelled", EventCampaignCancelled, true},
}

// Valid reports whether the status is a member of the enum.
func (s CampaignStatus) Valid() bool {
	_, ok := statusTable[s]
	return ok
}

// Terminal reports whether the pipeline defines no further stage after
// this status. Transitions out of a terminal status are not forbidden;
// the state machine is deliberately permissive.
func (s CampaignStatus) Terminal() bool {
	return statusTable[s].terminal
}

// Title returns the human-readable name of the status.
func (s CampaignStatus) Title() string {
	return statusTable[s].title
}

// EventType returns the timeline event type recorded when a campaign
// enters this status.
func (s CampaignStatus) EventType() EventType {
	return statusTable[s].event
}

// Label returns the status with underscores replaced by spaces, as used
// in generated event descriptions.
func (s CampaignStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// Statuses returns every campaign status in pipeline order.
func Statuses() []CampaignStatus {
	return []CampaignStatus{
		StatusProposalDraft, StatusProposalSent, StatusProposalAccepted, StatusProposalDeclined,
		StatusCostEstimatePending, StatusCostEstimateSent, StatusCostEstimateApproved, StatusCostEstimateDeclined,
		StatusQuotationPending, StatusQuotationSent, StatusQuotationAccepted, StatusQuotationDeclined,
		StatusBookingConfirmed, StatusCampaignActive, StatusCampaignCompleted, StatusCampaignCancelled,
	}
}

package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus is the sales-side state of a proposal. Proposals are
// authored outside this service; only the status matters here, to pick
// the initial campaign status.
type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "draft"
	ProposalSent     ProposalStatus = "sent"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalDeclined ProposalStatus = "declined"
)

// Proposal is a sales-authored bundle of billboard sites offered to a
// client. Read-only to this service.
type Proposal struct {
	ID          string
	Title       string
	Client      string
	Status      ProposalStatus
	Products    []ProposalProduct
	TotalAmount decimal.Decimal
	CreatedBy   string
	CreatedAt   time.Time
}

// ProposalProduct is one billboard site within a proposal. MonthlyRate is
// the flat 30-day rental price.
type ProposalProduct struct {
	ID          string
	Name        string
	Location    string
	MonthlyRate decimal.Decimal
	Quantity    int64
}

// LineItem converts the product to a pricing-engine line item.
func (p ProposalProduct) LineItem() LineItem {
	return LineItem{
		ItemID:      p.ID,
		UnitPrice:   p.MonthlyRate,
		Description: p.Name,
		Location:    p.Location,
	}
}

// ActivityLocation is the optional geo attribution on a proposal
// activity entry.
type ActivityLocation struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// ProposalActivity is one entry of the external proposal activity log.
// It is consumed only to build the merged campaign timeline; this
// service never writes it.
type ProposalActivity struct {
	ID              string
	Type            string
	Description     string
	PerformedBy     string
	PerformedByName string
	Timestamp       time.Time
	IPAddress       string
	Location        *ActivityLocation
	Details         map[string]string
}

// activityEventTypes remaps external activity types onto native timeline
// event types. Unrecognised types fold into note_added.
var activityEventTypes = map[string]EventType{
	"created":        EventProposalCreated,
	"status_changed": EventProposalSent,
	"viewed":         EventNoteAdded,
	"pdf_generated":  EventNoteAdded,
	"email_sent":     EventProposalSent,
	"updated":        EventNoteAdded,
	"comment_added":  EventNoteAdded,
}

// TimelineEvent maps the activity onto the native timeline shape. The
// performer carries over as the event actor and a known city is folded
// into the description suffix.
func (a ProposalActivity) TimelineEvent() TimelineEvent {
	t, ok := activityEventTypes[a.Type]
	if !ok {
		t = EventNoteAdded
	}
	desc := a.Description
	if a.Location != nil && a.Location.City != "" {
		desc += " from " + a.Location.City
	}
	return TimelineEvent{
		ID:          a.ID,
		Type:        t,
		Title:       humanize(a.Type),
		Description: desc,
		UserID:      a.PerformedBy,
		UserName:    a.PerformedByName,
		Timestamp:   a.Timestamp,
		Metadata:    a.Details,
	}
}

// humanize turns an activity type like "pdf_generated" into "Pdf Generated".
func humanize(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

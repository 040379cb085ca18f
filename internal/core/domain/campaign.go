package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is the long-lived record tracking one client engagement from
// proposal through booking. Timeline is an append-only log; QuotationIDs
// has set semantics (no duplicates, never shrinks).
type Campaign struct {
	ID           string
	Title        string
	Client       string
	ProposalID   string
	QuotationIDs []string
	TotalAmount  decimal.Decimal
	Status       CampaignStatus
	Timeline     []TimelineEvent
	Notes        string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasQuotation reports whether the quotation is already linked.
func (c *Campaign) HasQuotation(quotationID string) bool {
	for _, id := range c.QuotationIDs {
		if id == quotationID {
			return true
		}
	}
	return false
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus is the client-facing lifecycle of a quotation.
// Quotations are never deleted, only transitioned to a terminal status.
type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "draft"
	QuotationSent     QuotationStatus = "sent"
	QuotationViewed   QuotationStatus = "viewed"
	QuotationAccepted QuotationStatus = "accepted"
	QuotationDeclined QuotationStatus = "declined"
	QuotationExpired  QuotationStatus = "expired"
)

// QuotationProduct is a priced line item owned by exactly one quotation.
// DurationDays and ItemTotalAmount are derived by the pricing engine and
// recomputed whenever the owning date range or the unit price changes.
type QuotationProduct struct {
	ItemID          string          `json:"itemId"`
	Description     string          `json:"description"`
	Location        string          `json:"location"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Quantity        int64           `json:"quantity"`
	DurationDays    int             `json:"durationDays"`
	ItemTotalAmount decimal.Decimal `json:"itemTotalAmount"`
}

// Quotation is a priced, dated offer derived from a proposal.
type Quotation struct {
	ID              string
	QuotationNumber string
	ProposalID      string
	Client          string
	Products        []QuotationProduct
	StartDate       *time.Time
	EndDate         *time.Time
	ValidUntil      time.Time
	Status          QuotationStatus
	DurationDays    int
	TotalAmount     decimal.Decimal
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Range returns the quotation's booking period, or nil when either date
// is unset.
func (q *Quotation) Range() *DateRange {
	if q.StartDate == nil || q.EndDate == nil {
		return nil
	}
	return &DateRange{Start: *q.StartDate, End: *q.EndDate}
}

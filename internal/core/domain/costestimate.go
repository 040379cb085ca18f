package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostEstimateStatus is the internal approval lifecycle of a cost
// estimate. Terminal on approve or reject.
type CostEstimateStatus string

const (
	CostEstimateDraft    CostEstimateStatus = "draft"
	CostEstimateSent     CostEstimateStatus = "sent"
	CostEstimateViewed   CostEstimateStatus = "viewed"
	CostEstimateApproved CostEstimateStatus = "approved"
	CostEstimateRejected CostEstimateStatus = "rejected"
)

// Synthetic line-item categories added to every cost estimate alongside
// the per-site rental lines.
const (
	CategoryRental       = "site_rental"
	CategoryProduction   = "production_cost"
	CategoryInstallation = "installation_cost"
)

// CostEstimateLineItem is one cost line. Total is derived: prorated over
// the estimate's date range when one is set, quantity*unitPrice otherwise.
type CostEstimateLineItem struct {
	ItemID       string          `json:"itemId"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	DurationDays int             `json:"durationDays"`
	Total        decimal.Decimal `json:"total"`
}

// Recalculate re-derives the line total. Rental lines prorate over the
// range; synthetic cost lines are flat regardless of duration.
func (li *CostEstimateLineItem) Recalculate(r *DateRange) {
	if li.Category != CategoryRental {
		li.DurationDays = 0
		li.Total = li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
		return
	}
	p := Prorate(li.UnitPrice, li.Quantity, r)
	li.DurationDays = p.DurationDays
	li.Total = p.ItemTotal
}

// CostEstimate is an internal itemized cost breakdown for one proposal.
// A proposal may carry several revisions.
type CostEstimate struct {
	ID              string
	ProposalID      string
	Status          CostEstimateStatus
	LineItems       []CostEstimateLineItem
	StartDate       *time.Time
	EndDate         *time.Time
	DurationDays    int
	TotalAmount     decimal.Decimal
	ApprovedAt      *time.Time
	ApprovedBy      string
	RejectedAt      *time.Time
	RejectedBy      string
	RejectionReason string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Range returns the estimate's booking period, or nil when either date
// is unset.
func (ce *CostEstimate) Range() *DateRange {
	if ce.StartDate == nil || ce.EndDate == nil {
		return nil
	}
	return &DateRange{Start: *ce.StartDate, End: *ce.EndDate}
}

// SumTotals recomputes the estimate total from its line items.
func (ce *CostEstimate) SumTotals() {
	total := decimal.Zero
	for _, li := range ce.LineItems {
		total = total.Add(li.Total)
	}
	ce.TotalAmount = total
}

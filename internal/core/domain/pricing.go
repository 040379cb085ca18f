package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// daysPerMonth is the fixed billing month used for proration. Site rates
// are quoted per 30-day month regardless of the calendar month.
var daysPerMonth = decimal.NewFromInt(30)

// DateRange is a campaign booking period. Zero-value ends mean the range
// is unset and line items are billed at their flat monthly rate.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the range is present and both bounds are set. A
// nil receiver is a cleared range.
func (r *DateRange) Valid() bool {
	return r != nil && !r.Start.IsZero() && !r.End.IsZero()
}

// Days returns the duration of the range in whole days, rounding up. The
// range is treated as undirected: a reversed range yields the same count.
func (r DateRange) Days() int {
	diff := r.End.Sub(r.Start)
	if diff < 0 {
		diff = -diff
	}
	const day = 24 * time.Hour
	return int((diff + day - 1) / day)
}

// LineItem is a priced sellable unit, typically a billboard site within a
// proposal. UnitPrice is the canonical monthly (30-day) rate.
type LineItem struct {
	ItemID      string          `json:"itemId"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
}

// Proration is the result of prorating a single line item.
type Proration struct {
	DurationDays int
	ItemTotal    decimal.Decimal
}

// CampaignTotal aggregates prorated line items over a shared date range.
type CampaignTotal struct {
	DurationDays int
	TotalAmount  decimal.Decimal
}

// Prorate converts a monthly unit price into a cost for the given date
// range: unitPrice/30 per day, times the whole-day duration, times qty.
// Without a valid range it falls back to the flat unitPrice*qty and a
// duration of zero. The function is pure; it never fails.
func Prorate(unitPrice decimal.Decimal, qty int64, r *DateRange) Proration {
	q := decimal.NewFromInt(qty)
	if !r.Valid() {
		return Proration{DurationDays: 0, ItemTotal: unitPrice.Mul(q)}
	}
	days := r.Days()
	perDay := unitPrice.Div(daysPerMonth)
	total := perDay.Mul(decimal.NewFromInt(int64(days))).Mul(q)
	return Proration{DurationDays: days, ItemTotal: total}
}

// ProrateAll prorates every item over one shared range and sums the item
// totals. The duration is computed once from the range, not per item. An
// empty item list yields a zero total.
func ProrateAll(items []LineItem, r *DateRange) CampaignTotal {
	var days int
	if r.Valid() {
		days = r.Days()
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(Prorate(item.UnitPrice, 1, r).ItemTotal)
	}
	return CampaignTotal{DurationDays: days, TotalAmount: total}
}

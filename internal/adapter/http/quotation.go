package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"ooh-ops/internal/core/domain"
	"ooh-ops/internal/core/port"
)

// handleCreateQuotation stores a quotation. The caller supplies products
// and totals already run through the proration calculator; this endpoint
// assigns the quotation number and persists verbatim.
func (h *Handler) handleCreateQuotation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProposalID   string                    `json:"proposalId"`
		Client       string                    `json:"client"`
		Products     []domain.QuotationProduct `json:"products"`
		StartDate    *time.Time                `json:"startDate"`
		EndDate      *time.Time                `json:"endDate"`
		ValidUntil   time.Time                 `json:"validUntil"`
		DurationDays int                       `json:"durationDays"`
		TotalAmount  decimal.Decimal           `json:"totalAmount"`
		CreatedBy    string                    `json:"createdBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ProposalID == "" {
		http.Error(w, "missing proposalId", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateQuotation(r.Context(), port.CreateQuotationInput{
		ProposalID:   req.ProposalID,
		Client:       req.Client,
		Products:     req.Products,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ValidUntil:   req.ValidUntil,
		DurationDays: req.DurationDays,
		TotalAmount:  req.TotalAmount,
		CreatedBy:    req.CreatedBy,
	})
	if err != nil {
		h.logger.Error("create quotation error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleQuotationTotal runs the proration calculator over the posted
// items and range. Pure computation: no reads, no writes. Omitting the
// dates yields the duration-less flat total.
func (h *Handler) handleQuotationTotal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items     []domain.LineItem `json:"items"`
		StartDate *time.Time        `json:"startDate"`
		EndDate   *time.Time        `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	var dr *domain.DateRange
	if req.StartDate != nil && req.EndDate != nil {
		dr = &domain.DateRange{Start: *req.StartDate, End: *req.EndDate}
	}
	total := h.svc.CalculateQuotationTotal(req.Items, dr)
	h.respondJSON(w, http.StatusOK, struct {
		DurationDays int             `json:"durationDays"`
		TotalAmount  decimal.Decimal `json:"totalAmount"`
	}{total.DurationDays, total.TotalAmount})
}

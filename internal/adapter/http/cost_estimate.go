package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ooh-ops/internal/core/port"
)

// handleCreateCostEstimate builds a cost estimate from the proposal's
// products. With sendEmail set the estimate is delivered to the
// recipient and the owning campaign moves to cost_estimate_pending.
func (h *Handler) handleCreateCostEstimate(w http.ResponseWriter, r *http.Request) {
	proposalID := chi.URLParam(r, "id")
	var req struct {
		StartDate *time.Time `json:"startDate"`
		EndDate   *time.Time `json:"endDate"`
		SendEmail bool       `json:"sendEmail"`
		Recipient string     `json:"recipient"`
		actorFields
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.SendEmail && req.Recipient == "" {
		http.Error(w, "missing recipient", http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateCostEstimateFromProposal(r.Context(), proposalID, req.actor(), port.CostEstimateOptions{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		SendEmail: req.SendEmail,
		Recipient: req.Recipient,
	})
	if errors.Is(err, port.ErrProposalNotFound) {
		http.Error(w, "proposal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("create cost estimate error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

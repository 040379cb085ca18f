package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ooh-ops/internal/core/domain"
	"ooh-ops/internal/core/port"
)

type actorFields struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

func (a actorFields) actor() domain.Actor {
	return domain.Actor{UserID: a.UserID, UserName: a.UserName}
}

// handleCreateCampaign converts a proposal into a campaign. An unknown
// proposal yields HTTP 404, a malformed body HTTP 400 and store failures
// HTTP 500.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProposalID string `json:"proposalId"`
		actorFields
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.ProposalID == "" {
		http.Error(w, "missing proposalId", http.StatusBadRequest)
		return
	}
	c, err := h.svc.CreateCampaignFromProposal(r.Context(), req.ProposalID, req.actor())
	if errors.Is(err, port.ErrProposalNotFound) {
		http.Error(w, "proposal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("create campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

// handleListCampaigns lists campaigns. Optional `status`, `client` and
// `user_id` query parameters narrow the result. A failing read returns
// an empty list, never an error.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.CampaignFilter{
		Client:    q.Get("client"),
		CreatedBy: q.Get("user_id"),
	}
	if s := q.Get("status"); s != "" {
		status := domain.CampaignStatus(s)
		if !status.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		f.Status = status
	}
	list := h.svc.GetCampaigns(r.Context(), f)
	resp := make([]campaignResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, toCampaignResponse(c))
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// handleGetCampaign fetches a single campaign; absent ids yield 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := h.svc.GetCampaignByID(r.Context(), id)
	if err != nil {
		h.logger.Error("get campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if c == nil {
		http.NotFound(w, r)
		return
	}
	h.respondJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleGetTimeline returns the merged audit trail, newest first. The
// usecase never fails here; a missing campaign or failing activity fetch
// degrades to an empty list.
func (h *Handler) handleGetTimeline(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.respondJSON(w, http.StatusOK, h.svc.GetCampaignTimeline(r.Context(), id))
}

// handleUpdateStatus applies a status transition.
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Status string `json:"status"`
		actorFields
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.svc.UpdateCampaignStatus(r.Context(), id, domain.CampaignStatus(req.Status), req.actor())
	switch {
	case errors.Is(err, port.ErrInvalidStatus):
		http.Error(w, "invalid status", http.StatusBadRequest)
	case errors.Is(err, port.ErrCampaignNotFound):
		http.NotFound(w, r)
	case err != nil:
		h.logger.Error("update status error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleAddEvent appends a free-form note event to the timeline.
func (h *Handler) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		actorFields
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.svc.AddCampaignTimelineEvent(r.Context(), id, domain.EventNoteAdded, req.Title, req.Description, req.actor())
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		http.NotFound(w, r)
	case err != nil:
		h.logger.Error("add event error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleLinkQuotation links a quotation id to the campaign. Repeated
// links are idempotent.
func (h *Handler) handleLinkQuotation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		QuotationID string `json:"quotationId"`
		actorFields
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.QuotationID == "" {
		http.Error(w, "missing quotationId", http.StatusBadRequest)
		return
	}
	err := h.svc.AddQuotationToCampaign(r.Context(), id, req.QuotationID, req.actor())
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		http.NotFound(w, r)
	case err != nil:
		h.logger.Error("link quotation error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"ooh-ops/internal/core/domain"
)

// campaignResponse is the wire shape of a campaign.
type campaignResponse struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	Client       string                 `json:"client"`
	ProposalID   string                 `json:"proposalId"`
	QuotationIDs []string               `json:"quotationIds"`
	TotalAmount  decimal.Decimal        `json:"totalAmount"`
	Status       domain.CampaignStatus  `json:"status"`
	StatusTitle  string                 `json:"statusTitle"`
	Timeline     []domain.TimelineEvent `json:"timeline"`
	Notes        string                 `json:"notes"`
	CreatedBy    string                 `json:"createdBy"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		Title:        c.Title,
		Client:       c.Client,
		ProposalID:   c.ProposalID,
		QuotationIDs: c.QuotationIDs,
		TotalAmount:  c.TotalAmount,
		Status:       c.Status,
		StatusTitle:  c.Status.Title(),
		Timeline:     c.Timeline,
		Notes:        c.Notes,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// respondJSON writes v as JSON with the given status code. Encoding
// failures are logged; headers are already sent at that point.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

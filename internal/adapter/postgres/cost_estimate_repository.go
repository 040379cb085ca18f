package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ooh-ops/internal/core/domain"
)

// CostEstimateRepository implements port.CostEstimateRepository. Line
// items are stored as one JSONB document owned by the estimate row.
type CostEstimateRepository struct {
	pool *pgxpool.Pool
}

// NewCostEstimateRepository returns a new repository instance.
func NewCostEstimateRepository(pool *pgxpool.Pool) *CostEstimateRepository {
	return &CostEstimateRepository{pool: pool}
}

const costEstimateColumns = `id, proposal_id, status, line_items, start_date, end_date, duration_days, total_amount,
approved_at, approved_by, rejected_at, rejected_by, rejection_reason, created_by, created_at, updated_at`

func scanCostEstimate(row pgx.Row) (*domain.CostEstimate, error) {
	var (
		ce       domain.CostEstimate
		itemsRaw []byte
	)
	err := row.Scan(&ce.ID, &ce.ProposalID, &ce.Status, &itemsRaw, &ce.StartDate, &ce.EndDate,
		&ce.DurationDays, &ce.TotalAmount, &ce.ApprovedAt, &ce.ApprovedBy,
		&ce.RejectedAt, &ce.RejectedBy, &ce.RejectionReason, &ce.CreatedBy, &ce.CreatedAt, &ce.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(itemsRaw, &ce.LineItems); err != nil {
		return nil, fmt.Errorf("decode line items: %w", err)
	}
	return &ce, nil
}

// Create stores a cost estimate and returns the generated id.
func (r *CostEstimateRepository) Create(ctx context.Context, ce *domain.CostEstimate) (string, error) {
	id := uuid.NewString()
	items, err := json.Marshal(ce.LineItems)
	if err != nil {
		return "", fmt.Errorf("encode line items: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO cost_estimates
(id, proposal_id, status, line_items, start_date, end_date, duration_days, total_amount, created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now())`,
		id, ce.ProposalID, ce.Status, items, ce.StartDate, ce.EndDate, ce.DurationDays, ce.TotalAmount, ce.CreatedBy)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetByID returns the cost estimate or nil when absent.
func (r *CostEstimateRepository) GetByID(ctx context.Context, id string) (*domain.CostEstimate, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+costEstimateColumns+` FROM cost_estimates WHERE id = $1`, id)
	ce, err := scanCostEstimate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return ce, err
}

// ListByProposalID returns every revision for the proposal, newest first.
func (r *CostEstimateRepository) ListByProposalID(ctx context.Context, proposalID string) ([]domain.CostEstimate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+costEstimateColumns+` FROM cost_estimates WHERE proposal_id = $1 ORDER BY created_at DESC`,
		proposalID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CostEstimate, error) {
		ce, err := scanCostEstimate(row)
		if err != nil {
			return domain.CostEstimate{}, err
		}
		return *ce, nil
	})
}

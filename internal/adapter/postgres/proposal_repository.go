package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ooh-ops/internal/core/domain"
)

// ProposalRepository implements port.ProposalRepository. Proposals and
// their activity log belong to the sales module; this adapter only reads
// them.
type ProposalRepository struct {
	pool *pgxpool.Pool
}

// NewProposalRepository returns a new repository instance.
func NewProposalRepository(pool *pgxpool.Pool) *ProposalRepository {
	return &ProposalRepository{pool: pool}
}

// GetByID returns the proposal or nil when absent.
func (r *ProposalRepository) GetByID(ctx context.Context, id string) (*domain.Proposal, error) {
	var p domain.Proposal
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, client, status, total_amount, created_by, created_at FROM proposals WHERE id = $1`, id).
		Scan(&p.ID, &p.Title, &p.Client, &p.Status, &p.TotalAmount, &p.CreatedBy, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProducts returns the proposal's billboard sites.
func (r *ProposalRepository) GetProducts(ctx context.Context, proposalID string) ([]domain.ProposalProduct, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, location, monthly_rate, quantity FROM proposal_products WHERE proposal_id = $1 ORDER BY id`,
		proposalID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProposalProduct, error) {
		var p domain.ProposalProduct
		err := row.Scan(&p.ID, &p.Name, &p.Location, &p.MonthlyRate, &p.Quantity)
		return p, err
	})
}

// GetActivities returns the proposal's activity log entries.
func (r *ProposalRepository) GetActivities(ctx context.Context, proposalID string) ([]domain.ProposalActivity, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, type, description, performed_by, performed_by_name, ip_address, location, details, created_at
FROM proposal_activities WHERE proposal_id = $1`,
		proposalID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProposalActivity, error) {
		var (
			a           domain.ProposalActivity
			locationRaw []byte
			detailsRaw  []byte
		)
		err := row.Scan(&a.ID, &a.Type, &a.Description, &a.PerformedBy, &a.PerformedByName,
			&a.IPAddress, &locationRaw, &detailsRaw, &a.Timestamp)
		if err != nil {
			return a, err
		}
		if len(locationRaw) > 0 {
			if err = json.Unmarshal(locationRaw, &a.Location); err != nil {
				return a, fmt.Errorf("decode activity location: %w", err)
			}
		}
		if len(detailsRaw) > 0 {
			if err = json.Unmarshal(detailsRaw, &a.Details); err != nil {
				return a, fmt.Errorf("decode activity details: %w", err)
			}
		}
		return a, nil
	})
}

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

// QuotationRepository implements port.QuotationRepository. Products are
// stored as one JSONB document owned by the quotation row.
type QuotationRepository struct {
	pool *pgxpool.Pool
}

// NewQuotationRepository returns a new repository instance.
func NewQuotationRepository(pool *pgxpool.Pool) *QuotationRepository {
	return &QuotationRepository{pool: pool}
}

// Create stores a quotation and returns the generated id.
func (r *QuotationRepository) Create(ctx context.Context, q *domain.Quotation) (string, error) {
	id := uuid.NewString()
	products, err := json.Marshal(q.Products)
	if err != nil {
		return "", fmt.Errorf("encode products: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO quotations
(id, quotation_number, proposal_id, client, products, start_date, end_date, valid_until, status, duration_days, total_amount, created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now(),now())`,
		id, q.QuotationNumber, q.ProposalID, q.Client, products,
		q.StartDate, q.EndDate, q.ValidUntil, q.Status, q.DurationDays, q.TotalAmount, q.CreatedBy)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetByID returns the quotation or nil when absent.
func (r *QuotationRepository) GetByID(ctx context.Context, id string) (*domain.Quotation, error) {
	var (
		q           domain.Quotation
		productsRaw []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, quotation_number, proposal_id, client, products, start_date, end_date,
valid_until, status, duration_days, total_amount, created_by, created_at, updated_at
FROM quotations WHERE id = $1`, id).
		Scan(&q.ID, &q.QuotationNumber, &q.ProposalID, &q.Client, &productsRaw, &q.StartDate, &q.EndDate,
			&q.ValidUntil, &q.Status, &q.DurationDays, &q.TotalAmount, &q.CreatedBy, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(productsRaw, &q.Products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return &q, nil
}

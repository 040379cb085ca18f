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
	"ooh-ops/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository on PostgreSQL.
// Campaigns are stored document-style: the timeline is a JSONB array and
// quotation ids a text array. Appends go through `timeline || $n::jsonb`
// so concurrent writers never lose entries; the status column itself is
// last-write-wins.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, title, client, proposal_id, quotation_ids, total_amount, status, timeline, notes, created_by, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		timelineRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Client,
		&c.ProposalID,
		&c.QuotationIDs,
		&c.TotalAmount,
		&c.Status,
		&timelineRaw,
		&c.Notes,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(timelineRaw, &c.Timeline); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}
	return &c, nil
}

// Create stores a new campaign and returns the generated id.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) (string, error) {
	id := uuid.NewString()
	timeline, err := json.Marshal(c.Timeline)
	if err != nil {
		return "", fmt.Errorf("encode timeline: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
(id, title, client, proposal_id, quotation_ids, total_amount, status, timeline, notes, created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now())`,
		id, c.Title, c.Client, c.ProposalID, c.QuotationIDs, c.TotalAmount, c.Status, timeline, c.Notes, c.CreatedBy)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetByID returns the campaign or nil when absent.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

// GetByProposalID returns the campaign owning the proposal, or nil. With
// multiple campaigns per proposal (creation is not guarded) the oldest
// wins.
func (r *CampaignRepository) GetByProposalID(ctx context.Context, proposalID string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE proposal_id = $1 ORDER BY created_at LIMIT 1`, proposalID)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

// List returns campaigns matching the filter, newest first.
func (r *CampaignRepository) List(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE true`
	args := []interface{}{}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Client != "" {
		args = append(args, f.Client)
		query += fmt.Sprintf(" AND client = $%d", len(args))
	}
	if f.CreatedBy != "" {
		args = append(args, f.CreatedBy)
		query += fmt.Sprintf(" AND created_by = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// UpdateStatus writes the status and appends its paired event in one
// statement, so neither field is ever persisted without the other.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus, event domain.TimelineEvent) error {
	raw, err := json.Marshal([]domain.TimelineEvent{event})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $2, timeline = timeline || $3::jsonb, updated_at = now() WHERE id = $1`,
		id, status, raw)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// AppendTimelineEvent appends one event without touching status.
func (r *CampaignRepository) AppendTimelineEvent(ctx context.Context, id string, event domain.TimelineEvent) error {
	raw, err := json.Marshal([]domain.TimelineEvent{event})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET timeline = timeline || $2::jsonb, updated_at = now() WHERE id = $1`,
		id, raw)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// LinkQuotation appends the quotation id unless already present and
// records the event. The guarded array_append keeps set semantics even
// under concurrent linkers.
func (r *CampaignRepository) LinkQuotation(ctx context.Context, id, quotationID string, event domain.TimelineEvent) error {
	raw, err := json.Marshal([]domain.TimelineEvent{event})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
    quotation_ids = CASE WHEN $2 = ANY(quotation_ids) THEN quotation_ids ELSE array_append(quotation_ids, $2) END,
    timeline = timeline || $3::jsonb,
    updated_at = now()
WHERE id = $1`,
		id, quotationID, raw)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ooh-ops/internal/core/domain"
)

// Seed inserts demo proposals, billboard sites, activity entries and one
// campaign into the database.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	type site struct {
		name     string
		location string
		rate     string
	}
	proposals := []struct {
		id     string
		title  string
		client string
		status string
		sites  []site
	}{
		{
			id:     "prop-edsa-q3",
			title:  "EDSA Northbound Q3 Package",
			client: "Acme Beverages",
			status: "sent",
			sites: []site{
				{"EDSA Guadalupe NB", "Makati", "30000.00"},
				{"EDSA Ortigas NB", "Mandaluyong", "45000.00"},
			},
		},
		{
			id:     "prop-clark-gateway",
			title:  "Clark Gateway Launch",
			client: "Northwind Telecom",
			status: "draft",
			sites: []site{
				{"NLEX Clark Exit", "Mabalacat", "22000.00"},
				{"MacArthur Hwy Dau", "Mabalacat", "9000.00"},
				{"Angeles Rotunda", "Angeles", "15000.00"},
			},
		},
	}

	for _, p := range proposals {
		_, err := db.Exec(ctx, `INSERT INTO proposals (id, title, client, status, total_amount, created_by, created_at)
VALUES ($1,$2,$3,$4,0,'seed',now()) ON CONFLICT DO NOTHING`,
			p.id, p.title, p.client, p.status)
		if err != nil {
			return err
		}
		for i, s := range p.sites {
			_, err = db.Exec(ctx, `INSERT INTO proposal_products (id, proposal_id, name, location, monthly_rate, quantity)
VALUES ($1,$2,$3,$4,$5,1) ON CONFLICT DO NOTHING`,
				fmt.Sprintf("%s-site-%d", p.id, i+1), p.id, s.name, s.location, s.rate)
			if err != nil {
				return err
			}
		}
		// a small activity trail per proposal
		activities := []struct {
			atype string
			desc  string
			city  string
			ago   time.Duration
		}{
			{"created", "Proposal created", "", 72 * time.Hour},
			{"email_sent", "Proposal emailed to client", "", 48 * time.Hour},
			{"viewed", "Proposal opened by client", "Quezon City", 24 * time.Hour},
		}
		for _, a := range activities {
			var location []byte
			if a.city != "" {
				location, _ = json.Marshal(domain.ActivityLocation{City: a.city})
			}
			_, err = db.Exec(ctx, `INSERT INTO proposal_activities
(id, proposal_id, type, description, performed_by, performed_by_name, location, created_at)
VALUES ($1,$2,$3,$4,'seed','Seed User',$5,$6) ON CONFLICT DO NOTHING`,
				uuid.NewString(), p.id, a.atype, a.desc, location, time.Now().UTC().Add(-a.ago))
			if err != nil {
				return err
			}
		}
	}

	// one campaign for the sent proposal
	created := domain.NewTimelineEvent(
		domain.EventProposalCreated,
		"Campaign Created",
		`Campaign created from proposal "EDSA Northbound Q3 Package"`,
		domain.Actor{},
	)
	timeline, err := json.Marshal([]domain.TimelineEvent{created})
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `INSERT INTO campaigns
(id, title, client, proposal_id, quotation_ids, total_amount, status, timeline, notes, created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,'{}',$5,$6,$7,'','seed',now(),now()) ON CONFLICT DO NOTHING`,
		"camp-edsa-q3", "EDSA Northbound Q3 Package", "Acme Beverages", "prop-edsa-q3",
		"75000.00", domain.StatusProposalSent, timeline)
	return err
}

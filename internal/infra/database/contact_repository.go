package database

import (
	"context"
	"database/sql"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (
			id, type, first_name, last_name, email, phone, company, message,
			outlet, role, topic, interview_type, deadline,
			budget_range, timeline,
			event_name, event_date, event_budget,
			referrer, user_agent,
			utm_source, utm_medium, utm_campaign, utm_term, utm_content,
			status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			$14, $15,
			$16, $17, $18,
			$19, $20,
			$21, $22, $23, $24, $25,
			$26, $27
		)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		c.ID,
		c.Type,
		c.FirstName,
		nullString(c.LastName),
		c.Email,
		nullString(c.Phone),
		nullString(c.Company),
		nullString(c.Message),
		nullString(c.Outlet),
		nullString(c.Role),
		nullString(c.Topic),
		nullString(c.InterviewType),
		nullString(c.Deadline),
		nullString(c.BudgetRange),
		nullString(c.Timeline),
		nullString(c.EventName),
		nullString(c.EventDate),
		nullString(c.EventBudget),
		nullString(c.Referrer),
		nullString(c.UserAgent),
		nullString(c.UTMSource),
		nullString(c.UTMMedium),
		nullString(c.UTMCampaign),
		nullString(c.UTMTerm),
		nullString(c.UTMContent),
		c.Status,
		c.CreatedAt,
	)

	return err
}

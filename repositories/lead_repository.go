package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/leadsplatter/models"
	"github.com/jmoiron/sqlx"
)

// LeadRepository interface defines lead database operations
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetRecent(ctx context.Context, limit int) ([]models.Lead, error)
	Count(ctx context.Context) (int, error)
}

// leadRepository implements LeadRepository interface
type leadRepository struct {
	db *sqlx.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *sqlx.DB) LeadRepository {
	return &leadRepository{db: db}
}

// dbLead is a lead row as stored; company and phone are nullable
type dbLead struct {
	ID        int64          `db:"id"`
	Email     string         `db:"email"`
	Company   sql.NullString `db:"company"`
	Phone     sql.NullString `db:"phone"`
	Source    string         `db:"source"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
}

func toModelLead(row *dbLead) models.Lead {
	return models.Lead{
		ID:        row.ID,
		Email:     row.Email,
		Company:   row.Company.String,
		Phone:     row.Phone.String,
		Source:    row.Source,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Create inserts a new lead and fills in the server-assigned fields
func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (email, company, phone, source, status, created_at)
		VALUES (:email, :company, :phone, :source, :status, :created_at)
	`

	row := &dbLead{
		Email:     lead.Email,
		Company:   nullable(lead.Company),
		Phone:     nullable(lead.Phone),
		Source:    lead.Source,
		Status:    lead.Status,
		CreatedAt: time.Now().UTC(),
	}

	// Set default values
	if row.Source == "" {
		row.Source = models.DefaultLeadSource
	}
	if row.Status == "" {
		row.Status = models.DefaultLeadStatus
	}

	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	// Get the inserted ID
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	lead.ID = id
	lead.Source = row.Source
	lead.Status = row.Status
	lead.CreatedAt = row.CreatedAt
	return nil
}

// GetRecent retrieves up to limit leads, newest first
func (r *leadRepository) GetRecent(ctx context.Context, limit int) ([]models.Lead, error) {
	query := `
		SELECT id, email, company, phone, source, status, created_at
		FROM leads
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	var rows []dbLead
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query recent leads: %w", err)
	}

	leads := make([]models.Lead, 0, len(rows))
	for i := range rows {
		leads = append(leads, toModelLead(&rows[i]))
	}
	return leads, nil
}

// Count returns the total number of leads
func (r *leadRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM leads`); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

package supabase

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"stagedai-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// InsertProject writes the metadata row for a new project. Image bytes live
// in storage; only their paths are recorded here.
func (d *DatabaseClient) InsertProject(ctx context.Context, project *models.StagingProject, originalPath string) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO staging_projects
			(id, goal, property_type, persona, style, market_positioning, usage_platform,
			 emotional_tone, notes, deep_clean_required, status, error_message, is_paid,
			 original_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, project.ID, project.Goal, project.PropertyType, project.Persona, project.Style,
		project.MarketPositioning, pq.Array(project.UsagePlatform),
		project.EmotionalTone, project.Notes, project.DeepCleanRequired,
		project.Status, project.ErrorMessage, project.IsPaid,
		originalPath, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	return nil
}

// UpdateProjectOutcome records the terminal state of a generation run.
func (d *DatabaseClient) UpdateProjectOutcome(ctx context.Context, project *models.StagingProject, stagedPath string) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE staging_projects
		SET status = $1, error_message = $2, staged_path = $3, updated_at = $4
		WHERE id = $5
	`, project.Status, project.ErrorMessage, sql.NullString{String: stagedPath, Valid: stagedPath != ""},
		project.UpdatedAt, project.ID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

func (d *DatabaseClient) MarkAsPaid(ctx context.Context, projectID uuid.UUID) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE staging_projects
		SET is_paid = TRUE, updated_at = NOW()
		WHERE id = $1
	`, projectID)
	if err != nil {
		return fmt.Errorf("failed to mark project as paid: %w", err)
	}

	return nil
}

func (d *DatabaseClient) CreateInquiry(ctx context.Context, inquiry models.InquiryRequest) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO inquiries (name, email, message)
		VALUES ($1, $2, $3)
	`, inquiry.Name, inquiry.Email, inquiry.Message)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

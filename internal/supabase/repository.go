package supabase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"stagedai-backend/internal/models"
)

// Repository combines the metadata rows with image storage: bytes go to the
// storage bucket, paths go to the database.
type Repository struct {
	db      *DatabaseClient
	storage *StorageClient
}

func NewRepository(db *DatabaseClient, storage *StorageClient) *Repository {
	return &Repository{db: db, storage: storage}
}

func (r *Repository) SaveProject(ctx context.Context, project *models.StagingProject) error {
	originalPath, err := r.storage.UploadImage(project.ID, "original", project.OriginalImage)
	if err != nil {
		return fmt.Errorf("failed to store original image: %w", err)
	}

	return r.db.InsertProject(ctx, project, originalPath)
}

func (r *Repository) UpdateProject(ctx context.Context, project *models.StagingProject) error {
	stagedPath := ""
	if project.StagedImage != nil {
		path, err := r.storage.UploadImage(project.ID, "staged", *project.StagedImage)
		if err != nil {
			return fmt.Errorf("failed to store staged image: %w", err)
		}
		stagedPath = path
	}

	return r.db.UpdateProjectOutcome(ctx, project, stagedPath)
}

func (r *Repository) MarkAsPaid(ctx context.Context, projectID uuid.UUID) error {
	return r.db.MarkAsPaid(ctx, projectID)
}

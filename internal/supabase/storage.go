package supabase

import (
	"bytes"
	"fmt"
	"mime"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"

	"stagedai-backend/internal/models"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadImage stores one project image under projects/{id}/{label}{ext} and
// returns the storage path.
func (s *StorageClient) UploadImage(projectID uuid.UUID, label string, payload models.ImagePayload) (string, error) {
	ext := ".png"
	if exts, err := mime.ExtensionsByType(payload.MimeType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	storagePath := fmt.Sprintf("projects/%s/%s%s", projectID.String(), label, ext)

	contentType := payload.MimeType
	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(payload.Data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return storagePath, nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DownloadFile(storagePath string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.bucket, storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	return data, nil
}

// DeleteProjectFiles removes everything stored for a project.
func (s *StorageClient) DeleteProjectFiles(projectID uuid.UUID) error {
	prefix := fmt.Sprintf("projects/%s/", projectID.String())

	files, err := s.client.ListFiles(s.bucket, prefix, storage.FileSearchOptions{
		Limit: 1000,
	})
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	if len(files) > 0 {
		filePaths := make([]string, len(files))
		for i, file := range files {
			filePaths[i] = file.Name
		}
		if _, err := s.client.RemoveFile(s.bucket, filePaths); err != nil {
			return fmt.Errorf("failed to delete files: %w", err)
		}
	}

	return nil
}

package supabase

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"

	"stagedai-backend/internal/config"
	"stagedai-backend/internal/models"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

// CreateInquiry writes through PostgREST, which only needs the project URL
// and publishable key. Used when no direct database connection is
// configured.
func (c *Client) CreateInquiry(ctx context.Context, inquiry models.InquiryRequest) error {
	_, _, err := c.Supabase.From("inquiries").Insert(map[string]interface{}{
		"name":    inquiry.Name,
		"email":   inquiry.Email,
		"message": inquiry.Message,
	}, false, "", "minimal", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

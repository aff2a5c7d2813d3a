package usecase

import "context"

// SeedUsecase defines the interface for demo-data seeding.
type SeedUsecase interface {
	// SeedAll populates every content family with demo rows. Seeding is
	// idempotent per family: a family that already has rows is skipped.
	SeedAll(ctx context.Context) (*SeedReport, error)
}

// --- Output DTOs ---

// SeedReport counts the rows inserted per family. A zero count means the
// family was already populated.
type SeedReport struct {
	Products  int `json:"products"`
	BlogPosts int `json:"blog_posts"`
	Offerings int `json:"offerings"`
	Events    int `json:"events"`
	News      int `json:"news"`
}

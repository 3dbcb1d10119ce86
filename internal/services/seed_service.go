package services

import (
	"cleaning-app/reviews-seeder/internal/models"
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"log"
)

type ReviewRepository interface {
	CollectionName() string
	EnsureCollection(ctx context.Context) (bool, error)
	InsertMany(ctx context.Context, reviews []models.Review) ([]primitive.ObjectID, error)
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type SeedResult struct {
	Collection        string
	CollectionCreated bool
	InsertedIDs       []primitive.ObjectID
}

type SeedService struct {
	repo  ReviewRepository
	cache CacheInvalidator
}

// NewSeedService wires the seeder. cache may be nil.
func NewSeedService(repo ReviewRepository, cache CacheInvalidator) *SeedService {
	return &SeedService{repo: repo, cache: cache}
}

// Seed creates the collection if absent and inserts the fixed review batch.
// It is not idempotent: every call adds another copy of the batch.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	name := s.repo.CollectionName()

	created, err := s.repo.EnsureCollection(ctx)
	if err != nil {
		return nil, fmt.Errorf("ensure collection: %w", err)
	}
	if created {
		log.Printf("[SEED] Created collection %q", name)
	}

	ids, err := s.repo.InsertMany(ctx, models.SeedReviews())
	if err != nil {
		return nil, fmt.Errorf("insert reviews: %w", err)
	}
	log.Printf("[SEED] Inserted %d reviews into %q", len(ids), name)

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("[SEED] Failed to invalidate review cache: %v", err)
		}
	}

	return &SeedResult{
		Collection:        name,
		CollectionCreated: created,
		InsertedIDs:       ids,
	}, nil
}

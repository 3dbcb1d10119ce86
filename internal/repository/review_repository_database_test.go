//go:build database

package repository

import (
	"cleaning-app/reviews-seeder/internal/models"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Run with: MONGO_TEST_URI=mongodb://localhost:27017 go test -tags database ./...
func newTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("ping: %v", err)
	}

	db := client.Database("reviewsdb_test_" + primitive.NewObjectID().Hex())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func TestReviewRepository_EnsureCollection(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(newTestDatabase(t), "reviews")

	created, err := repo.EnsureCollection(ctx)
	if err != nil {
		t.Fatalf("EnsureCollection() error = %v", err)
	}
	if !created {
		t.Error("first EnsureCollection() must create the collection")
	}

	created, err = repo.EnsureCollection(ctx)
	if err != nil {
		t.Fatalf("second EnsureCollection() error = %v", err)
	}
	if created {
		t.Error("second EnsureCollection() must find the existing collection")
	}
}

func TestReviewRepository_InsertMany(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(newTestDatabase(t), "reviews")

	ids, err := repo.InsertMany(ctx, models.SeedReviews())
	if err != nil {
		t.Fatalf("InsertMany() error = %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("InsertMany() returned %d ids, want 3", len(ids))
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	want := models.SeedReviews()
	if len(got) != len(want) {
		t.Fatalf("GetAll() returned %d reviews, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != ids[i] {
			t.Errorf("review %d id = %v, want %v", i, got[i].ID, ids[i])
		}
		got[i].ID = primitive.NilObjectID
		if got[i] != want[i] {
			t.Errorf("review %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReviewRepository_InsertManyEmpty(t *testing.T) {
	repo := NewReviewRepository(newTestDatabase(t), "reviews")

	if _, err := repo.InsertMany(context.Background(), nil); !errors.Is(err, models.ErrEmptyBatch) {
		t.Errorf("InsertMany(nil) error = %v, want ErrEmptyBatch", err)
	}
}

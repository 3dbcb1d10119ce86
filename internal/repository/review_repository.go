package repository

import (
	"cleaning-app/reviews-seeder/internal/models"
	"context"
	"errors"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const namespaceExistsCode = 48

type ReviewRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database, collection string) *ReviewRepository {
	return &ReviewRepository{db: db, collection: db.Collection(collection)}
}

func (r *ReviewRepository) CollectionName() string {
	return r.collection.Name()
}

// EnsureCollection creates the collection when it is missing. An existing
// collection, including one created concurrently, is not an error.
func (r *ReviewRepository) EnsureCollection(ctx context.Context) (bool, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.M{"name": r.collection.Name()})
	if err != nil {
		return false, fmt.Errorf("list collections: %w", err)
	}
	if len(names) > 0 {
		return false, nil
	}

	err = r.db.CreateCollection(ctx, r.collection.Name())
	if isNamespaceExists(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create collection %q: %w", r.collection.Name(), err)
	}
	return true, nil
}

// InsertMany writes the batch as one ordered insert and returns the
// server-assigned IDs in batch order.
func (r *ReviewRepository) InsertMany(ctx context.Context, reviews []models.Review) ([]primitive.ObjectID, error) {
	if len(reviews) == 0 {
		return nil, models.ErrEmptyBatch
	}

	docs := make([]interface{}, len(reviews))
	for i := range reviews {
		docs[i] = reviews[i]
	}

	res, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			ids = append(ids, oid)
		}
	}
	return ids, nil
}

func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var results []models.Review
	err = cursor.All(ctx, &results)
	return results, err
}

func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == namespaceExistsCode
	}
	return false
}

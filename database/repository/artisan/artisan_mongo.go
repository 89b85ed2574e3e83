package artisanRepo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hirafic/database"
	"hirafic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no artisan matches the lookup.
var ErrNotFound = errors.New("artisan not found")

// MongoArtisanRepo implements ArtisanRepository using MongoDB.
type MongoArtisanRepo struct {
	coll *mongo.Collection
}

// NewMongoArtisanRepo creates a new instance of ArtisanRepository using MongoDB.
func NewMongoArtisanRepo() ArtisanRepository {
	coll := database.Collection("artisans")
	repo := &MongoArtisanRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("WARNING: artisan repo index setup failed: %v", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// ensureIndexes creates indexes for frequently used fields in queries.
func (r *MongoArtisanRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "specialization", Value: 1}, {Key: "id", Value: 1}}},
		// Bounding-box pre-filter for proximity queries.
		{Keys: bson.D{{Key: "latitude", Value: 1}, {Key: "longitude", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoArtisanRepo) Create(artisan *models.Artisan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, artisan)
	if err != nil {
		return fmt.Errorf("failed to create artisan: %w", err)
	}
	return nil
}

func (r *MongoArtisanRepo) getOne(filter bson.M) (*models.Artisan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var artisan models.Artisan
	if err := r.coll.FindOne(ctx, filter).Decode(&artisan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch artisan: %w", err)
	}
	return &artisan, nil
}

func (r *MongoArtisanRepo) GetByID(id string) (*models.Artisan, error) {
	return r.getOne(bson.M{"id": id})
}

func (r *MongoArtisanRepo) GetByEmail(email string) (*models.Artisan, error) {
	return r.getOne(bson.M{"email": email})
}

func (r *MongoArtisanRepo) GetByUserID(userID string) (*models.Artisan, error) {
	return r.getOne(bson.M{"userId": userID})
}

func (r *MongoArtisanRepo) Update(artisan *models.Artisan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": artisan.ID}
	update := bson.M{"$set": artisan}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update artisan with id %s: %w", artisan.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func activeFilter(filter SearchFilter) bson.M {
	query := bson.M{"active": true}
	if filter.Specialization != "" {
		query["specialization"] = bson.M{"$regex": filter.Specialization, "$options": "i"}
	}
	return query
}

// FindActive pages through active artisans ordered by id ascending, so
// pagination stays deterministic even when records are inserted between
// page fetches.
func (r *MongoArtisanRepo) FindActive(filter SearchFilter, offset, limit int) ([]models.Artisan, int, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := activeFilter(filter)
	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count artisans: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve artisans: %w", err)
	}
	defer cursor.Close(ctx)

	var artisans []models.Artisan
	if err := cursor.All(ctx, &artisans); err != nil {
		return nil, 0, fmt.Errorf("failed to decode artisans: %w", err)
	}
	return artisans, int(total), nil
}

// FindActiveInBox fetches bounding-box candidates for a proximity query.
func (r *MongoArtisanRepo) FindActiveInBox(filter SearchFilter, box GeoBox) ([]models.Artisan, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := activeFilter(filter)
	query["latitude"] = bson.M{"$gte": box.MinLat, "$lte": box.MaxLat}
	query["longitude"] = bson.M{"$gte": box.MinLon, "$lte": box.MaxLon}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("bounding box query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var artisans []models.Artisan
	if err := cursor.All(ctx, &artisans); err != nil {
		return nil, fmt.Errorf("failed to decode artisans: %w", err)
	}
	return artisans, nil
}

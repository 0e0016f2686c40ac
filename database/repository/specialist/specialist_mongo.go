package specialistRepo

import (
	"context"
	"fmt"
	"time"

	"mindwell/database"
	"mindwell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSpecialistRepo implements SpecialistRepository using MongoDB.
type MongoSpecialistRepo struct {
	coll *mongo.Collection
}

// NewMongoSpecialistRepo creates a new instance of SpecialistRepository using MongoDB.
func NewMongoSpecialistRepo() SpecialistRepository {
	// Use the "mindwell" database and the "specialists" collection.
	coll := database.MongoClient.Database("mindwell").Collection("specialists")
	return &MongoSpecialistRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSpecialistRepo) GetByID(id string) (*models.Specialist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var specialist models.Specialist
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&specialist); err != nil {
		return nil, fmt.Errorf("failed to fetch specialist with id %s: %w", id, err)
	}
	return &specialist, nil
}

func (r *MongoSpecialistRepo) GetByEmail(email string) (*models.Specialist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var specialist models.Specialist
	filter := bson.M{"profile.email": email}
	if err := r.coll.FindOne(ctx, filter).Decode(&specialist); err != nil {
		return nil, fmt.Errorf("failed to fetch specialist with email %s: %w", email, err)
	}
	return &specialist, nil
}

func (r *MongoSpecialistRepo) GetAll() ([]models.Specialist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	return r.findMany(ctx, bson.M{})
}

// GetActive returns specialists currently accepting clients.
func (r *MongoSpecialistRepo) GetActive() ([]models.Specialist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	return r.findMany(ctx, bson.M{"profile.status": "active"})
}

func (r *MongoSpecialistRepo) findMany(ctx context.Context, filter bson.M) ([]models.Specialist, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialists: %w", err)
	}
	defer cursor.Close(ctx)

	var specialists []models.Specialist
	for cursor.Next(ctx) {
		var s models.Specialist
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode specialist: %w", err)
		}
		specialists = append(specialists, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while retrieving specialists: %w", err)
	}
	return specialists, nil
}

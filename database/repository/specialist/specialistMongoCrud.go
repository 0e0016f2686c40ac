package specialistRepo

import (
	"fmt"
	"time"

	"mindwell/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new specialist document.
func (r *MongoSpecialistRepo) Create(specialist *models.Specialist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, specialist)
	if err != nil {
		return fmt.Errorf("failed to create specialist: %w", err)
	}
	return nil
}

// Update modifies an existing specialist document.
func (r *MongoSpecialistRepo) Update(specialist *models.Specialist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": specialist.ID}
	update := bson.M{"$set": specialist}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update specialist with id %s: %w", specialist.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("specialist with id %s not found", specialist.ID)
	}
	return nil
}

// UpdateAvailability replaces only the raw availability value on a
// specialist document. The value is stored as-is; normalization happens
// on read.
func (r *MongoSpecialistRepo) UpdateAvailability(id string, rawSchedule any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"availability": rawSchedule,
		"updatedAt":    time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for specialist %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("specialist with id %s not found", id)
	}
	return nil
}

// Delete removes a specialist document by its ID.
func (r *MongoSpecialistRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete specialist with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("specialist with id %s not found", id)
	}
	return nil
}

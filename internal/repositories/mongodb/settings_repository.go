package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/repositories"
)

// Compile-time check to ensure SettingsRepository implements the interface
var _ repositories.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository handles the single event settings document
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("event_settings"),
	}
}

// Get retrieves the settings document, falling back to defaults when none
// has been stored yet
func (r *SettingsRepository) Get(ctx context.Context) (*models.EventSettings, error) {
	var settings models.EventSettings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.EventSettings{
				EventName:        "HackBits",
				RegistrationOpen: true,
				CheckInOpen:      true,
			}, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Upsert stores the settings document, creating it on first write
func (r *SettingsRepository) Upsert(ctx context.Context, settings *models.EventSettings) error {
	settings.UpdatedAt = time.Now()
	filter := bson.M{}
	if !settings.ID.IsZero() {
		filter = bson.M{"_id": settings.ID}
	}
	update := bson.M{"$set": bson.M{
		"eventName":        settings.EventName,
		"eventDate":        settings.EventDate,
		"registrationOpen": settings.RegistrationOpen,
		"checkInOpen":      settings.CheckInOpen,
		"updatedAt":        settings.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

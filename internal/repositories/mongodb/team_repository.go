package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/repositories"
)

// Compile-time check to ensure TeamRepository implements the interface
var _ repositories.TeamRepository = (*TeamRepository)(nil)

// TeamRepository handles MongoDB operations for Team
type TeamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{
		collection: db.Collection("teams"),
	}
}

// Create inserts a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now()
	team.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, team)
	return err
}

// FindByID finds a team by ID
func (r *TeamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&team)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &team, nil
}

// FindByRegistrationNumber finds a team by its registration number
func (r *TeamRepository) FindByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Team, error) {
	var team models.Team
	filter := bson.M{"registrationNumber": registrationNumber}
	err := r.collection.FindOne(ctx, filter).Decode(&team)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// FindByLeaderEmail finds the team registered by a leader's email
func (r *TeamRepository) FindByLeaderEmail(ctx context.Context, email string) (*models.Team, error) {
	var team models.Team
	filter := bson.M{"leader.email": email}
	err := r.collection.FindOne(ctx, filter).Decode(&team)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// FindAll retrieves all teams, newest first
func (r *TeamRepository) FindAll(ctx context.Context) ([]*models.Team, error) {
	var teams []*models.Team
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []*models.Team{}
	}
	return teams, nil
}

// FindByPaymentStatus retrieves teams filtered by payment status
func (r *TeamRepository) FindByPaymentStatus(ctx context.Context, status models.PaymentStatus) ([]*models.Team, error) {
	var teams []*models.Team
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"paymentStatus": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []*models.Team{}
	}
	return teams, nil
}

// FindCheckedIn retrieves checked-in teams, most recent check-in first
func (r *TeamRepository) FindCheckedIn(ctx context.Context) ([]*models.Team, error) {
	var teams []*models.Team
	opts := options.Find().SetSort(bson.D{{Key: "checkInTime", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"checkedIn": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []*models.Team{}
	}
	return teams, nil
}

// Update replaces an existing team document. Fields cleared on the model
// (ticket, check-in time) are unset in storage via the replace semantics.
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	team.UpdatedAt = time.Now()
	filter := bson.M{"_id": team.ID}
	result, err := r.collection.ReplaceOne(ctx, filter, team)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count returns the total number of registered teams
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByPaymentStatus returns the number of teams with the given status
func (r *TeamRepository) CountByPaymentStatus(ctx context.Context, status models.PaymentStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"paymentStatus": status})
}

// CountWithDocuments returns the number of teams that uploaded both documents
func (r *TeamRepository) CountWithDocuments(ctx context.Context) (int64, error) {
	filter := bson.M{
		"paymentScreenshot": bson.M{"$nin": bson.A{nil, ""}},
		"idCard":            bson.M{"$nin": bson.A{nil, ""}},
	}
	return r.collection.CountDocuments(ctx, filter)
}

// CountCheckedIn returns the number of checked-in teams
func (r *TeamRepository) CountCheckedIn(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"checkedIn": true})
}

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

// Compile-time check to ensure PaymentOrderRepository implements the interface
var _ repositories.PaymentOrderRepository = (*PaymentOrderRepository)(nil)

// PaymentOrderRepository handles MongoDB operations for payment orders
type PaymentOrderRepository struct {
	collection *mongo.Collection
}

// NewPaymentOrderRepository creates a new PaymentOrderRepository
func NewPaymentOrderRepository(db *mongo.Database) *PaymentOrderRepository {
	return &PaymentOrderRepository{
		collection: db.Collection("payment_orders"),
	}
}

// Create inserts a new payment order
func (r *PaymentOrderRepository) Create(ctx context.Context, order *models.PaymentOrder) error {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindByID finds a payment order by ID
func (r *PaymentOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&order)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &order, nil
}

// FindByTeamID retrieves all orders for a team, newest first
func (r *PaymentOrderRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]*models.PaymentOrder, error) {
	var orders []*models.PaymentOrder
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*models.PaymentOrder{}
	}
	return orders, nil
}

// Update updates an existing payment order
func (r *PaymentOrderRepository) Update(ctx context.Context, order *models.PaymentOrder) error {
	order.UpdatedAt = time.Now()
	filter := bson.M{"_id": order.ID}
	update := bson.M{"$set": order}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

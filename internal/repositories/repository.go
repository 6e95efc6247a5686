package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hackbits-tech/hackbits-backend/internal/models"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Team, error)
	FindByLeaderEmail(ctx context.Context, email string) (*models.Team, error)
	FindAll(ctx context.Context) ([]*models.Team, error)
	FindByPaymentStatus(ctx context.Context, status models.PaymentStatus) ([]*models.Team, error)
	FindCheckedIn(ctx context.Context) ([]*models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Count(ctx context.Context) (int64, error)
	CountByPaymentStatus(ctx context.Context, status models.PaymentStatus) (int64, error)
	CountWithDocuments(ctx context.Context) (int64, error)
	CountCheckedIn(ctx context.Context) (int64, error)
}

// UserRepository defines the interface for participant account operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
}

// AdminUserRepository defines the interface for admin account operations
type AdminUserRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Update(ctx context.Context, admin *models.AdminUser) error
}

// PaymentOrderRepository defines the interface for payment order operations
type PaymentOrderRepository interface {
	Create(ctx context.Context, order *models.PaymentOrder) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PaymentOrder, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]*models.PaymentOrder, error)
	Update(ctx context.Context, order *models.PaymentOrder) error
}

// NotificationRepository defines the interface for notification records
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]*models.Notification, error)
}

// SettingsRepository defines the interface for the event settings document
type SettingsRepository interface {
	Get(ctx context.Context) (*models.EventSettings, error)
	Upsert(ctx context.Context, settings *models.EventSettings) error
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType categorises outbound notifications
type NotificationType string

const (
	NotificationVerification NotificationType = "verification"
	NotificationRejection    NotificationType = "rejection"
)

// Notification records an email sent (or attempted) to a team leader
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TeamID    primitive.ObjectID `bson:"teamId" json:"teamId"`
	Recipient string             `bson:"recipient" json:"recipient"`
	Type      NotificationType   `bson:"type" json:"type"`
	Subject   string             `bson:"subject" json:"subject"`
	Body      string             `bson:"body" json:"body"`
	Status    string             `bson:"status" json:"status"` // "sent" or "failed"
	MessageID string             `bson:"messageId,omitempty" json:"messageId,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

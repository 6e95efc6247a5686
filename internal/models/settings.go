package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventSettings holds the single admin-editable event configuration document
type EventSettings struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventName        string             `bson:"eventName" json:"eventName"`
	EventDate        string             `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	RegistrationOpen bool               `bson:"registrationOpen" json:"registrationOpen"`
	CheckInOpen      bool               `bson:"checkInOpen" json:"checkInOpen"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UpdateSettingsRequest is the admin settings update body. Pointers
// distinguish "leave unchanged" from an explicit false.
type UpdateSettingsRequest struct {
	EventName        *string `json:"eventName"`
	EventDate        *string `json:"eventDate"`
	RegistrationOpen *bool   `json:"registrationOpen"`
	CheckInOpen      *bool   `json:"checkInOpen"`
}

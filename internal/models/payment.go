package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentOrderStatus tracks the lifecycle of a payment order at the provider
type PaymentOrderStatus string

const (
	PaymentOrderCreated PaymentOrderStatus = "created"
	PaymentOrderPaid    PaymentOrderStatus = "paid"
	PaymentOrderFailed  PaymentOrderStatus = "failed"
)

// PaymentOrder records an order created with the payment provider for a
// team's registration fee
type PaymentOrder struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TeamID             primitive.ObjectID `bson:"teamId" json:"teamId"`
	RegistrationNumber string             `bson:"registrationNumber" json:"registrationNumber"`
	Amount             int64              `bson:"amount" json:"amount"` // minor currency units
	Currency           string             `bson:"currency" json:"currency"`
	ProviderOrderID    string             `bson:"providerOrderId" json:"providerOrderId"`
	Status             PaymentOrderStatus `bson:"status" json:"status"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

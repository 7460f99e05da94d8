package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is one row of the append-only payment history. A record is created
// exactly once per successful charge and never mutated or deleted.
type Payment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ParcelID        string             `bson:"parcelId" json:"parcelId"`
	Email           string             `bson:"email" json:"email"` // payer
	Amount          float64            `bson:"amount" json:"amount"`
	Status          string             `bson:"status" json:"status"` // always "Paid"
	TransactionID   string             `bson:"transactionId" json:"transactionId"`
	CreatedAtString string             `bson:"createdAt_string" json:"createdAt_string"` // human-readable form
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrackingEvent is one entry of the append-only tracking log. Events are
// recorded whether or not the referenced parcel exists.
type TrackingEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ParcelID   string             `bson:"parcelId" json:"parcelId"`
	TrackingID string             `bson:"trackingId" json:"trackingId"`
	Status     string             `bson:"status" json:"status"`
	Message    string             `bson:"message" json:"message"`
	Note       string             `bson:"note" json:"note"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

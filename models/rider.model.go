package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rider application statuses. Transitions are one-directional:
// pending -> approved (or hard delete on rejection), approved -> deactivated.
const (
	RiderStatusPending     = "pending"
	RiderStatusApproved    = "approved"
	RiderStatusRejected    = "rejected"
	RiderStatusDeactivated = "deactivated"
)

// Rider is a delivery-personnel application. Approving a rider promotes the
// matching user's role to "rider".
type Rider struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Age              int                `bson:"age,omitempty" json:"age,omitempty"`
	Region           string             `bson:"region,omitempty" json:"region,omitempty"`
	District         string             `bson:"district,omitempty" json:"district,omitempty"`
	NID              string             `bson:"nid,omitempty" json:"nid,omitempty"`
	BikeBrand        string             `bson:"bike_brand,omitempty" json:"bike_brand,omitempty"`
	BikeRegistration string             `bson:"bike_registration,omitempty" json:"bike_registration,omitempty"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}

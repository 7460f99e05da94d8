package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment states a parcel can be in.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "Paid"
)

// Parcel is a shipment record owned by the customer identified by Email.
// A parcel is only visible to its owner through list queries.
type Parcel struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Type  string             `bson:"type,omitempty" json:"type,omitempty"` // "document" or "non-document"
	Title string             `bson:"title,omitempty" json:"title,omitempty"`
	Email string             `bson:"email" json:"email"` // owner

	SenderName          string `bson:"sender_name,omitempty" json:"sender_name,omitempty"`
	SenderContact       string `bson:"sender_contact,omitempty" json:"sender_contact,omitempty"`
	SenderRegion        string `bson:"sender_region,omitempty" json:"sender_region,omitempty"`
	SenderServiceCenter string `bson:"sender_service_center,omitempty" json:"sender_service_center,omitempty"`
	SenderAddress       string `bson:"sender_address,omitempty" json:"sender_address,omitempty"`
	PickupInstruction   string `bson:"pickup_instruction,omitempty" json:"pickup_instruction,omitempty"`

	ReceiverName          string `bson:"receiver_name,omitempty" json:"receiver_name,omitempty"`
	ReceiverContact       string `bson:"receiver_contact,omitempty" json:"receiver_contact,omitempty"`
	ReceiverRegion        string `bson:"receiver_region,omitempty" json:"receiver_region,omitempty"`
	ReceiverServiceCenter string `bson:"receiver_service_center,omitempty" json:"receiver_service_center,omitempty"`
	ReceiverAddress       string `bson:"receiver_address,omitempty" json:"receiver_address,omitempty"`
	DeliveryInstruction   string `bson:"delivery_instruction,omitempty" json:"delivery_instruction,omitempty"`

	Weight         float64   `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	Cost           float64   `bson:"cost,omitempty" json:"cost,omitempty"`
	PaymentStatus  string    `bson:"paymentStatus" json:"paymentStatus"` // "unpaid" or "Paid"
	DeliveryStatus string    `bson:"delivery_status,omitempty" json:"delivery_status,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

type Reservation struct {
	ID             primitive.ObjectID `bson:"_id"`
	Reservation_id string             `json:"reservation_id"`
	Name           *string            `json:"name" validate:"required,min=2,max=100"`
	Phone          *string            `json:"phone" validate:"required"`
	Email          *string            `json:"email"`
	Date           *string            `json:"date" validate:"required"`
	Time           *string            `json:"time" validate:"required"`
	Party_size     *int               `json:"party_size" validate:"required,min=1"`
	Status         *string            `json:"status" validate:"required,eq=pending|eq=confirmed|eq=cancelled|eq=completed"`
	Notes          *string            `json:"notes"`
	Created_at     time.Time          `json:"created_at"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting is one key/value slot of the admin settings store.
type Setting struct {
	ID         primitive.ObjectID `bson:"_id"`
	Key        *string            `json:"key" validate:"required"`
	Value      interface{}        `json:"value"`
	Updated_at time.Time          `json:"updated_at"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactSubmission struct {
	ID            primitive.ObjectID `bson:"_id"`
	Submission_id string             `json:"submission_id"`
	Name          *string            `json:"name" validate:"required,min=2,max=100"`
	Email         *string            `json:"email" validate:"required,email"`
	Phone         *string            `json:"phone"`
	Message       *string            `json:"message"`
	Created_at    time.Time          `json:"created_at"`
}

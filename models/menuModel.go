package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuCategory struct {
	ID          primitive.ObjectID `bson:"_id"`
	Category_id string             `json:"category_id"`
	Name        *string            `json:"name" validate:"required,min=2,max=100"`
	Sort_order  int                `json:"sort_order"`
	Created_at  time.Time          `json:"created_at"`
}

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id"`
	Item_id      string             `json:"item_id"`
	Name         *string            `json:"name" validate:"required,min=2,max=100"`
	Description  *string            `json:"description"`
	Price        *float64           `json:"price" validate:"required,min=0"`
	Image_url    *string            `json:"image_url"`
	Category_id  *string            `json:"category_id"`
	Tags         []string           `json:"tags"`
	Is_available *bool              `json:"is_available" validate:"required"`
	Is_visible   *bool              `json:"is_visible" validate:"required"`
	Prep_time    *int               `json:"prep_time"`
	Calories     *int               `json:"calories"`
	Allergens    []string           `json:"allergens"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
}

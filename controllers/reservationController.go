package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-restaurant-ordering/database"
	"go-restaurant-ordering/models"
)

var reservationCollection *mongo.Collection = database.OpenCollection(database.Client, "reservations")

// CreateReservation is the public booking endpoint. New reservations always
// start pending; staff confirm or cancel them from the back office.
func CreateReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		var reservation models.Reservation

		if err := c.BindJSON(&reservation); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status := models.ReservationStatusPending
		reservation.Status = &status
		if validationErr := validate.Struct(&reservation); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		reservation.Created_at = time.Now()
		reservation.ID = primitive.NewObjectID()
		reservation.Reservation_id = reservation.ID.Hex()

		result, err := reservationCollection.InsertOne(ctx, reservation)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "reservation was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetReservations lists reservations for the admin page, ordered by date
// then time.
func GetReservations() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
		result, err := reservationCollection.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing reservations"})
			return
		}
		var allReservations []models.Reservation
		if err := result.All(ctx, &allReservations); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allReservations)
	}
}

func UpdateReservationStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		reservationId := c.Param("reservation_id")

		var body struct {
			Status string `json:"status" validate:"required,eq=pending|eq=confirmed|eq=cancelled|eq=completed"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		filter := bson.M{"reservation_id": reservationId}
		update := bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: body.Status}}}}
		result, err := reservationCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "reservation update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

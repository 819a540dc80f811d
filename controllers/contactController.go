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

var contactCollection *mongo.Collection = database.OpenCollection(database.Client, "form_submissions")

// CreateContactSubmission stores a message from the public contact form.
func CreateContactSubmission() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		var submission models.ContactSubmission

		if err := c.BindJSON(&submission); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&submission); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		submission.Created_at = time.Now()
		submission.ID = primitive.NewObjectID()
		submission.Submission_id = submission.ID.Hex()

		result, err := contactCollection.InsertOne(ctx, submission)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "submission was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetContactSubmissions() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		result, err := contactCollection.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing submissions"})
			return
		}
		var allSubmissions []models.ContactSubmission
		if err := result.All(ctx, &allSubmissions); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allSubmissions)
	}
}

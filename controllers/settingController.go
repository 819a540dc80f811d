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

var settingCollection *mongo.Collection = database.OpenCollection(database.Client, "admin_settings")

// GetSettings returns all admin settings as a key/value object.
func GetSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		result, err := settingCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing settings"})
			return
		}
		var allSettings []models.Setting
		if err := result.All(ctx, &allSettings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		settings := gin.H{}
		for _, s := range allSettings {
			if s.Key != nil {
				settings[*s.Key] = s.Value
			}
		}
		c.JSON(http.StatusOK, settings)
	}
}

// UpsertSetting writes one key/value slot, creating it on first write.
func UpsertSetting() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		key := c.Param("key")

		var body struct {
			Value interface{} `json:"value"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		filter := bson.M{"key": key}
		var updateObj primitive.D
		updateObj = append(updateObj, bson.E{Key: "key", Value: key})
		updateObj = append(updateObj, bson.E{Key: "value", Value: body.Value})
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

		result, err := settingCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "setting update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

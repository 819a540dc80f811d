package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-restaurant-ordering/database"
	"go-restaurant-ordering/models"
)

var menuItemCollection *mongo.Collection = database.OpenCollection(database.Client, "menu_items")
var menuCategoryCollection *mongo.Collection = database.OpenCollection(database.Client, "menu_categories")

var validate = validator.New()

// GetMenuItems lists items for the customer site: visible items only,
// newest first.
func GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		result, err := menuItemCollection.Find(ctx, bson.M{"is_visible": true}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing menu items"})
			return
		}
		var allItems []models.MenuItem
		if err := result.All(ctx, &allItems); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allItems)
	}
}

// GetAllMenuItems is the admin listing: every item, hidden ones included.
func GetAllMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		result, err := menuItemCollection.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing menu items"})
			return
		}
		var allItems []models.MenuItem
		if err := result.All(ctx, &allItems); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allItems)
	}
}

func GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		itemId := c.Param("item_id")
		var item models.MenuItem

		err := menuItemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&item)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the menu item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		var item models.MenuItem

		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&item); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		item.Created_at = time.Now()
		item.Updated_at = time.Now()
		item.ID = primitive.NewObjectID()
		item.Item_id = item.ID.Hex()

		result, err := menuItemCollection.InsertOne(ctx, item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		itemId := c.Param("item_id")
		var item models.MenuItem

		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if item.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: item.Name})
		}
		if item.Description != nil {
			updateObj = append(updateObj, bson.E{Key: "description", Value: item.Description})
		}
		if item.Price != nil {
			updateObj = append(updateObj, bson.E{Key: "price", Value: item.Price})
		}
		if item.Image_url != nil {
			updateObj = append(updateObj, bson.E{Key: "image_url", Value: item.Image_url})
		}
		if item.Category_id != nil {
			updateObj = append(updateObj, bson.E{Key: "category_id", Value: item.Category_id})
		}
		if item.Tags != nil {
			updateObj = append(updateObj, bson.E{Key: "tags", Value: item.Tags})
		}
		if item.Is_available != nil {
			updateObj = append(updateObj, bson.E{Key: "is_available", Value: item.Is_available})
		}
		if item.Is_visible != nil {
			updateObj = append(updateObj, bson.E{Key: "is_visible", Value: item.Is_visible})
		}
		if item.Prep_time != nil {
			updateObj = append(updateObj, bson.E{Key: "prep_time", Value: item.Prep_time})
		}
		if item.Calories != nil {
			updateObj = append(updateObj, bson.E{Key: "calories", Value: item.Calories})
		}
		if item.Allergens != nil {
			updateObj = append(updateObj, bson.E{Key: "allergens", Value: item.Allergens})
		}
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

		filter := bson.M{"item_id": itemId}
		result, err := menuItemCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
			options.Update().SetUpsert(false),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		itemId := c.Param("item_id")

		result, err := menuItemCollection.DeleteOne(ctx, bson.M{"item_id": itemId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item delete failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetCategories lists categories in their configured display order.
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
		result, err := menuCategoryCollection.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing categories"})
			return
		}
		var allCategories []models.MenuCategory
		if err := result.All(ctx, &allCategories); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allCategories)
	}
}

func CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		var category models.MenuCategory

		if err := c.BindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&category); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		category.Created_at = time.Now()
		category.ID = primitive.NewObjectID()
		category.Category_id = category.ID.Hex()

		result, err := menuCategoryCollection.InsertOne(ctx, category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "category was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

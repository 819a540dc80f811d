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

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "orders")

// GetOrders lists all orders, newest first, for the admin dashboard.
func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "placed_at", Value: -1}})
		result, err := orderCollection.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		var allOrders []models.Order
		if err := result.All(ctx, &allOrders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		orderId := c.Param("order_id")
		var order models.Order

		err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus moves an order through the kitchen pipeline and pushes
// the change to connected admin clients.
func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		orderId := c.Param("order_id")

		var body struct {
			Status string `json:"status" validate:"required,eq=new|eq=preparing|eq=ready|eq=out_for_delivery|eq=delivered|eq=cancelled"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		filter := bson.M{"order_id": orderId}
		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: body.Status},
			{Key: "updated_at", Value: time.Now()},
		}}}
		result, err := orderCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order status update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		var order models.Order
		if err := orderCollection.FindOne(ctx, filter).Decode(&order); err == nil {
			notifyOrderStatus(order)
		}
		c.JSON(http.StatusOK, result)
	}
}

// MongoOrderCreator persists orders for the checkout service and assigns
// the authoritative order id and timestamps.
type MongoOrderCreator struct{}

func (MongoOrderCreator) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = primitive.NewObjectID()
	order.Order_id = order.ID.Hex()
	status := models.OrderStatusNew
	order.Status = &status
	order.Placed_at = time.Now()
	order.Updated_at = order.Placed_at

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		return models.Order{}, err
	}
	notifyNewOrder(order)
	return order, nil
}

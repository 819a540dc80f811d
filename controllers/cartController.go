package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"go-restaurant-ordering/cart"
	"go-restaurant-ordering/models"
)

// cartView is the response shape every cart endpoint returns: the full
// state plus the derived values the cart drawer and badge render.
func cartView(store *cart.Store) gin.H {
	return gin.H{
		"cart_key":   store.Key(),
		"items":      store.Items(),
		"is_open":    store.IsOpen(),
		"total":      store.Total(),
		"item_count": store.ItemCount(),
	}
}

// CreateCart mints a new empty cart and returns its key. The client holds
// the key and presents it on every subsequent cart call.
func CreateCart(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := manager.Create()
		c.JSON(http.StatusCreated, cartView(store))
	}
}

func GetCart(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := manager.Get(c.Request.Context(), c.Param("cart_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading the cart"})
			return
		}
		c.JSON(http.StatusOK, cartView(store))
	}
}

// AddCartItem resolves the menu item server-side and merges it into the
// cart. Adding an id already in the cart increments its quantity.
func AddCartItem(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Item_id              string         `json:"item_id" validate:"required"`
			Quantity             int            `json:"quantity"`
			Add_ons              []models.AddOn `json:"add_ons"`
			Special_instructions *string        `json:"special_instructions"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if body.Quantity == 0 {
			body.Quantity = 1
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var item models.MenuItem
		err := menuItemCollection.FindOne(ctx, bson.M{"item_id": body.Item_id}).Decode(&item)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the menu item"})
			return
		}
		if item.Is_available == nil || !*item.Is_available {
			c.JSON(http.StatusConflict, gin.H{"error": "menu item is not available"})
			return
		}

		store, err := manager.Get(ctx, c.Param("cart_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading the cart"})
			return
		}
		store.AddItemWithOptions(item, body.Quantity, body.Add_ons, body.Special_instructions)
		c.JSON(http.StatusOK, cartView(store))
	}
}

// UpdateCartItem sets a line's quantity to an absolute value. Zero and
// negative quantities remove the line; an absent line is a no-op.
func UpdateCartItem(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Quantity *int `json:"quantity" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		store, err := manager.Get(c.Request.Context(), c.Param("cart_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading the cart"})
			return
		}
		store.UpdateQuantity(c.Param("item_id"), *body.Quantity)
		c.JSON(http.StatusOK, cartView(store))
	}
}

func RemoveCartItem(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := manager.Get(c.Request.Context(), c.Param("cart_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading the cart"})
			return
		}
		store.RemoveItem(c.Param("item_id"))
		c.JSON(http.StatusOK, cartView(store))
	}
}

func ClearCart(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := manager.Get(c.Request.Context(), c.Param("cart_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading the cart"})
			return
		}
		store.ClearCart()
		c.JSON(http.StatusOK, cartView(store))
	}
}

// SetCartOpen sets or flips the drawer flag. A body with is_open sets it;
// a body without it toggles.
func SetCartOpen(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Is_open *bool `json:"is_open"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		store, err := manager.Get(c.Request.Context(), c.Param("cart_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading the cart"})
			return
		}
		if body.Is_open != nil {
			store.SetCartOpen(*body.Is_open)
		} else {
			store.ToggleCart()
		}
		c.JSON(http.StatusOK, cartView(store))
	}
}

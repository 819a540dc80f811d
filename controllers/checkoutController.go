package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-restaurant-ordering/cart"
	"go-restaurant-ordering/checkout"
)

// QuoteOrder prices the cart for the checkout summary panel without
// placing anything.
func QuoteOrder(manager *cart.Manager, service *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Cart_key   string `json:"cart_key" validate:"required"`
			Order_type string `json:"order_type" validate:"required,eq=delivery|eq=pickup"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		store, err := manager.Get(c.Request.Context(), body.Cart_key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading the cart"})
			return
		}
		totals, err := service.Quote(store, body.Order_type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, totals.Response())
	}
}

// PlaceOrder submits the cart as an order. Validation failures come back as
// 400 with the cart untouched; a persistence failure leaves the cart intact
// so the submission can be retried.
func PlaceOrder(manager *cart.Manager, service *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Cart_key string `json:"cart_key" validate:"required"`
			checkout.SubmitRequest
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		store, err := manager.Get(c.Request.Context(), body.Cart_key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading the cart"})
			return
		}

		order, err := service.Submit(c.Request.Context(), store, body.SubmitRequest)
		var missing *checkout.MissingFieldError
		switch {
		case err == nil:
			c.JSON(http.StatusCreated, order)
		case errors.Is(err, checkout.ErrEmptyCart),
			errors.Is(err, checkout.ErrInvalidOrderType),
			errors.Is(err, checkout.ErrInvalidPayment),
			errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order was not created"})
		}
	}
}

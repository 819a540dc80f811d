package routes

import (
	"go-restaurant-ordering/cart"
	controller "go-restaurant-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func CartRoutes(incomingRoutes *gin.Engine, manager *cart.Manager) {
	incomingRoutes.POST("/carts", controller.CreateCart(manager))
	incomingRoutes.GET("/carts/:cart_key", controller.GetCart(manager))
	incomingRoutes.PATCH("/carts/:cart_key", controller.SetCartOpen(manager))
	incomingRoutes.POST("/carts/:cart_key/items", controller.AddCartItem(manager))
	incomingRoutes.PATCH("/carts/:cart_key/items/:item_id", controller.UpdateCartItem(manager))
	incomingRoutes.DELETE("/carts/:cart_key/items/:item_id", controller.RemoveCartItem(manager))
	incomingRoutes.DELETE("/carts/:cart_key/items", controller.ClearCart(manager))
}

package routes

import (
	"go-restaurant-ordering/cart"
	"go-restaurant-ordering/checkout"
	controller "go-restaurant-ordering/controllers"

	"github.com/gin-gonic/gin"
)

// CheckoutRoutes is the public ordering surface.
func CheckoutRoutes(incomingRoutes *gin.Engine, manager *cart.Manager, service *checkout.Service) {
	incomingRoutes.POST("/checkout/quote", controller.QuoteOrder(manager, service))
	incomingRoutes.POST("/checkout", controller.PlaceOrder(manager, service))
}

// OrderRoutes is the back-office order surface.
func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/admin/orders", controller.GetOrders())
	incomingRoutes.GET("/admin/orders/:order_id", controller.GetOrder())
	incomingRoutes.PATCH("/admin/orders/:order_id/status", controller.UpdateOrderStatus())
}

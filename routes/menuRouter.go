package routes

import (
	controller "go-restaurant-ordering/controllers"

	"github.com/gin-gonic/gin"
)

// MenuRoutes is the public catalog surface.
func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/menu", controller.GetMenuItems())
	incomingRoutes.GET("/menu/:item_id", controller.GetMenuItem())
	incomingRoutes.GET("/categories", controller.GetCategories())
}

// AdminMenuRoutes is the back-office catalog management surface.
func AdminMenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/admin/menu", controller.GetAllMenuItems())
	incomingRoutes.POST("/admin/menu", controller.CreateMenuItem())
	incomingRoutes.PATCH("/admin/menu/:item_id", controller.UpdateMenuItem())
	incomingRoutes.DELETE("/admin/menu/:item_id", controller.DeleteMenuItem())
	incomingRoutes.POST("/admin/categories", controller.CreateCategory())
}

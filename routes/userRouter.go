package routes

import (
	controller "go-restaurant-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/users/signup", controller.SignUp())
	incomingRoutes.POST("/users/login", controller.Login())
	incomingRoutes.GET("/ws", controller.HandleWebSocket())
}

func AdminUserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/admin/users", controller.GetUsers())
	incomingRoutes.GET("/admin/users/:user_id", controller.GetUser())
}

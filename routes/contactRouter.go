package routes

import (
	controller "go-restaurant-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func ContactRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/contact", controller.CreateContactSubmission())
}

func AdminContactRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/admin/contact-submissions", controller.GetContactSubmissions())
}

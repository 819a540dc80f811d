package routes

import (
	controller "go-restaurant-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func SettingRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/admin/settings", controller.GetSettings())
	incomingRoutes.PUT("/admin/settings/:key", controller.UpsertSetting())
}

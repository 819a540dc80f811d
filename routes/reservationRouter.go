package routes

import (
	controller "go-restaurant-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func ReservationRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/reservations", controller.CreateReservation())
}

func AdminReservationRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/admin/reservations", controller.GetReservations())
	incomingRoutes.PATCH("/admin/reservations/:reservation_id/status", controller.UpdateReservationStatus())
}

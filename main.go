package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"go-restaurant-ordering/cart"
	"go-restaurant-ordering/checkout"
	"go-restaurant-ordering/controllers"
	"go-restaurant-ordering/database"
	middleware "go-restaurant-ordering/middleware"
	routes "go-restaurant-ordering/routes"
)

var cartCollection *mongo.Collection = database.OpenCollection(database.Client, "carts")

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:5173"
	}

	cartManager := cart.NewManager(cart.NewMongoPersister(cartCollection))
	checkoutService := checkout.NewService(checkout.ConfigFromEnv(), controllers.MongoOrderCreator{})

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public surfaces: catalog, cart, checkout, reservations, contact form,
	// staff login and the order event stream.
	routes.MenuRoutes(router)
	routes.CartRoutes(router, cartManager)
	routes.CheckoutRoutes(router, cartManager, checkoutService)
	routes.ReservationRoutes(router)
	routes.ContactRoutes(router)
	routes.UserRoutes(router)

	// Everything past this point requires a staff token.
	router.Use(middleware.Authentication())
	routes.AdminMenuRoutes(router)
	routes.OrderRoutes(router)
	routes.AdminReservationRoutes(router)
	routes.SettingRoutes(router)
	routes.AdminContactRoutes(router)
	routes.AdminUserRoutes(router)

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

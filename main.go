package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mkpicture/perfect-bites/handlers"
	"github.com/mkpicture/perfect-bites/models"
)

func main() {

	/* DATABASE SETUP STARTS */

	err := godotenv.Load()
	if err != nil {
		log.Printf("Error loading .env file. Using environment variables.")
	}

	dbURI := os.Getenv("DATABASE_URI")
	if dbURI == "" {
		dbURI = "perfectbites.db"
		log.Println("Warning: DATABASE_URI not found in environment variables. Using default: " + dbURI)
	}

	db, openDbErr := gorm.Open(sqlite.Open(dbURI), &gorm.Config{})
	if openDbErr != nil {
		log.Fatalf("Failed to connect to database: %v", openDbErr)
	}
	handlers.DB = db

	if migrateErr := db.AutoMigrate(&models.Category{}, &models.MenuItem{}); migrateErr != nil {
		log.Fatalf("Failed to migrate database: %v", migrateErr)
	}

	// The catalog is fixed: seed once, read-only afterwards.
	if seedErr := models.SeedCatalog(db); seedErr != nil {
		log.Fatalf("Failed to seed catalog: %v", seedErr)
	}
	/* DATABASE SETUP ENDS */

	if number := os.Getenv("WHATSAPP_NUMBER"); number != "" {
		handlers.WhatsAppNumber = number
	}

	/* ROUTING STARTS */
	router := gin.Default()

	env := os.Getenv("APP_ENV")

	var corsConfig cors.Config
	if env == "debug" || env == "development" {
		// Development: allow all origins
		corsConfig = cors.Config{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Session-ID"},
			ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}
	} else {
		corsConfig = cors.Config{
			AllowOrigins:     []string{"https://theperfectbites.rw"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Session-ID"},
			ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}
	}

	router.Use(cors.New(corsConfig))

	// --- Public Catalog Routes --- (no session needed)
	publicGroup := router.Group("/public")
	{
		publicGroup.GET("/categories", handlers.ListCategoriesHandler)
		publicGroup.GET("/menu", handlers.GetMenuHandler)
		publicGroup.GET("/menu/:item_id", handlers.GetMenuItemHandler)
	}

	// --- Session-Scoped Routes ---
	sessionRoutes := router.Group("", handlers.SessionMiddleware())
	{
		cartRoutes := sessionRoutes.Group("/cart")
		{
			cartRoutes.GET("", handlers.GetCartHandler)
			cartRoutes.DELETE("", handlers.ClearCartHandler)
			cartRoutes.POST("/items", handlers.AddCartItemHandler)
			cartRoutes.PUT("/items/:item_id", handlers.UpdateCartItemHandler)
			cartRoutes.DELETE("/items/:item_id", handlers.RemoveCartItemHandler)
		}

		deliveryRoutes := sessionRoutes.Group("/delivery")
		{
			deliveryRoutes.GET("", handlers.GetDeliveryHandler)
			deliveryRoutes.PUT("", handlers.UpdateDeliveryHandler)
			deliveryRoutes.GET("/location", handlers.GetLocationHandler)
			deliveryRoutes.POST("/location/request", handlers.RequestLocationHandler)
			deliveryRoutes.POST("/location/result", handlers.ReportLocationHandler)
		}

		sessionRoutes.POST("/checkout", handlers.CheckoutHandler)
	}
	/* ROUTING ENDS */

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on port :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

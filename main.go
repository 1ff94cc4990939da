// main.go
package main

import (
	"context"
	"go-emart/config"
	"go-emart/controllers"
	"go-emart/middleware"
	"go-emart/routes"
	"go-emart/utils"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load environment variables from .env file
	cfg := config.Load()

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Initialize EmailService
	emailService := utils.NewEmailService(cfg.SendGridAPIKey, cfg.EmailSender)

	// Connect to MongoDB
	client, err := utils.ConnectDB(cfg.MongoURI())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()
	log.Info().Msg("Connected to MongoDB")

	db := client.Database(cfg.DBName)

	// Initialize controllers
	userController := controllers.NewUserController(db, emailService)
	productController := controllers.NewProductController(db)
	shippingController := controllers.NewShippingController(db, emailService)
	paymentController := controllers.NewPaymentController(cfg.StripeSecretKey)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, shippingController, paymentController)
	router.Use(middleware.LoggingMiddleware)

	// Start the server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Info().Str("port", cfg.Port).Msg("Server is running")
	log.Fatal().Err(server.ListenAndServe()).Msg("Server stopped")
}

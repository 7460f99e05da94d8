// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"go-parcel/config"
	"go-parcel/controllers"
	"go-parcel/middleware"
	"go-parcel/repositories"
	"go-parcel/routes"
	"go-parcel/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()
	db := client.Database(cfg.DBName)

	// Repositories
	users := repositories.NewUserRepository(db)
	parcels := repositories.NewParcelRepository(db)
	payments := repositories.NewPaymentRepository(db)
	tracking := repositories.NewTrackingRepository(db)
	riders := repositories.NewRiderRepository(db)

	// External services
	verifier := utils.NewJWTVerifier(cfg.JWTSecret)
	stripeClient := utils.NewStripeClient(cfg.StripeSecretKey)
	var mailer controllers.Mailer
	if cfg.PostmarkToken != "" {
		mailer = utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender)
	}

	// Controllers
	userController := controllers.NewUserController(users)
	parcelController := controllers.NewParcelController(parcels)
	paymentController := controllers.NewPaymentController(parcels, payments, stripeClient)
	trackingController := controllers.NewTrackingController(tracking)
	riderController := controllers.NewRiderController(riders, users, mailer)
	healthController := controllers.NewHealthController(client)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	router.Use(middleware.Metrics)

	// Register routes
	routes.RegisterRoutes(router, verifier, users,
		userController, parcelController, paymentController,
		trackingController, riderController, healthController)

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

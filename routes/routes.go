// routes/routes.go
package routes

import (
	"go-parcel/controllers"
	"go-parcel/middleware"
	"go-parcel/repositories"
	"go-parcel/utils"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application. Routes fall
// into three tiers: public, authenticated, and admin (authenticated plus a
// stored-role check).
func RegisterRoutes(
	router *mux.Router,
	verifier utils.TokenVerifier,
	users repositories.UserRepository,
	userController *controllers.UserController,
	parcelController *controllers.ParcelController,
	paymentController *controllers.PaymentController,
	trackingController *controllers.TrackingController,
	riderController *controllers.RiderController,
	healthController *controllers.HealthController,
) {
	// Probes and metrics
	router.HandleFunc("/", healthController.Root).Methods("GET")
	router.HandleFunc("/health", healthController.Health).Methods("GET")
	router.Handle("/metrics", middleware.MetricsHandler()).Methods("GET")

	// Public routes
	router.HandleFunc("/users", userController.CreateUser).Methods("POST")
	router.HandleFunc("/users/search", userController.SearchUsers).Methods("GET")
	router.HandleFunc("/users/{email}/role", userController.GetUserRole).Methods("GET")
	router.HandleFunc("/parcels", parcelController.CreateParcel).Methods("POST")
	router.HandleFunc("/parcels/{id}", parcelController.DeleteParcel).Methods("DELETE")
	router.HandleFunc("/payments", paymentController.CreatePayment).Methods("POST")
	router.HandleFunc("/create-payment-intent", paymentController.CreatePaymentIntent).Methods("POST")
	router.HandleFunc("/tracking", trackingController.AddTrackingEvent).Methods("POST")
	router.HandleFunc("/riders", riderController.ApplyRider).Methods("POST")
	router.HandleFunc("/riders/{id}", riderController.RejectRider).Methods("DELETE")
	router.HandleFunc("/riders/{id}/status", riderController.UpdateRiderStatus).Methods("PATCH")
	router.HandleFunc("/riders/{id}/deactivate", riderController.DeactivateRider).Methods("PATCH")

	// Protected routes
	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.Authenticate(verifier))
	protected.HandleFunc("/parcels", parcelController.ListParcels).Methods("GET")
	protected.HandleFunc("/parcels/{id}", parcelController.GetParcel).Methods("GET")
	protected.HandleFunc("/payments", paymentController.ListPayments).Methods("GET")

	// Admin routes
	admin := router.NewRoute().Subrouter()
	admin.Use(middleware.Authenticate(verifier))
	admin.Use(middleware.RequireAdmin(users))
	admin.HandleFunc("/users/{id}/role", userController.UpdateUserRole).Methods("PATCH")
	admin.HandleFunc("/riders/pending", riderController.ListPending).Methods("GET")
	admin.HandleFunc("/riders/approved", riderController.ListApproved).Methods("GET")
}

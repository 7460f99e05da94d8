package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-parcel/middleware"
	"go-parcel/models"
	"go-parcel/repositories"
)

// ParcelController handles parcel-registry requests
type ParcelController struct {
	Parcels repositories.ParcelRepository
}

// NewParcelController creates a new ParcelController
func NewParcelController(parcels repositories.ParcelRepository) *ParcelController {
	return &ParcelController{Parcels: parcels}
}

// CreateParcel inserts a new parcel. The creation timestamp is assigned
// server-side because list ordering depends on it.
func (pc *ParcelController) CreateParcel(w http.ResponseWriter, r *http.Request) {
	var parcel models.Parcel
	if err := json.NewDecoder(r.Body).Decode(&parcel); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if parcel.PaymentStatus == "" {
		parcel.PaymentStatus = models.PaymentStatusUnpaid
	}
	parcel.CreatedAt = time.Now().UTC()

	ctx, cancel := dbCtx(r)
	defer cancel()

	result, err := pc.Parcels.Insert(ctx, parcel)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ListParcels returns the caller's parcels, newest first. The query email
// must match the authenticated identity exactly.
func (pc *ParcelController) ListParcels(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	email := r.URL.Query().Get("email")
	if claims.Email != email {
		writeMessage(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	parcels, err := pc.Parcels.FindByOwner(ctx, email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if parcels == nil {
		parcels = []models.Parcel{}
	}
	writeJSON(w, http.StatusOK, parcels)
}

// GetParcel returns a single parcel by id.
func (pc *ParcelController) GetParcel(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	parcel, err := pc.Parcels.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Parcel not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, parcel)
}

// DeleteParcel removes a parcel by id and returns the raw deletion outcome.
func (pc *ParcelController) DeleteParcel(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	result, err := pc.Parcels.Delete(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

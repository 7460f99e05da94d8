package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"go-parcel/models"
	"go-parcel/repositories"
)

// TrackingController handles the append-only tracking log
type TrackingController struct {
	Tracking repositories.TrackingRepository
}

// NewTrackingController creates a new TrackingController
func NewTrackingController(tracking repositories.TrackingRepository) *TrackingController {
	return &TrackingController{Tracking: tracking}
}

// AddTrackingEvent appends one event per call. The referenced parcel is not
// validated; events for unknown parcels are recorded as-is.
func (tc *TrackingController) AddTrackingEvent(w http.ResponseWriter, r *http.Request) {
	var event models.TrackingEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	event.UpdatedAt = time.Now().UTC()

	ctx, cancel := dbCtx(r)
	defer cancel()

	result, err := tc.Tracking.Insert(ctx, event)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Tracking update added",
		"trackingId": result.InsertedID,
	})
}

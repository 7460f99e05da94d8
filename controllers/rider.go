package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-parcel/models"
	"go-parcel/repositories"
)

// Mailer sends rider lifecycle notifications. A nil Mailer disables them.
type Mailer interface {
	SendRiderStatusEmail(toEmail, name, status string) error
}

// RiderController handles rider-directory requests
type RiderController struct {
	Riders repositories.RiderRepository
	Users  repositories.UserRepository
	Mail   Mailer
}

// NewRiderController creates a new RiderController
func NewRiderController(riders repositories.RiderRepository, users repositories.UserRepository, mail Mailer) *RiderController {
	return &RiderController{Riders: riders, Users: users, Mail: mail}
}

// ApplyRider records a new rider application. An application without a
// status starts as pending; a caller-supplied status is kept verbatim.
func (rc *RiderController) ApplyRider(w http.ResponseWriter, r *http.Request) {
	var rider models.Rider
	if err := json.NewDecoder(r.Body).Decode(&rider); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if rider.Status == "" {
		rider.Status = models.RiderStatusPending
	}
	rider.CreatedAt = time.Now().UTC()

	ctx, cancel := dbCtx(r)
	defer cancel()

	result, err := rc.Riders.Insert(ctx, rider)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ListPending returns rider applications awaiting review (admin only).
func (rc *RiderController) ListPending(w http.ResponseWriter, r *http.Request) {
	rc.listByStatus(w, r, models.RiderStatusPending)
}

// ListApproved returns active riders (admin only).
func (rc *RiderController) ListApproved(w http.ResponseWriter, r *http.Request) {
	rc.listByStatus(w, r, models.RiderStatusApproved)
}

func (rc *RiderController) listByStatus(w http.ResponseWriter, r *http.Request, status string) {
	ctx, cancel := dbCtx(r)
	defer cancel()

	riders, err := rc.Riders.FindByStatus(ctx, status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if riders == nil {
		riders = []models.Rider{}
	}
	writeJSON(w, http.StatusOK, riders)
}

// RejectRider hard-deletes an application.
func (rc *RiderController) RejectRider(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid rider ID")
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	// Fetched before deletion so the applicant can still be notified.
	rider, _ := rc.Riders.FindByID(ctx, id)

	result, err := rc.Riders.Delete(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if result.DeletedCount == 0 {
		writeMessage(w, http.StatusNotFound, "Rider not found")
		return
	}

	if rc.Mail != nil && rider != nil {
		go rc.notify(rider.Email, rider.Name, models.RiderStatusRejected)
	}
	writeMessage(w, http.StatusOK, "Rider application rejected")
}

// UpdateRiderStatus moves a pending application to the requested status.
// Approving with an email additionally promotes the matching user's role to
// "rider": a saga step whose failure is logged and reported, never rolled
// back.
func (rc *RiderController) UpdateRiderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid rider ID")
		return
	}

	var body struct {
		Status string `json:"status"`
		Email  string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		writeMessage(w, http.StatusBadRequest, "Missing status")
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	result, err := rc.Riders.UpdateStatusFrom(ctx, id, models.RiderStatusPending, body.Status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	response := map[string]interface{}{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	}

	if body.Status == models.RiderStatusApproved && body.Email != "" && result.ModifiedCount > 0 {
		response["userRoleUpdated"] = rc.promoteUser(ctx, body.Email)
	}

	if result.ModifiedCount > 0 && rc.Mail != nil {
		if rider, err := rc.Riders.FindByID(ctx, id); err == nil {
			go rc.notify(rider.Email, rider.Name, body.Status)
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// promoteUser sets the matching user's role to "rider" and reports whether
// the promotion took effect.
func (rc *RiderController) promoteUser(ctx context.Context, email string) bool {
	roleResult, err := rc.Users.UpdateRoleByEmail(ctx, email, models.RoleRider)
	if err != nil {
		slog.Warn("rider approved but user role promotion failed", "email", email, "error", err)
		return false
	}
	if roleResult.ModifiedCount == 0 {
		slog.Warn("rider approved but no user record matched for promotion", "email", email)
		return false
	}
	return true
}

// DeactivateRider retires an approved rider. Deactivation is terminal and
// only valid from the approved state.
func (rc *RiderController) DeactivateRider(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid rider ID")
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	result, err := rc.Riders.UpdateStatusFrom(ctx, id, models.RiderStatusApproved, models.RiderStatusDeactivated)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if result.ModifiedCount == 0 {
		writeMessage(w, http.StatusNotFound, "Rider not found or already deactivated")
		return
	}

	if rc.Mail != nil {
		if rider, err := rc.Riders.FindByID(r.Context(), id); err == nil {
			go rc.notify(rider.Email, rider.Name, models.RiderStatusDeactivated)
		}
	}
	writeMessage(w, http.StatusOK, "Rider deactivated")
}

func (rc *RiderController) notify(email, name, status string) {
	if err := rc.Mail.SendRiderStatusEmail(email, name, status); err != nil {
		slog.Warn("failed to send rider status email", "email", email, "status", status, "error", err)
	}
}

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-parcel/models"
	"go-parcel/repositories"
)

// UserController handles user-directory requests
type UserController struct {
	Users repositories.UserRepository
}

// NewUserController creates a new UserController
func NewUserController(users repositories.UserRepository) *UserController {
	return &UserController{Users: users}
}

// userSearchLimit caps how many records a search returns.
const userSearchLimit = 10

// CreateUser records a profile on first sign-in. Creation is idempotent by
// email: a second call with the same email reports "already exists" and
// mutates nothing.
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if user.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	_, err := uc.Users.FindByEmail(ctx, user.Email)
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  "User already exists",
			"inserted": false,
		})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.LastLogIn = now

	result, err := uc.Users.Insert(ctx, user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// SearchUsers returns up to 10 users whose email contains the query string,
// case-insensitively. An empty result is reported as not found.
func (uc *UserController) SearchUsers(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeMessage(w, http.StatusBadRequest, "Missing email query parameter")
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	users, err := uc.Users.Search(ctx, email, userSearchLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if len(users) == 0 {
		writeMessage(w, http.StatusNotFound, "No users found")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUserRole returns the stored role for an exact email, defaulting to
// "user" when the record carries none.
func (uc *UserController) GetUserRole(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := dbCtx(r)
	defer cancel()

	user, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	writeJSON(w, http.StatusOK, map[string]string{"role": role})
}

// UpdateUserRole changes a user's role by id (admin only; gated in routes).
func (uc *UserController) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Role == "" {
		writeMessage(w, http.StatusBadRequest, "Missing role")
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	result, err := uc.Users.UpdateRoleByID(ctx, id, body.Role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if result.MatchedCount == 0 || result.ModifiedCount == 0 {
		writeMessage(w, http.StatusNotFound, "User not found or role unchanged")
		return
	}
	writeMessage(w, http.StatusOK, "User role updated")
}

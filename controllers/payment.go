package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-parcel/middleware"
	"go-parcel/models"
	"go-parcel/repositories"
)

// IntentCreator requests a payment authorization from the external
// processor and returns the client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountInCents int64) (string, error)
}

// PaymentController handles the payment ledger and the processor proxy
type PaymentController struct {
	Parcels  repositories.ParcelRepository
	Payments repositories.PaymentRepository
	Intents  IntentCreator
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(parcels repositories.ParcelRepository, payments repositories.PaymentRepository, intents IntentCreator) *PaymentController {
	return &PaymentController{Parcels: parcels, Payments: payments, Intents: intents}
}

// ListPayments returns the caller's payment history, latest on top. The
// query email must match the authenticated identity exactly.
func (pc *PaymentController) ListPayments(w http.ResponseWriter, r *http.Request) {
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

	payments, err := pc.Payments.FindByPayer(ctx, email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

// CreatePayment records a charge the client already completed against the
// processor. The parcel status flip comes first; the history record is only
// inserted when the flip modified a document, so a parcel that is missing or
// already paid never gains a duplicate history entry. The two writes are not
// transactional across collections.
func (pc *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ParcelID      string  `json:"parcelId"`
		Email         string  `json:"email"`
		Amount        float64 `json:"amount"`
		TransactionID string  `json:"transactionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	id, err := primitive.ObjectIDFromHex(body.ParcelID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	update, err := pc.Parcels.MarkPaid(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if update.ModifiedCount == 0 {
		writeMessage(w, http.StatusNotFound, "Parcel not found or already paid")
		return
	}

	now := time.Now().UTC()
	payment := models.Payment{
		ParcelID:        body.ParcelID,
		Email:           body.Email,
		Amount:          body.Amount,
		Status:          models.PaymentStatusPaid,
		TransactionID:   body.TransactionID,
		CreatedAtString: now.Format(time.RFC3339),
		CreatedAt:       now,
	}

	result, err := pc.Payments.Insert(ctx, payment)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Payment recorded and parcel marked as Paid",
		"insertedId": result.InsertedID,
	})
}

// CreatePaymentIntent asks the processor for a client-usable authorization.
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AmountInCents int64 `json:"amountInCents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	clientSecret, err := pc.Intents.CreateIntent(r.Context(), body.AmountInCents)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

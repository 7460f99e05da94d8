package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-parcel/models"
)

func TestCreateParcelRoundTrip(t *testing.T) {
	repo := &fakeParcelRepo{}
	pc := NewParcelController(repo)

	body := `{
		"type": "non-document",
		"title": "Birthday gift",
		"email": "alice@example.com",
		"sender_name": "Alice",
		"receiver_name": "Bob",
		"receiver_address": "12 Main St",
		"weight": 2.5,
		"cost": 120
	}`

	w := httptest.NewRecorder()
	pc.CreateParcel(w, httptest.NewRequest("POST", "/parcels", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.parcels, 1)

	created := repo.parcels[0]
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, models.PaymentStatusUnpaid, created.PaymentStatus)
	assert.False(t, created.CreatedAt.IsZero())

	// Fetch by id and compare every submitted field.
	req := mux.SetURLVars(
		authedRequest("GET", "/parcels/"+created.ID.Hex(), nil, "alice@example.com"),
		map[string]string{"id": created.ID.Hex()},
	)
	w = httptest.NewRecorder()
	pc.GetParcel(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Parcel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "non-document", fetched.Type)
	assert.Equal(t, "Birthday gift", fetched.Title)
	assert.Equal(t, "alice@example.com", fetched.Email)
	assert.Equal(t, "Alice", fetched.SenderName)
	assert.Equal(t, "Bob", fetched.ReceiverName)
	assert.Equal(t, "12 Main St", fetched.ReceiverAddress)
	assert.Equal(t, 2.5, fetched.Weight)
	assert.Equal(t, 120.0, fetched.Cost)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestListParcelsOwnerOnly(t *testing.T) {
	repo := &fakeParcelRepo{parcels: []models.Parcel{
		{ID: primitive.NewObjectID(), Email: "alice@example.com", Title: "old", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: primitive.NewObjectID(), Email: "alice@example.com", Title: "new", CreatedAt: time.Now()},
		{ID: primitive.NewObjectID(), Email: "bob@example.com", Title: "other"},
	}}
	pc := NewParcelController(repo)

	w := httptest.NewRecorder()
	pc.ListParcels(w, authedRequest("GET", "/parcels?email=alice@example.com", nil, "alice@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	var parcels []models.Parcel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parcels))
	require.Len(t, parcels, 2)
	assert.Equal(t, "new", parcels[0].Title) // newest first
	assert.Equal(t, "old", parcels[1].Title)
}

func TestListParcelsEmailMismatchForbidden(t *testing.T) {
	pc := NewParcelController(&fakeParcelRepo{})

	// Regardless of data state, a mismatched query email is forbidden.
	w := httptest.NewRecorder()
	pc.ListParcels(w, authedRequest("GET", "/parcels?email=bob@example.com", nil, "alice@example.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Missing query email is a mismatch too.
	w = httptest.NewRecorder()
	pc.ListParcels(w, authedRequest("GET", "/parcels", nil, "alice@example.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetParcelNotFound(t *testing.T) {
	pc := NewParcelController(&fakeParcelRepo{})

	hexID := primitive.NewObjectID().Hex()
	req := mux.SetURLVars(authedRequest("GET", "/parcels/"+hexID, nil, "alice@example.com"), map[string]string{"id": hexID})
	w := httptest.NewRecorder()
	pc.GetParcel(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetParcelMalformedID(t *testing.T) {
	pc := NewParcelController(&fakeParcelRepo{})

	req := mux.SetURLVars(authedRequest("GET", "/parcels/zzz", nil, "alice@example.com"), map[string]string{"id": "zzz"})
	w := httptest.NewRecorder()
	pc.GetParcel(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestDeleteParcelReturnsRawResult(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &fakeParcelRepo{parcels: []models.Parcel{{ID: id, Email: "alice@example.com"}}}
	pc := NewParcelController(repo)

	del := func(hexID string) *httptest.ResponseRecorder {
		req := mux.SetURLVars(httptest.NewRequest("DELETE", "/parcels/"+hexID, nil), map[string]string{"id": hexID})
		w := httptest.NewRecorder()
		pc.DeleteParcel(w, req)
		return w
	}

	w := del(id.Hex())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.parcels)

	// Deleting a missing parcel still responds 200 with the store outcome.
	w = del(primitive.NewObjectID().Hex())
	assert.Equal(t, http.StatusOK, w.Code)
}

package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-parcel/middleware"
	"go-parcel/models"
	"go-parcel/utils"
)

// authedRequest builds a request carrying the claims the auth gate would
// have attached for the given email.
func authedRequest(method, target string, body io.Reader, email string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, &utils.Claims{Email: email})
	return req.WithContext(ctx)
}

// In-memory repository fakes shared by the handler tests.

type fakeUserRepo struct {
	users     []models.User
	insertErr error
	updateErr error
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if strings.EqualFold(f.users[i].Email, email) {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Insert(_ context.Context, user models.User) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, user)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *fakeUserRepo) Search(_ context.Context, partial string, limit int64) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Email), strings.ToLower(partial)) {
			out = append(out, u)
			if int64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRoleByID(_ context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.users {
		if f.users[i].ID == id {
			if f.users[i].Role == role {
				return &mongo.UpdateResult{MatchedCount: 1}, nil
			}
			f.users[i].Role = role
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeUserRepo) UpdateRoleByEmail(_ context.Context, email, role string) (*mongo.UpdateResult, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.users {
		if strings.EqualFold(f.users[i].Email, email) {
			if f.users[i].Role == role {
				return &mongo.UpdateResult{MatchedCount: 1}, nil
			}
			f.users[i].Role = role
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

type fakeParcelRepo struct {
	parcels   []models.Parcel
	insertErr error
}

func (f *fakeParcelRepo) Insert(_ context.Context, parcel models.Parcel) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if parcel.ID.IsZero() {
		parcel.ID = primitive.NewObjectID()
	}
	f.parcels = append(f.parcels, parcel)
	return &mongo.InsertOneResult{InsertedID: parcel.ID}, nil
}

func (f *fakeParcelRepo) FindByOwner(_ context.Context, email string) ([]models.Parcel, error) {
	var out []models.Parcel
	for _, p := range f.parcels {
		if p.Email == email {
			out = append(out, p)
		}
	}
	// newest first
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeParcelRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Parcel, error) {
	for i := range f.parcels {
		if f.parcels[i].ID == id {
			p := f.parcels[i]
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeParcelRepo) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for i := range f.parcels {
		if f.parcels[i].ID == id {
			f.parcels = append(f.parcels[:i], f.parcels[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeParcelRepo) MarkPaid(_ context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	for i := range f.parcels {
		if f.parcels[i].ID == id {
			if f.parcels[i].PaymentStatus == models.PaymentStatusPaid {
				return &mongo.UpdateResult{MatchedCount: 1}, nil
			}
			f.parcels[i].PaymentStatus = models.PaymentStatusPaid
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

type fakePaymentRepo struct {
	payments  []models.Payment
	insertErr error
}

func (f *fakePaymentRepo) Insert(_ context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	payment.ID = primitive.NewObjectID()
	f.payments = append(f.payments, payment)
	return &mongo.InsertOneResult{InsertedID: payment.ID}, nil
}

func (f *fakePaymentRepo) FindByPayer(_ context.Context, email string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTrackingRepo struct {
	events    []models.TrackingEvent
	insertErr error
}

func (f *fakeTrackingRepo) Insert(_ context.Context, event models.TrackingEvent) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	event.ID = primitive.NewObjectID()
	f.events = append(f.events, event)
	return &mongo.InsertOneResult{InsertedID: event.ID}, nil
}

type fakeRiderRepo struct {
	riders    []models.Rider
	insertErr error
}

func (f *fakeRiderRepo) Insert(_ context.Context, rider models.Rider) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if rider.ID.IsZero() {
		rider.ID = primitive.NewObjectID()
	}
	f.riders = append(f.riders, rider)
	return &mongo.InsertOneResult{InsertedID: rider.ID}, nil
}

func (f *fakeRiderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Rider, error) {
	for i := range f.riders {
		if f.riders[i].ID == id {
			rd := f.riders[i]
			return &rd, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRiderRepo) FindByStatus(_ context.Context, status string) ([]models.Rider, error) {
	var out []models.Rider
	for _, rd := range f.riders {
		if rd.Status == status {
			out = append(out, rd)
		}
	}
	return out, nil
}

func (f *fakeRiderRepo) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for i := range f.riders {
		if f.riders[i].ID == id {
			f.riders = append(f.riders[:i], f.riders[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeRiderRepo) UpdateStatusFrom(_ context.Context, id primitive.ObjectID, from, to string) (*mongo.UpdateResult, error) {
	for i := range f.riders {
		if f.riders[i].ID == id && f.riders[i].Status == from {
			f.riders[i].Status = to
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

type fakeIntentCreator struct {
	secret string
	err    error
}

func (f *fakeIntentCreator) CreateIntent(_ context.Context, amountInCents int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

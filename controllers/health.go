package controllers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

// HealthController serves liveness and store-connectivity probes
type HealthController struct {
	Client *mongo.Client
}

// NewHealthController creates a new HealthController
func NewHealthController(client *mongo.Client) *HealthController {
	return &HealthController{Client: client}
}

// Root answers with a plaintext liveness line.
func (hc *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("The server is running!"))
}

// Health pings the document store.
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbCtx(r)
	defer cancel()

	if err := hc.Client.Ping(ctx, nil); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

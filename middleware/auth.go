package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"go-parcel/models"
	"go-parcel/repositories"
	"go-parcel/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// ClaimsFrom extracts the authenticated claims attached by Authenticate.
func ClaimsFrom(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// Authenticate verifies the bearer token and attaches the decoded claims to
// the request context. A missing or malformed header is unauthenticated; a
// token that fails verification is forbidden.
func Authenticate(verifier utils.TokenVerifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				reject(w, http.StatusUnauthorized, "Unauthorized: No token provided")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				reject(w, http.StatusUnauthorized, "Unauthorized: No token provided")
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				reject(w, http.StatusForbidden, "Forbidden Access")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin ensures the caller's stored role is admin. Must run after
// Authenticate. The role comes from the user collection, not the token, so
// a demoted admin is locked out on their next request.
func RequireAdmin(users repositories.UserRepository) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok {
				reject(w, http.StatusUnauthorized, "Unauthorized: No token provided")
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()
			user, err := users.FindByEmail(ctx, claims.Email)
			if err != nil || user.Role != models.RoleAdmin {
				reject(w, http.StatusForbidden, "Forbidden: Admins only")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

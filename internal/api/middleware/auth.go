package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// TokenVerifier validates a bearer token and returns the embedded employee
// identifier
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

type contextKey string

// EmployeeIDKey holds the authenticated employee id in the request context
const EmployeeIDKey contextKey = "employeeID"

// AuthMiddleware guards routes behind bearer-token validation. The core only
// issues tokens; this is the boundary that enforces them.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func rejectUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Wrap rejects requests without a valid bearer token
func (m *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			rejectUnauthorized(w, "missing bearer token")
			return
		}

		employeeID, err := m.verifier.Verify(token)
		if err != nil {
			rejectUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), EmployeeIDKey, employeeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

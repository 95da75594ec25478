package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	id  int64
	err error
}

func (v *stubVerifier) Verify(token string) (int64, error) {
	return v.id, v.err
}

func protected(t *testing.T, verifier TokenVerifier) (http.Handler, *int64) {
	t.Helper()
	var seen int64
	handler := NewAuthMiddleware(verifier).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(EmployeeIDKey).(int64); ok {
			seen = id
		}
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	handler, seen := protected(t, &stubVerifier{id: 4})

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), *seen)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	handler, _ := protected(t, &stubVerifier{id: 4})

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// rejections are JSON like every other error path
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]string
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "missing bearer token", body["error"])
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	handler, _ := protected(t, &stubVerifier{id: 4})

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	handler, _ := protected(t, &stubVerifier{err: errors.New("expired")})

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "invalid or expired token", body["error"])
}

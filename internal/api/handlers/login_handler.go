package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sorrisolabs/odonto-backend/internal/application/services"
)

// LoginHandler handles employee authentication
type LoginHandler struct {
	svc *services.AuthService
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(svc *services.AuthService) *LoginHandler {
	return &LoginHandler{svc: svc}
}

// Login handles POST /api/login
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Login string `json:"login"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.svc.Authenticate(r.Context(), body.Login, body.Senha)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

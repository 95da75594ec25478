package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sorrisolabs/odonto-backend/internal/application/services"
	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
)

// EmployeeHandler handles employee requests. Create answers with a session
// token alongside the generated id, and the dentist listing and password
// rotation are employee-only operations.
type EmployeeHandler struct {
	svc *services.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(svc *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// List handles GET /api/funcionarios
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.List(r.Context(), queryPage(r), tableRequested(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// Create handles POST /api/funcionarios
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var employee entities.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	id, token, err := h.svc.Create(r.Context(), &employee)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"id": id, "token": token})
}

// Get handles GET /api/funcionarios/{id}
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	employee, err := h.svc.Get(r.Context(), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": employee})
}

// Update handles PUT /api/funcionarios/{id}
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var employee entities.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	id := pathID(r)
	if err := h.svc.Update(r.Context(), id, &employee); err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Remove handles DELETE /api/funcionarios/{id}
func (h *EmployeeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if err := h.svc.Remove(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Search handles GET /api/funcionarios/busca?texto=
func (h *EmployeeHandler) Search(w http.ResponseWriter, r *http.Request) {
	values, err := h.svc.Search(r.Context(), r.URL.Query().Get("texto"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": values})
}

// Dentists handles GET /api/funcionarios/dentistas
func (h *EmployeeHandler) Dentists(w http.ResponseWriter, r *http.Request) {
	values, err := h.svc.Dentists(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": values})
}

// ChangePassword handles PATCH /api/funcionarios/{id}/senha
func (h *EmployeeHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var change entities.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	id := pathID(r)
	if err := h.svc.ChangePassword(r.Context(), id, &change); err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"id": id})
}

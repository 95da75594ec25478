package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sorrisolabs/odonto-backend/internal/application/services"
	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
)

// ScheduleHandler handles appointment requests, including the type lookup
// and the completion transition
type ScheduleHandler struct {
	svc *services.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(svc *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// List handles GET /api/agendas
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.List(r.Context(), queryPage(r), tableRequested(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// Create handles POST /api/agendas
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var schedule entities.Schedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	id, err := h.svc.Create(r.Context(), &schedule)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Get handles GET /api/agendas/{id}
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.svc.Get(r.Context(), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": schedule})
}

// Update handles PUT /api/agendas/{id}
func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var schedule entities.Schedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	id := pathID(r)
	if err := h.svc.Update(r.Context(), id, &schedule); err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Remove handles DELETE /api/agendas/{id}
func (h *ScheduleHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if err := h.svc.Remove(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Search handles GET /api/agendas/busca?texto=
func (h *ScheduleHandler) Search(w http.ResponseWriter, r *http.Request) {
	values, err := h.svc.Search(r.Context(), r.URL.Query().Get("texto"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": values})
}

// Complete handles PATCH /api/agendas/{id}/concluir. The body carries the
// target flag; false reopens the appointment.
func (h *ScheduleHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Concluida *bool `json:"concluida"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	id := pathID(r)
	if err := h.svc.Complete(r.Context(), id, body.Concluida); err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Types handles GET /api/agendas/tipos
func (h *ScheduleHandler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.Types(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"types": types})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sorrisolabs/odonto-backend/internal/application/services"
)

// CrudHandler exposes one entity service over HTTP. The same handler type
// serves clients, equipment, medicines and financial transactions; entities
// with extra operations get their own handler.
type CrudHandler[T any] struct {
	svc *services.EntityService[T]
}

// NewCrudHandler creates a handler over an entity service
func NewCrudHandler[T any](svc *services.EntityService[T]) *CrudHandler[T] {
	return &CrudHandler[T]{svc: svc}
}

// List handles GET /api/{resource}
func (h *CrudHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.List(r.Context(), queryPage(r), tableRequested(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// Create handles POST /api/{resource}
func (h *CrudHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var entity T
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	id, err := h.svc.Create(r.Context(), &entity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Get handles GET /api/{resource}/{id}
func (h *CrudHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	entity, err := h.svc.Get(r.Context(), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": entity})
}

// Update handles PUT /api/{resource}/{id}
func (h *CrudHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	var entity T
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	id := pathID(r)
	if err := h.svc.Update(r.Context(), id, &entity); err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Remove handles DELETE /api/{resource}/{id}
func (h *CrudHandler[T]) Remove(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if err := h.svc.Remove(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// Search handles GET /api/{resource}/busca?texto=
func (h *CrudHandler[T]) Search(w http.ResponseWriter, r *http.Request) {
	values, err := h.svc.Search(r.Context(), r.URL.Query().Get("texto"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": values})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	apperrors "github.com/sorrisolabs/odonto-backend/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondError maps the application error taxonomy onto status codes:
// validation 400, not-found 404, rejected credentials 400, everything else
// 500. Store-level faults are logged before surfacing.
func respondError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		default:
			log.Error().Err(err).Msg("internal error")
			respondWithError(w, http.StatusInternalServerError, appErr.Message)
		}
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	respondWithError(w, http.StatusInternalServerError, err.Error())
}

// pathID parses the {id} path segment; a missing or non-numeric value comes
// back as zero and fails the service-side presence check
func pathID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// queryPage parses the page query parameter, defaulting to the first page
func queryPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// tableRequested reports whether the caller asked for the display view
func tableRequested(r *http.Request) bool {
	return r.URL.Query().Get("format") == "table"
}

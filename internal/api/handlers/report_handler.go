package handlers

import (
	"net/http"

	"github.com/sorrisolabs/odonto-backend/internal/application/services"
)

// ReportHandler handles the dashboard report requests
type ReportHandler struct {
	svc *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func dateRange(r *http.Request) (string, string) {
	q := r.URL.Query()
	return q.Get("dataInicio"), q.Get("dataFinal")
}

// Schedules handles GET /api/relatorios/agendas?dataInicio=&dataFinal=
func (h *ReportHandler) Schedules(w http.ResponseWriter, r *http.Request) {
	from, to := dateRange(r)
	values, err := h.svc.CompletedSchedules(r.Context(), from, to)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": values})
}

// Financial handles GET /api/relatorios/financeiro?dataInicio=&dataFinal=
func (h *ReportHandler) Financial(w http.ResponseWriter, r *http.Request) {
	from, to := dateRange(r)
	values, err := h.svc.SettledTransactions(r.Context(), from, to)
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": values})
}

// Equipment handles GET /api/relatorios/equipamentos
func (h *ReportHandler) Equipment(w http.ResponseWriter, r *http.Request) {
	values, err := h.svc.EquipmentStock(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": values})
}

// Medicines handles GET /api/relatorios/medicamentos
func (h *ReportHandler) Medicines(w http.ResponseWriter, r *http.Request) {
	values, err := h.svc.MedicineStock(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"values": values})
}

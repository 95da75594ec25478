package services

import (
	"context"

	"github.com/sorrisolabs/odonto-backend/internal/application/validation"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
)

// ReportService serves the read-only dashboard projections, always in
// display form
type ReportService struct {
	repo repositories.ReportRepository
}

// NewReportService creates the report service
func NewReportService(repo repositories.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

func validateRange(from, to string) error {
	return validation.Required(map[string]any{
		"dataInicio": from,
		"dataFinal":  to,
	})
}

// CompletedSchedules reports completed appointments within the inclusive
// date range
func (s *ReportService) CompletedSchedules(ctx context.Context, from, to string) ([]any, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.repo.CompletedSchedules(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return mapScheduleRows(rows), nil
}

// SettledTransactions reports settled financial transactions within the
// inclusive date range
func (s *ReportService) SettledTransactions(ctx context.Context, from, to string) ([]any, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.repo.SettledTransactions(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, transactionRow(row))
	}
	return out, nil
}

// EquipmentStock reports the equipment inventory, low stock first
func (s *ReportService) EquipmentStock(ctx context.Context) ([]any, error) {
	rows, err := s.repo.EquipmentByStock(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, equipmentRow(row))
	}
	return out, nil
}

// MedicineStock reports the medicine inventory, low stock first
func (s *ReportService) MedicineStock(ctx context.Context) ([]any, error) {
	rows, err := s.repo.MedicinesByStock(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, medicineRow(row))
	}
	return out, nil
}

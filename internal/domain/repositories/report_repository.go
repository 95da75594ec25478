package repositories

import (
	"context"

	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
)

// ReportRepository serves the read-only dashboard projections. Date bounds
// are inclusive ISO dates. Inventory reads order ascending by unit count so
// low-stock items surface first.
type ReportRepository interface {
	CompletedSchedules(ctx context.Context, from, to string) ([]*entities.ScheduleView, error)
	SettledTransactions(ctx context.Context, from, to string) ([]*entities.Transaction, error)
	EquipmentByStock(ctx context.Context) ([]*entities.Equipment, error)
	MedicinesByStock(ctx context.Context) ([]*entities.Medicine, error)
}

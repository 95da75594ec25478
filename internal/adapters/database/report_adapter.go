package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	"github.com/sorrisolabs/odonto-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/sorrisolabs/odonto-backend/pkg/errors"
)

// ReportAdapter implements the read-only dashboard projections
type ReportAdapter struct {
	schedules *ScheduleAdapter
	client    *postgres.Client
	db        *goqu.Database
}

// NewReportAdapter creates a new report adapter
func NewReportAdapter(client *postgres.Client) repositories.ReportRepository {
	return &ReportAdapter{
		schedules: NewScheduleAdapter(client).(*ScheduleAdapter),
		client:    client,
		db:        goqu.New("postgres", client.DB()),
	}
}

// CompletedSchedules fetches completed appointments within the inclusive
// date range, joined like the schedule list
func (a *ReportAdapter) CompletedSchedules(ctx context.Context, from, to string) ([]*entities.ScheduleView, error) {
	query, args, err := a.schedules.viewDataset().
		Where(
			goqu.I("ag.data").Between(goqu.Range(from, to)),
			goqu.Ex{"ag.concluida": true},
		).
		Order(goqu.I("ag.data").Asc(), goqu.I("ag.hora").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build schedule report query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query schedule report", err)
	}
	defer rows.Close()

	return collectScheduleViews(rows)
}

// SettledTransactions fetches settled financial transactions within the
// inclusive date range
func (a *ReportAdapter) SettledTransactions(ctx context.Context, from, to string) ([]*entities.Transaction, error) {
	query, args, err := a.db.Select("idTransacao", "data", "descricao", "tipo", "situacao", "valor", "devedor").
		From("Financeiro").
		Where(
			goqu.C("data").Between(goqu.Range(from, to)),
			goqu.Ex{"situacao": true},
		).
		Order(goqu.C("data").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build financial report query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query financial report", err)
	}
	defer rows.Close()

	var out []*entities.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan transaction row", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read transaction rows", err)
	}

	return out, nil
}

// EquipmentByStock fetches the equipment inventory ordered ascending by unit
// count, surfacing low-stock items first
func (a *ReportAdapter) EquipmentByStock(ctx context.Context) ([]*entities.Equipment, error) {
	query, args, err := a.db.Select("idEquipamento", "nome", "unidades").
		From("Equipamentos").
		Order(goqu.C("unidades").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build equipment report query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query equipment report", err)
	}
	defer rows.Close()

	var out []*entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.Nome, &e.Unidades); err != nil {
			return nil, apperrors.NewInternalError("failed to scan equipment row", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read equipment rows", err)
	}

	return out, nil
}

// MedicinesByStock fetches the medicine inventory ordered ascending by unit
// count
func (a *ReportAdapter) MedicinesByStock(ctx context.Context) ([]*entities.Medicine, error) {
	query, args, err := a.db.Select("idMedicamento", "nome", "unidades", "valor").
		From("Medicamentos").
		Order(goqu.C("unidades").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build medicine report query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query medicine report", err)
	}
	defer rows.Close()

	var out []*entities.Medicine
	for rows.Next() {
		var m entities.Medicine
		if err := rows.Scan(&m.ID, &m.Nome, &m.Unidades, &m.Valor); err != nil {
			return nil, apperrors.NewInternalError("failed to scan medicine row", err)
		}
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read medicine rows", err)
	}

	return out, nil
}

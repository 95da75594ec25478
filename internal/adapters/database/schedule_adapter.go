package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	"github.com/sorrisolabs/odonto-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/sorrisolabs/odonto-backend/pkg/errors"
)

// ScheduleAdapter implements the ScheduleRepository interface
type ScheduleAdapter struct {
	crud   *CrudAdapter[entities.Schedule]
	client *postgres.Client
	db     *goqu.Database
}

// NewScheduleAdapter creates a new schedule adapter
func NewScheduleAdapter(client *postgres.Client) repositories.ScheduleRepository {
	return &ScheduleAdapter{
		crud:   NewCrudAdapter(client, scheduleSpec()),
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a new appointment
func (a *ScheduleAdapter) Create(ctx context.Context, schedule *entities.Schedule) (int64, error) {
	return a.crud.Create(ctx, schedule)
}

// GetByID retrieves a single appointment in its storage form
func (a *ScheduleAdapter) GetByID(ctx context.Context, id int64) (*entities.Schedule, error) {
	return a.crud.GetByID(ctx, id)
}

// Update replaces all appointment fields
func (a *ScheduleAdapter) Update(ctx context.Context, id int64, schedule *entities.Schedule) error {
	return a.crud.Update(ctx, id, schedule)
}

// Delete removes an appointment
func (a *ScheduleAdapter) Delete(ctx context.Context, id int64) error {
	return a.crud.Delete(ctx, id)
}

// viewDataset builds the joined appointment read resolving client, dentist
// and type names
func (a *ScheduleAdapter) viewDataset() *goqu.SelectDataset {
	return a.db.Select(
		goqu.I("ag.idAgenda"),
		goqu.I("cl.nome").As("cliente"),
		goqu.I("fu.nome").As("dentista"),
		goqu.I("ag.data"),
		goqu.I("ag.hora"),
		goqu.I("ta.nome").As("tipo"),
		goqu.I("ag.concluida").As("status"),
	).From(goqu.T("Agenda").As("ag")).
		InnerJoin(goqu.T("Funcionario").As("fu"), goqu.On(goqu.Ex{"ag.idFuncionario": goqu.I("fu.idFuncionario")})).
		InnerJoin(goqu.T("Cliente").As("cl"), goqu.On(goqu.Ex{"ag.idCliente": goqu.I("cl.idCliente")})).
		InnerJoin(goqu.T("TipoAgenda").As("ta"), goqu.On(goqu.Ex{"ag.idTipo": goqu.I("ta.idTipo")}))
}

func scanScheduleView(row Scanner) (*entities.ScheduleView, error) {
	var v entities.ScheduleView
	var day time.Time
	if err := row.Scan(&v.ID, &v.Cliente, &v.Dentista, &day, &v.Hora, &v.Tipo, &v.Status); err != nil {
		return nil, err
	}
	v.Data = isoDate(day)
	return &v, nil
}

func collectScheduleViews(rows *sql.Rows) ([]*entities.ScheduleView, error) {
	var out []*entities.ScheduleView
	for rows.Next() {
		v, err := scanScheduleView(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan schedule row", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read schedule rows", err)
	}
	return out, nil
}

// ListView fetches one page of joined appointments ordered by date and time
func (a *ScheduleAdapter) ListView(ctx context.Context, page int) ([]*entities.ScheduleView, error) {
	if page < 1 {
		page = 1
	}

	query, args, err := a.viewDataset().
		Order(goqu.I("ag.data").Asc(), goqu.I("ag.hora").Asc()).
		Limit(pageSize).
		Offset(uint((page-1)*pageSize)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build schedule list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list schedules", err)
	}
	defer rows.Close()

	return collectScheduleViews(rows)
}

// SearchView matches appointments whose client name contains text,
// case-insensitively, ordered by that name
func (a *ScheduleAdapter) SearchView(ctx context.Context, text string) ([]*entities.ScheduleView, error) {
	query, args, err := a.viewDataset().
		Where(goqu.I("cl.nome").ILike("%" + text + "%")).
		Order(goqu.I("cl.nome").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build schedule search query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to search schedules", err)
	}
	defer rows.Close()

	return collectScheduleViews(rows)
}

// SetCompleted updates only the completion flag of one appointment
func (a *ScheduleAdapter) SetCompleted(ctx context.Context, id int64, done bool) error {
	query, args, err := a.db.Update("Agenda").
		Prepared(true).
		Set(goqu.Record{"concluida": done}).
		Where(goqu.Ex{"idAgenda": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build completion query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update schedule completion", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("schedule with id %d not found", id))
	}

	return nil
}

// ScheduleTypeAdapter reads the TipoAgenda lookup table
type ScheduleTypeAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewScheduleTypeAdapter creates a new appointment-type adapter
func NewScheduleTypeAdapter(client *postgres.Client) repositories.ScheduleTypeRepository {
	return &ScheduleTypeAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// ListTypes fetches the full lookup table, no pagination or filtering
func (a *ScheduleTypeAdapter) ListTypes(ctx context.Context) ([]*entities.ScheduleType, error) {
	query, args, err := a.db.Select("idTipo", "nome").
		From("TipoAgenda").
		Order(goqu.C("idTipo").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build type query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list schedule types", err)
	}
	defer rows.Close()

	var out []*entities.ScheduleType
	for rows.Next() {
		var t entities.ScheduleType
		if err := rows.Scan(&t.ID, &t.Nome); err != nil {
			return nil, apperrors.NewInternalError("failed to scan schedule type", err)
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read schedule types", err)
	}

	return out, nil
}

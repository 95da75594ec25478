package services

import (
	"context"
	"fmt"

	"github.com/sorrisolabs/odonto-backend/internal/application/validation"
	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	"github.com/sorrisolabs/odonto-backend/pkg/format"
)

// ScheduleService is the scheduling engine: the uniform contract over
// appointments plus the joined reads, the appointment-type lookup and the
// completion transition.
type ScheduleService struct {
	repo  repositories.ScheduleRepository
	types repositories.ScheduleTypeRepository
}

// NewScheduleService creates the schedule service
func NewScheduleService(repo repositories.ScheduleRepository, types repositories.ScheduleTypeRepository) *ScheduleService {
	return &ScheduleService{
		repo:  repo,
		types: types,
	}
}

func validateSchedule(s *entities.Schedule) error {
	return validation.Required(map[string]any{
		"idCliente":     s.ClienteID,
		"idFuncionario": s.DentistaID,
		"idTipo":        s.TipoID,
		"data":          s.Data,
		"hora":          s.Hora,
		"concluida":     s.Concluida,
	})
}

// scheduleRow merges date and time into the single display column used by
// the front-end table
func scheduleRow(v *entities.ScheduleView) any {
	return entities.ScheduleRow{
		ID:       v.ID,
		Cliente:  v.Cliente,
		Dentista: v.Dentista,
		Data:     fmt.Sprintf("%s - %s", format.BRDate(v.Data), v.Hora),
		Tipo:     v.Tipo,
		Status:   v.Status,
	}
}

func mapScheduleRows(rows []*entities.ScheduleView) []any {
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduleRow(row))
	}
	return out
}

// List fetches one page of joined appointments; formatted selects the table
// view with the combined date-time column
func (s *ScheduleService) List(ctx context.Context, page int, formatted bool) (*ListResult, error) {
	if page < 1 {
		page = 1
	}

	rows, err := s.repo.ListView(ctx, page)
	if err != nil {
		return nil, err
	}

	values := any(rows)
	if formatted {
		values = mapScheduleRows(rows)
	} else if rows == nil {
		values = []*entities.ScheduleView{}
	}

	return &ListResult{Values: values, Meta: Meta{Page: page}}, nil
}

// Create validates required fields (an explicit false completion flag is
// valid) and inserts the appointment
func (s *ScheduleService) Create(ctx context.Context, schedule *entities.Schedule) (int64, error) {
	if err := validateSchedule(schedule); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, schedule)
}

// Get retrieves one appointment in its storage form
func (s *ScheduleService) Get(ctx context.Context, id int64) (*entities.Schedule, error) {
	if err := validation.RequiredID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Update validates and replaces all appointment fields
func (s *ScheduleService) Update(ctx context.Context, id int64, schedule *entities.Schedule) error {
	if err := validation.RequiredID(id); err != nil {
		return err
	}
	if err := validateSchedule(schedule); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, schedule)
}

// Remove deletes one appointment
func (s *ScheduleService) Remove(ctx context.Context, id int64) error {
	if err := validation.RequiredID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Search matches appointments by client-name substring, shaped like the
// formatted list
func (s *ScheduleService) Search(ctx context.Context, text string) ([]any, error) {
	if err := validation.RequiredText(text); err != nil {
		return nil, err
	}

	rows, err := s.repo.SearchView(ctx, text)
	if err != nil {
		return nil, err
	}

	return mapScheduleRows(rows), nil
}

// Complete transitions the completion flag of one appointment. The flag must
// be present; false is a valid value and reopens the appointment.
func (s *ScheduleService) Complete(ctx context.Context, id int64, concluida *bool) error {
	if err := validation.RequiredID(id); err != nil {
		return err
	}
	if err := validation.Required(map[string]any{"concluida": concluida}); err != nil {
		return err
	}
	return s.repo.SetCompleted(ctx, id, *concluida)
}

// Types fetches the closed appointment-type lookup table
func (s *ScheduleService) Types(ctx context.Context) ([]*entities.ScheduleType, error) {
	types, err := s.types.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []*entities.ScheduleType{}
	}
	return types, nil
}

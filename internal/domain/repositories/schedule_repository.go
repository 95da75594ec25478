package repositories

import (
	"context"

	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
)

// ScheduleRepository is the uniform contract over appointments with two
// deviations: reads resolve client, dentist and type names through joins, and
// the completion flag has its own narrow update.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entities.Schedule) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Schedule, error)
	Update(ctx context.Context, id int64, schedule *entities.Schedule) error
	Delete(ctx context.Context, id int64) error

	// ListView and SearchView return the joined projection; SearchView
	// matches on the client name.
	ListView(ctx context.Context, page int) ([]*entities.ScheduleView, error)
	SearchView(ctx context.Context, text string) ([]*entities.ScheduleView, error)

	// SetCompleted updates only the completion flag
	SetCompleted(ctx context.Context, id int64, done bool) error
}

// ScheduleTypeRepository reads the closed appointment-type lookup table
type ScheduleTypeRepository interface {
	ListTypes(ctx context.Context) ([]*entities.ScheduleType, error)
}

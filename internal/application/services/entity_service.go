package services

import (
	"context"

	"github.com/sorrisolabs/odonto-backend/internal/application/validation"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
)

// Meta carries list metadata
type Meta struct {
	Page int `json:"page"`
}

// ListResult is the canonical list response shape
type ListResult struct {
	Values any  `json:"values"`
	Meta   Meta `json:"meta"`
}

// EntityService is the uniform validate-then-persist surface shared by the
// clinic entities: required fields are checked before any store call, and
// list/search reads optionally re-shape rows into the display ("table") view.
type EntityService[T any] struct {
	repo     repositories.Crud[T]
	validate func(*T) error
	tableRow func(*T) any
}

// NewEntityService creates a service over one repository with the entity's
// required-field check and table-view mapper
func NewEntityService[T any](repo repositories.Crud[T], validate func(*T) error, tableRow func(*T) any) *EntityService[T] {
	return &EntityService[T]{
		repo:     repo,
		validate: validate,
		tableRow: tableRow,
	}
}

// List fetches one page of rows; formatted selects the table view
func (s *EntityService[T]) List(ctx context.Context, page int, formatted bool) (*ListResult, error) {
	if page < 1 {
		page = 1
	}

	rows, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}

	values := any(rows)
	if formatted {
		values = s.mapRows(rows)
	} else if rows == nil {
		values = []*T{}
	}

	return &ListResult{Values: values, Meta: Meta{Page: page}}, nil
}

// Create validates required fields and inserts a new row, returning the
// generated identifier
func (s *EntityService[T]) Create(ctx context.Context, entity *T) (int64, error) {
	if err := s.validate(entity); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, entity)
}

// Get retrieves a single row by identifier
func (s *EntityService[T]) Get(ctx context.Context, id int64) (*T, error) {
	if err := validation.RequiredID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Update validates the identifier plus all required fields and replaces the
// row
func (s *EntityService[T]) Update(ctx context.Context, id int64, entity *T) error {
	if err := validation.RequiredID(id); err != nil {
		return err
	}
	if err := s.validate(entity); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, entity)
}

// Remove deletes a single row by identifier
func (s *EntityService[T]) Remove(ctx context.Context, id int64) error {
	if err := validation.RequiredID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Search matches rows by display-column substring; results use the table view
func (s *EntityService[T]) Search(ctx context.Context, text string) ([]any, error) {
	if err := validation.RequiredText(text); err != nil {
		return nil, err
	}

	rows, err := s.repo.Search(ctx, text)
	if err != nil {
		return nil, err
	}

	return s.mapRows(rows), nil
}

func (s *EntityService[T]) mapRows(rows []*T) []any {
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.tableRow(row))
	}
	return out
}

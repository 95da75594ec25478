package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/sorrisolabs/odonto-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/sorrisolabs/odonto-backend/pkg/errors"
)

// pageSize is the fixed page length of list reads
const pageSize = 10

// Scanner abstracts *sql.Row and *sql.Rows for the per-table scan functions
type Scanner interface {
	Scan(dest ...any) error
}

// TableSpec describes one entity table: identity, ordering and search
// columns, the full column list in scan order, and the functions mapping an
// entity to an insert/update record and a row back to an entity. One
// CrudAdapter instantiation per spec replaces six hand-copied repositories.
type TableSpec[T any] struct {
	Name         string
	Table        string
	IDColumn     string
	SearchColumn string
	OrderColumn  string
	Columns      []any
	Record       func(e *T) goqu.Record
	ScanRow      func(row Scanner) (*T, error)
}

// CrudAdapter is the generic goqu-backed implementation of repositories.Crud
type CrudAdapter[T any] struct {
	client *postgres.Client
	db     *goqu.Database
	spec   TableSpec[T]
}

// NewCrudAdapter creates a generic adapter for the given table spec
func NewCrudAdapter[T any](client *postgres.Client, spec TableSpec[T]) *CrudAdapter[T] {
	return &CrudAdapter[T]{
		client: client,
		db:     goqu.New("postgres", client.DB()),
		spec:   spec,
	}
}

// List fetches one page of rows, ordered by the table's natural key
func (a *CrudAdapter[T]) List(ctx context.Context, page int) ([]*T, error) {
	if page < 1 {
		page = 1
	}

	ds := a.db.Select(a.spec.Columns...).From(a.spec.Table)
	if a.spec.OrderColumn != "" {
		ds = ds.Order(goqu.C(a.spec.OrderColumn).Asc())
	}
	ds = ds.Limit(pageSize).Offset(uint((page - 1) * pageSize))

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to list %s rows", a.spec.Name), err)
	}
	defer rows.Close()

	return a.collect(rows)
}

// Create inserts a new row and returns the store-generated identifier
func (a *CrudAdapter[T]) Create(ctx context.Context, entity *T) (int64, error) {
	query, args, err := a.db.Insert(a.spec.Table).
		Prepared(true).
		Rows(a.spec.Record(entity)).
		Returning(goqu.C(a.spec.IDColumn)).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build insert query", err)
	}

	var id int64
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.NewInternalError(fmt.Sprintf("insert reported no %s row created", a.spec.Name), nil)
	}
	if err != nil {
		return 0, apperrors.NewInternalError(fmt.Sprintf("failed to create %s", a.spec.Name), err)
	}

	return id, nil
}

// GetByID retrieves a single row by primary key
func (a *CrudAdapter[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query, args, err := a.db.Select(a.spec.Columns...).
		From(a.spec.Table).
		Where(goqu.Ex{a.spec.IDColumn: id}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	entity, err := a.spec.ScanRow(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s with id %d not found", a.spec.Name, id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to get %s", a.spec.Name), err)
	}

	return entity, nil
}

// Update replaces all business columns of the row with the given primary key
func (a *CrudAdapter[T]) Update(ctx context.Context, id int64, entity *T) error {
	query, args, err := a.db.Update(a.spec.Table).
		Prepared(true).
		Set(a.spec.Record(entity)).
		Where(goqu.Ex{a.spec.IDColumn: id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	return a.execTargeted(ctx, query, args, id)
}

// Delete removes the row with the given primary key
func (a *CrudAdapter[T]) Delete(ctx context.Context, id int64) error {
	query, args, err := a.db.Delete(a.spec.Table).
		Prepared(true).
		Where(goqu.Ex{a.spec.IDColumn: id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	return a.execTargeted(ctx, query, args, id)
}

// Search matches rows whose display column contains text, case-insensitively,
// ordered ascending by that column
func (a *CrudAdapter[T]) Search(ctx context.Context, text string) ([]*T, error) {
	query, args, err := a.db.Select(a.spec.Columns...).
		From(a.spec.Table).
		Where(goqu.C(a.spec.SearchColumn).ILike("%" + text + "%")).
		Order(goqu.C(a.spec.SearchColumn).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build search query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to search %s rows", a.spec.Name), err)
	}
	defer rows.Close()

	return a.collect(rows)
}

// execTargeted runs a single-row mutation, mapping zero affected rows to
// not-found
func (a *CrudAdapter[T]) execTargeted(ctx context.Context, query string, args []any, id int64) error {
	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to update %s", a.spec.Name), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s with id %d not found", a.spec.Name, id))
	}

	return nil
}

func (a *CrudAdapter[T]) collect(rows *sql.Rows) ([]*T, error) {
	var out []*T
	for rows.Next() {
		entity, err := a.spec.ScanRow(rows)
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to scan %s row", a.spec.Name), err)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to read %s rows", a.spec.Name), err)
	}
	return out, nil
}

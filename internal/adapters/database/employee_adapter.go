package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	"github.com/sorrisolabs/odonto-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/sorrisolabs/odonto-backend/pkg/errors"
)

// EmployeeAdapter implements the EmployeeRepository interface. The generic
// CRUD surface comes from the shared adapter; the credential lookups and the
// dentist listing are its own.
type EmployeeAdapter struct {
	*CrudAdapter[entities.Employee]
}

// NewEmployeeAdapter creates a new employee adapter
func NewEmployeeAdapter(client *postgres.Client) repositories.EmployeeRepository {
	return &EmployeeAdapter{
		CrudAdapter: NewCrudAdapter(client, employeeSpec()),
	}
}

// ListDentists fetches all employees for the scheduling UI, without
// credentials and without pagination
func (a *EmployeeAdapter) ListDentists(ctx context.Context) ([]*entities.Employee, error) {
	query, args, err := a.db.Select(employeeColumns...).
		From("Funcionario").
		Order(goqu.C("nome").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build dentist query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list dentists", err)
	}
	defer rows.Close()

	return a.collect(rows)
}

// GetByLogin retrieves an employee by CPF, the login identity
func (a *EmployeeAdapter) GetByLogin(ctx context.Context, cpf string) (*entities.Employee, error) {
	query, args, err := a.db.Select(employeeColumns...).
		From("Funcionario").
		Where(goqu.Ex{"cpf": cpf}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build login query", err)
	}

	employee, err := scanEmployee(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("employee with login %s not found", cpf))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get employee by login", err)
	}

	return employee, nil
}

// GetCredential fetches the stored credential hash for a login
func (a *EmployeeAdapter) GetCredential(ctx context.Context, cpf string) (string, error) {
	query, args, err := a.db.Select("senha").
		From("Funcionario").
		Where(goqu.Ex{"cpf": cpf}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return "", apperrors.NewInternalError("failed to build credential query", err)
	}

	var hash string
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.NewNotFoundError(fmt.Sprintf("employee with login %s not found", cpf))
	}
	if err != nil {
		return "", apperrors.NewInternalError("failed to get credential", err)
	}

	return hash, nil
}

// SetCredential stores a new credential hash for one employee
func (a *EmployeeAdapter) SetCredential(ctx context.Context, id int64, hash string) error {
	query, args, err := a.db.Update("Funcionario").
		Prepared(true).
		Set(goqu.Record{"senha": hash}).
		Where(goqu.Ex{"idFuncionario": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build credential update", err)
	}

	return a.execTargeted(ctx, query, args, id)
}

package services

import (
	"context"

	"github.com/sorrisolabs/odonto-backend/internal/application/validation"
	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	apperrors "github.com/sorrisolabs/odonto-backend/pkg/errors"
	"github.com/sorrisolabs/odonto-backend/pkg/format"
)

// EmployeeService extends the uniform contract: credentials are hashed before
// they reach the store, a fresh registration is answered with a session
// token, and the dentist listing feeds the scheduling UI.
type EmployeeService struct {
	*EntityService[entities.Employee]
	repo   repositories.EmployeeRepository
	tokens TokenIssuer
}

// NewEmployeeService creates the employee service
func NewEmployeeService(repo repositories.EmployeeRepository, tokens TokenIssuer) *EmployeeService {
	return &EmployeeService{
		EntityService: NewEntityService[entities.Employee](repo, validateEmployee, employeeRow),
		repo:          repo,
		tokens:        tokens,
	}
}

func validateEmployee(e *entities.Employee) error {
	return validation.Required(map[string]any{
		"nome":           e.Nome,
		"cpf":            e.CPF,
		"dataNascimento": e.DataNascimento,
		"sexo":           e.Sexo,
		"senha":          e.Senha,
	})
}

func employeeRow(e *entities.Employee) any {
	return entities.EmployeeRow{
		ID:             e.ID,
		Nome:           e.Nome,
		CPF:            e.CPF,
		DataNascimento: format.BRDate(e.DataNascimento),
		Sexo:           e.Sexo,
	}
}

// Create validates, hashes the credential, inserts the employee and issues a
// session token so the fresh registration is logged straight in
func (s *EmployeeService) Create(ctx context.Context, employee *entities.Employee) (int64, string, error) {
	if err := validateEmployee(employee); err != nil {
		return 0, "", err
	}

	hash, err := hashPassword(employee.Senha)
	if err != nil {
		return 0, "", err
	}
	employee.Senha = hash

	id, err := s.repo.Create(ctx, employee)
	if err != nil {
		return 0, "", err
	}

	token, err := s.tokens.Issue(id)
	if err != nil {
		return 0, "", err
	}

	return id, token, nil
}

// Update validates and replaces all employee fields, re-hashing the supplied
// credential
func (s *EmployeeService) Update(ctx context.Context, id int64, employee *entities.Employee) error {
	if err := validation.RequiredID(id); err != nil {
		return err
	}
	if err := validateEmployee(employee); err != nil {
		return err
	}

	hash, err := hashPassword(employee.Senha)
	if err != nil {
		return err
	}
	employee.Senha = hash

	return s.repo.Update(ctx, id, employee)
}

// Dentists lists all employees for the scheduling UI
func (s *EmployeeService) Dentists(ctx context.Context) ([]any, error) {
	rows, err := s.repo.ListDentists(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapRows(rows), nil
}

// ChangePassword rotates an employee credential after verifying the current
// one
func (s *EmployeeService) ChangePassword(ctx context.Context, id int64, change *entities.PasswordChange) error {
	if err := validation.RequiredID(id); err != nil {
		return err
	}
	if err := validation.Required(map[string]any{
		"senhaAtual": change.SenhaAtual,
		"novaSenha":  change.NovaSenha,
	}); err != nil {
		return err
	}

	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := s.repo.GetCredential(ctx, employee.CPF)
	if err != nil {
		return err
	}
	if !checkPassword(hash, change.SenhaAtual) {
		return apperrors.NewUnauthorizedError("invalid password")
	}

	newHash, err := hashPassword(change.NovaSenha)
	if err != nil {
		return err
	}

	return s.repo.SetCredential(ctx, id, newHash)
}

package repositories

import (
	"context"

	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
)

// EmployeeRepository extends the uniform contract with the authentication
// lookups and the dentist listing. Reads never return the stored credential;
// GetCredential is the only way to reach the hash.
type EmployeeRepository interface {
	Crud[entities.Employee]

	ListDentists(ctx context.Context) ([]*entities.Employee, error)
	GetByLogin(ctx context.Context, cpf string) (*entities.Employee, error)
	GetCredential(ctx context.Context, cpf string) (string, error)
	SetCredential(ctx context.Context, id int64, hash string) error
}

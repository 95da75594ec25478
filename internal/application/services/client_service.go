package services

import (
	"github.com/sorrisolabs/odonto-backend/internal/application/validation"
	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	"github.com/sorrisolabs/odonto-backend/pkg/format"
)

// NewClientService creates the client CRUD service
func NewClientService(repo repositories.Crud[entities.Client]) *EntityService[entities.Client] {
	return NewEntityService(repo, validateClient, clientRow)
}

func validateClient(c *entities.Client) error {
	return validation.Required(map[string]any{
		"nome":           c.Nome,
		"cpf":            c.CPF,
		"dataNascimento": c.DataNascimento,
		"sexo":           c.Sexo,
	})
}

func clientRow(c *entities.Client) any {
	return entities.ClientRow{
		ID:             c.ID,
		Nome:           c.Nome,
		CPF:            c.CPF,
		DataNascimento: format.BRDate(c.DataNascimento),
		Sexo:           c.Sexo,
	}
}

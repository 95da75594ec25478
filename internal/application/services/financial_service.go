package services

import (
	"github.com/sorrisolabs/odonto-backend/internal/application/validation"
	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	"github.com/sorrisolabs/odonto-backend/pkg/format"
)

// NewFinancialService creates the financial transaction service
func NewFinancialService(repo repositories.Crud[entities.Transaction]) *EntityService[entities.Transaction] {
	return NewEntityService(repo, validateTransaction, transactionRow)
}

// tipo is a free category label and may be blank, so it is not part of the
// required set
func validateTransaction(t *entities.Transaction) error {
	return validation.Required(map[string]any{
		"data":      t.Data,
		"descricao": t.Descricao,
		"situacao":  t.Situacao,
		"valor":     t.Valor,
		"devedor":   t.Devedor,
	})
}

func transactionRow(t *entities.Transaction) any {
	return entities.TransactionRow{
		ID:        t.ID,
		Contato:   t.Devedor,
		Data:      format.BRDate(t.Data),
		Tipo:      t.Tipo,
		Descricao: t.Descricao,
		Situacao:  t.Settled(),
		Valor:     format.BRMoney(t.Valor),
	}
}

package services

import (
	"github.com/sorrisolabs/odonto-backend/internal/application/validation"
	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	"github.com/sorrisolabs/odonto-backend/pkg/format"
)

// NewEquipmentService creates the equipment inventory service
func NewEquipmentService(repo repositories.Crud[entities.Equipment]) *EntityService[entities.Equipment] {
	return NewEntityService(repo, validateEquipment, equipmentRow)
}

func validateEquipment(e *entities.Equipment) error {
	return validation.Required(map[string]any{
		"nome":     e.Nome,
		"unidades": e.Unidades,
	})
}

func equipmentRow(e *entities.Equipment) any {
	return entities.EquipmentRow{
		ID:       e.ID,
		Nome:     e.Nome,
		Unidades: e.Unidades,
	}
}

// NewMedicineService creates the medicine inventory service
func NewMedicineService(repo repositories.Crud[entities.Medicine]) *EntityService[entities.Medicine] {
	return NewEntityService(repo, validateMedicine, medicineRow)
}

func validateMedicine(m *entities.Medicine) error {
	return validation.Required(map[string]any{
		"nome":     m.Nome,
		"unidades": m.Unidades,
		"valor":    m.Valor,
	})
}

func medicineRow(m *entities.Medicine) any {
	return entities.MedicineRow{
		ID:       m.ID,
		Nome:     m.Nome,
		Unidades: m.Unidades,
		Valor:    format.BRMoney(m.Valor),
	}
}

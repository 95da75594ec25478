package database

import (
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	"github.com/sorrisolabs/odonto-backend/internal/infrastructure/clients/postgres"
	"github.com/sorrisolabs/odonto-backend/pkg/format"
)

// isoDate normalizes a scanned DATE column to the storage string form
func isoDate(t time.Time) string {
	return t.Format(format.ISODate)
}

// NewClientAdapter creates the Cliente repository
func NewClientAdapter(client *postgres.Client) repositories.Crud[entities.Client] {
	return NewCrudAdapter(client, TableSpec[entities.Client]{
		Name:         "client",
		Table:        "Cliente",
		IDColumn:     "idCliente",
		SearchColumn: "nome",
		OrderColumn:  "nome",
		Columns:      []any{"idCliente", "nome", "cpf", "dataNascimento", "sexo"},
		Record: func(c *entities.Client) goqu.Record {
			return goqu.Record{
				"nome":           c.Nome,
				"cpf":            c.CPF,
				"dataNascimento": c.DataNascimento,
				"sexo":           c.Sexo,
			}
		},
		ScanRow: func(row Scanner) (*entities.Client, error) {
			var c entities.Client
			var born time.Time
			if err := row.Scan(&c.ID, &c.Nome, &c.CPF, &born, &c.Sexo); err != nil {
				return nil, err
			}
			c.DataNascimento = isoDate(born)
			return &c, nil
		},
	})
}

// NewEquipmentAdapter creates the Equipamentos repository
func NewEquipmentAdapter(client *postgres.Client) repositories.Crud[entities.Equipment] {
	return NewCrudAdapter(client, TableSpec[entities.Equipment]{
		Name:         "equipment",
		Table:        "Equipamentos",
		IDColumn:     "idEquipamento",
		SearchColumn: "nome",
		OrderColumn:  "nome",
		Columns:      []any{"idEquipamento", "nome", "unidades"},
		Record: func(e *entities.Equipment) goqu.Record {
			return goqu.Record{
				"nome":     e.Nome,
				"unidades": e.Unidades,
			}
		},
		ScanRow: func(row Scanner) (*entities.Equipment, error) {
			var e entities.Equipment
			if err := row.Scan(&e.ID, &e.Nome, &e.Unidades); err != nil {
				return nil, err
			}
			return &e, nil
		},
	})
}

// NewMedicineAdapter creates the Medicamentos repository
func NewMedicineAdapter(client *postgres.Client) repositories.Crud[entities.Medicine] {
	return NewCrudAdapter(client, TableSpec[entities.Medicine]{
		Name:         "medicine",
		Table:        "Medicamentos",
		IDColumn:     "idMedicamento",
		SearchColumn: "nome",
		OrderColumn:  "nome",
		Columns:      []any{"idMedicamento", "nome", "unidades", "valor"},
		Record: func(m *entities.Medicine) goqu.Record {
			return goqu.Record{
				"nome":     m.Nome,
				"unidades": m.Unidades,
				"valor":    m.Valor,
			}
		},
		ScanRow: func(row Scanner) (*entities.Medicine, error) {
			var m entities.Medicine
			if err := row.Scan(&m.ID, &m.Nome, &m.Unidades, &m.Valor); err != nil {
				return nil, err
			}
			return &m, nil
		},
	})
}

// NewFinancialAdapter creates the Financeiro repository. Lists are ordered by
// transaction date; search matches the counterparty (devedor).
func NewFinancialAdapter(client *postgres.Client) repositories.Crud[entities.Transaction] {
	return NewCrudAdapter(client, TableSpec[entities.Transaction]{
		Name:         "transaction",
		Table:        "Financeiro",
		IDColumn:     "idTransacao",
		SearchColumn: "devedor",
		OrderColumn:  "data",
		Columns:      []any{"idTransacao", "data", "descricao", "tipo", "situacao", "valor", "devedor"},
		Record: func(t *entities.Transaction) goqu.Record {
			return goqu.Record{
				"data":      t.Data,
				"descricao": t.Descricao,
				"tipo":      t.Tipo,
				"situacao":  t.Settled(),
				"valor":     t.Valor,
				"devedor":   t.Devedor,
			}
		},
		ScanRow: scanTransaction,
	})
}

// tipo is nullable in the store; rows migrated from older data omit it
func scanTransaction(row Scanner) (*entities.Transaction, error) {
	var t entities.Transaction
	var day time.Time
	var settled bool
	var tipo sql.NullString
	if err := row.Scan(&t.ID, &day, &t.Descricao, &tipo, &settled, &t.Valor, &t.Devedor); err != nil {
		return nil, err
	}
	t.Data = isoDate(day)
	t.Tipo = tipo.String
	t.Situacao = &settled
	return &t, nil
}

// employeeColumns never includes the stored credential
var employeeColumns = []any{"idFuncionario", "nome", "cpf", "dataNascimento", "sexo"}

func employeeSpec() TableSpec[entities.Employee] {
	return TableSpec[entities.Employee]{
		Name:         "employee",
		Table:        "Funcionario",
		IDColumn:     "idFuncionario",
		SearchColumn: "nome",
		OrderColumn:  "nome",
		Columns:      employeeColumns,
		Record: func(e *entities.Employee) goqu.Record {
			return goqu.Record{
				"nome":           e.Nome,
				"cpf":            e.CPF,
				"dataNascimento": e.DataNascimento,
				"sexo":           e.Sexo,
				"senha":          e.Senha,
			}
		},
		ScanRow: scanEmployee,
	}
}

func scanEmployee(row Scanner) (*entities.Employee, error) {
	var e entities.Employee
	var born time.Time
	if err := row.Scan(&e.ID, &e.Nome, &e.CPF, &born, &e.Sexo); err != nil {
		return nil, err
	}
	e.DataNascimento = isoDate(born)
	return &e, nil
}

func scheduleSpec() TableSpec[entities.Schedule] {
	return TableSpec[entities.Schedule]{
		Name:        "schedule",
		Table:       "Agenda",
		IDColumn:    "idAgenda",
		OrderColumn: "data",
		Columns:     []any{"idAgenda", "idCliente", "idFuncionario", "idTipo", "data", "hora", "concluida"},
		Record: func(s *entities.Schedule) goqu.Record {
			return goqu.Record{
				"idCliente":     s.ClienteID,
				"idFuncionario": s.DentistaID,
				"idTipo":        s.TipoID,
				"data":          s.Data,
				"hora":          s.Hora,
				"concluida":     s.Done(),
			}
		},
		ScanRow: func(row Scanner) (*entities.Schedule, error) {
			var s entities.Schedule
			var day time.Time
			var done bool
			if err := row.Scan(&s.ID, &s.ClienteID, &s.DentistaID, &s.TipoID, &day, &s.Hora, &done); err != nil {
				return nil, err
			}
			s.Data = isoDate(day)
			s.Concluida = &done
			return &s, nil
		},
	}
}

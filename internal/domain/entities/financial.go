package entities

// Transaction is a financial movement of the clinic. Situacao marks it as
// settled; it is a pointer so an explicit false survives validation. Devedor
// is the counterparty name and the search/display key.
type Transaction struct {
	ID        int64   `json:"idTransacao"`
	Data      string  `json:"data"`
	Descricao string  `json:"descricao"`
	Tipo      string  `json:"tipo"`
	Situacao  *bool   `json:"situacao"`
	Valor     float64 `json:"valor"`
	Devedor   string  `json:"devedor"`
}

// Settled reports the settled flag, treating an unset pointer as false
func (t *Transaction) Settled() bool {
	return t.Situacao != nil && *t.Situacao
}

// TransactionRow is the display ("table") projection of a Transaction:
// date in DD/MM/YYYY form, amount currency-prefixed.
type TransactionRow struct {
	ID        int64  `json:"id"`
	Contato   string `json:"contato"`
	Data      string `json:"data"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao"`
	Situacao  bool   `json:"situacao"`
	Valor     string `json:"valor"`
}

package entities

// Client is a patient of the clinic. CPF is unique per person and doubles
// as the natural lookup key on the front end.
type Client struct {
	ID             int64  `json:"idCliente"`
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"dataNascimento"`
	Sexo           string `json:"sexo"`
}

// ClientRow is the display ("table") projection of a Client
type ClientRow struct {
	ID             int64  `json:"id"`
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"dataNascimento"`
	Sexo           string `json:"sexo"`
}

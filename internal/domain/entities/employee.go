package entities

// Employee is a clinic staff member. CPF is the login identity. Senha carries
// the plaintext credential only on inbound payloads; reads never select the
// stored hash, so the field is empty (and omitted) on every response.
type Employee struct {
	ID             int64  `json:"idFuncionario"`
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"dataNascimento"`
	Sexo           string `json:"sexo"`
	Senha          string `json:"senha,omitempty"`
}

// EmployeeRow is the display ("table") projection of an Employee
type EmployeeRow struct {
	ID             int64  `json:"id"`
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"dataNascimento"`
	Sexo           string `json:"sexo"`
}

// PasswordChange is the payload for rotating an employee credential
type PasswordChange struct {
	SenhaAtual string `json:"senhaAtual"`
	NovaSenha  string `json:"novaSenha"`
}

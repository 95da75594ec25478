package entities

// Schedule is an appointment linking a client, an employee (dentist) and an
// appointment type. Concluida is a pointer so that handlers can distinguish
// an absent flag from an explicit false.
type Schedule struct {
	ID         int64  `json:"idAgenda"`
	ClienteID  int64  `json:"idCliente"`
	DentistaID int64  `json:"idFuncionario"`
	TipoID     int64  `json:"idTipo"`
	Data       string `json:"data"`
	Hora       string `json:"hora"`
	Concluida  *bool  `json:"concluida"`
}

// Done reports the completion flag, treating an unset pointer as false
func (s *Schedule) Done() bool {
	return s.Concluida != nil && *s.Concluida
}

// ScheduleType is a row of the closed appointment-type lookup table
type ScheduleType struct {
	ID   int64  `json:"idTipo"`
	Nome string `json:"nome"`
}

// ScheduleView is the joined read of an appointment, with client, dentist
// and type names resolved
type ScheduleView struct {
	ID       int64  `json:"idAgenda"`
	Cliente  string `json:"cliente"`
	Dentista string `json:"dentista"`
	Data     string `json:"data"`
	Hora     string `json:"hora"`
	Tipo     string `json:"tipo"`
	Status   bool   `json:"status"`
}

// ScheduleRow is the display ("table") projection of a ScheduleView;
// Data carries the combined "DD/MM/YYYY - HH:MM" form.
type ScheduleRow struct {
	ID       int64  `json:"id"`
	Cliente  string `json:"cliente"`
	Dentista string `json:"dentista"`
	Data     string `json:"data"`
	Tipo     string `json:"tipo"`
	Status   bool   `json:"status"`
}

package entities

// Medicine is a stocked medication with a unit price
type Medicine struct {
	ID       int64   `json:"idMedicamento"`
	Nome     string  `json:"nome"`
	Unidades int64   `json:"unidades"`
	Valor    float64 `json:"valor"`
}

// MedicineRow is the display ("table") projection of a Medicine;
// Valor carries the currency-prefixed form.
type MedicineRow struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Unidades int64  `json:"unidades"`
	Valor    string `json:"valor"`
}

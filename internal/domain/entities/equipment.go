package entities

// Equipment is an inventory item tracked by unit count
type Equipment struct {
	ID       int64  `json:"idEquipamento"`
	Nome     string `json:"nome"`
	Unidades int64  `json:"unidades"`
}

// EquipmentRow is the display ("table") projection of an Equipment
type EquipmentRow struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Unidades int64  `json:"unidades"`
}

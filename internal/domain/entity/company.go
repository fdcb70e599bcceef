package entity

// Company datos del emisor impresos en los documentos (se leen de configuración).
type Company struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
}

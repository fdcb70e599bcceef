package dto

// OrderLineRequest línea capturada por el cliente. Los montos derivados nunca se aceptan de entrada.
// Si ProductID viene informado y Description/UnitPrice/TaxRate están vacíos se toman del catálogo.
type OrderLineRequest struct {
	ProductID   string  `json:"product_id,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    Numeric `json:"quantity"`
	UnitPrice   Numeric `json:"unit_price,omitempty"`
	TaxRate     Numeric `json:"tax_rate,omitempty"`
}

// CreateOrderRequest body para POST /api/orders y POST /api/orders/preview.
type CreateOrderRequest struct {
	Kind    string `json:"kind"`
	Number  string `json:"number,omitempty"` // opcional; vacío = siguiente consecutivo
	Date    string `json:"date,omitempty"`   // YYYY-MM-DD; vacío = hoy
	PartyID string `json:"party_id,omitempty"`

	// Cliente de mostrador: solo se usan si party_id viene vacío.
	PartyName    string             `json:"party_name,omitempty"`
	PartyPhone   string             `json:"party_phone,omitempty"`
	PartyAddress string             `json:"party_address,omitempty"`
	Items        []OrderLineRequest `json:"items"`
}

// OrderLineResponse línea con sus montos derivados (dos decimales).
type OrderLineResponse struct {
	Position     int    `json:"position"`
	ProductID    string `json:"product_id,omitempty"`
	Description  string `json:"description"`
	Quantity     string `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	TaxRate      string `json:"tax_rate"`
	TaxableValue string `json:"taxable_value"`
	TaxAmount    string `json:"tax_amount"`
	LineTotal    string `json:"line_total"`
}

// OrderResponse orden con detalle. En la vista previa Status es DRAFT y Number puede ir vacío.
type OrderResponse struct {
	ID           string              `json:"id,omitempty"`
	Number       string              `json:"number"`
	Kind         string              `json:"kind"`
	Date         string              `json:"date"`
	PartyID      string              `json:"party_id,omitempty"`
	PartyName    string              `json:"party_name,omitempty"`
	PartyPhone   string              `json:"party_phone,omitempty"`
	PartyAddress string              `json:"party_address,omitempty"`
	Status       string              `json:"status"`
	TotalTaxable string              `json:"total_taxable"`
	TotalTax     string              `json:"total_tax"`
	TotalAmount  string              `json:"total_amount"`
	CreatedBy    string              `json:"created_by,omitempty"`
	CreatedAt    string              `json:"created_at,omitempty"`
	Lines        []OrderLineResponse `json:"lines"`
}

// NextNumberResponse respuesta de GET /api/orders/next-number.
type NextNumberResponse struct {
	Kind   string `json:"kind"`
	Number string `json:"number"`
}

// OrderSummary fila del reporte de ventas.
type OrderSummary struct {
	Number       string `json:"number"`
	Kind         string `json:"kind"`
	Date         string `json:"date"`
	PartyName    string `json:"party_name,omitempty"`
	TotalTaxable string `json:"total_taxable"`
	TotalTax     string `json:"total_tax"`
	TotalAmount  string `json:"total_amount"`
}

// SalesReportRequest query de GET /api/reports/sales.
type SalesReportRequest struct {
	From string `query:"from"` // YYYY-MM-DD
	To   string `query:"to"`   // YYYY-MM-DD, inclusivo
	Kind string `query:"kind"`
}

// SalesReportResponse órdenes en el rango con la suma de cada columna.
type SalesReportResponse struct {
	From         string         `json:"from"`
	To           string         `json:"to"`
	Kind         string         `json:"kind,omitempty"`
	Count        int            `json:"count"`
	TotalTaxable string         `json:"total_taxable"`
	TotalTax     string         `json:"total_tax"`
	TotalAmount  string         `json:"total_amount"`
	Orders       []OrderSummary `json:"orders"`
}

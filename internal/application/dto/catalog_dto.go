package dto

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Category     string  `json:"category,omitempty"`
	UnitPrice    Numeric `json:"unit_price"`
	TaxRate      Numeric `json:"tax_rate"`
	ReorderLevel Numeric `json:"reorder_level,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Los campos omitidos conservan su valor;
// SKU no se modifica y la existencia solo cambia con órdenes o ajustes.
type UpdateProductRequest struct {
	Name         *string `json:"name,omitempty"`
	Category     *string `json:"category,omitempty"`
	UnitPrice    Numeric `json:"unit_price,omitempty"`
	TaxRate      Numeric `json:"tax_rate,omitempty"`
	ReorderLevel Numeric `json:"reorder_level,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID           string `json:"id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	UnitPrice    string `json:"unit_price"`
	TaxRate      string `json:"tax_rate"`
	ReorderLevel string `json:"reorder_level"`
}

// CreatePartyRequest body para POST /api/parties.
type CreatePartyRequest struct {
	Kind    string `json:"kind"` // CUSTOMER | SUPPLIER
	Name    string `json:"name"`
	TaxID   string `json:"tax_id,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// PartyResponse cliente o proveedor en respuestas.
type PartyResponse struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PartyListResponse listado paginado de terceros.
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

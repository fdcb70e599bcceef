package dto

// StockAdjustmentRequest body para POST /api/stock/adjustments (delta con signo).
type StockAdjustmentRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  Numeric `json:"quantity"`
	Reason    string  `json:"reason"`
}

// StockLevelResponse existencia resultante de un ajuste.
type StockLevelResponse struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
}

// LowStockItemResponse producto en o bajo su nivel de reorden, con la cantidad sugerida a pedir.
type LowStockItemResponse struct {
	ProductID         string `json:"product_id"`
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	Quantity          string `json:"quantity"`
	ReorderLevel      string `json:"reorder_level"`
	SuggestedOrderQty string `json:"suggested_order_qty"` // reorder_level * 1.5 - quantity
}

// ReconcileResponse comparación entre la existencia y la suma del historial de movimientos.
type ReconcileResponse struct {
	ProductID    string `json:"product_id"`
	Level        string `json:"level"`
	MovementsSum string `json:"movements_sum"`
	Consistent   bool   `json:"consistent"`
}

package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	ClienteID string          `json:"clienteId"`
	Valor     decimal.Decimal `json:"valor"`
	Data      string          `json:"data"`
}

// Validate devuelve la primera restricción violada.
func (r CreateSaleRequest) Validate() error {
	if r.ClienteID == "" {
		return violation("clienteId es requerido")
	}
	if !r.Valor.IsPositive() {
		return violation("valor debe ser un número positivo")
	}
	if r.Data == "" {
		return violation("data es requerida")
	}
	if _, err := ParseDate(r.Data); err != nil {
		return violation("data debe ser una fecha ISO válida")
	}
	return nil
}

// ListSalesQuery parámetros de listado de ventas. El rango solo filtra cuando
// ambos extremos están presentes.
type ListSalesQuery struct {
	ClienteID  string `query:"clienteId"`
	DataInicio string `query:"dataInicio"`
	DataFim    string `query:"dataFim"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}

// SaleCliente cliente embebido en respuestas de venta.
type SaleCliente struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// SaleSummary una venta formateada.
type SaleSummary struct {
	ID      string          `json:"id"`
	Valor   decimal.Decimal `json:"valor"`
	Data    string          `json:"data"`
	Cliente SaleCliente     `json:"cliente"`
}

// SaleCreatedResponse respuesta 201 de creación de venta.
type SaleCreatedResponse struct {
	Message string      `json:"message"`
	Sale    SaleSummary `json:"sale"`
}

// SaleListMeta metadatos del listado de ventas.
type SaleListMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// SaleListResponse respuesta del listado de ventas.
type SaleListResponse struct {
	Sales []SaleSummary `json:"sales"`
	Meta  SaleListMeta  `json:"meta"`
}

package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como números JSON, igual que los persiste el almacén.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP: {error, message}.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

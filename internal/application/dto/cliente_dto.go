package dto

import "github.com/shopspring/decimal"

// CreateClienteRequest entrada para crear un cliente.
type CreateClienteRequest struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
}

// Validate devuelve la primera restricción violada.
func (r CreateClienteRequest) Validate() error {
	if r.FullName == "" {
		return violation("fullName es requerido")
	}
	if len(r.FullName) < 2 || len(r.FullName) > 100 {
		return violation("fullName debe tener entre 2 y 100 caracteres")
	}
	if r.Email == "" {
		return violation("email es requerido")
	}
	if !validEmail(r.Email) {
		return violation("email debe ser una dirección válida")
	}
	if r.BirthDate == "" {
		return violation("birthDate es requerido")
	}
	if _, err := ParseDate(r.BirthDate); err != nil {
		return violation("birthDate debe ser una fecha ISO válida")
	}
	return nil
}

// UpdateClienteRequest actualización parcial: al menos un campo presente.
type UpdateClienteRequest struct {
	FullName  *string `json:"fullName"`
	Email     *string `json:"email"`
	BirthDate *string `json:"birthDate"`
}

// Validate devuelve la primera restricción violada.
func (r UpdateClienteRequest) Validate() error {
	if r.FullName == nil && r.Email == nil && r.BirthDate == nil {
		return violation("al menos un campo es requerido")
	}
	if r.FullName != nil && (len(*r.FullName) < 2 || len(*r.FullName) > 100) {
		return violation("fullName debe tener entre 2 y 100 caracteres")
	}
	if r.Email != nil && !validEmail(*r.Email) {
		return violation("email debe ser una dirección válida")
	}
	if r.BirthDate != nil {
		if _, err := ParseDate(*r.BirthDate); err != nil {
			return violation("birthDate debe ser una fecha ISO válida")
		}
	}
	return nil
}

// ListClientesQuery parámetros de listado de clientes.
type ListClientesQuery struct {
	Name  string `query:"name"`
	Email string `query:"email"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

// ClienteDocument documento de respuesta para uno o más clientes.
// La forma (info/details/duplicated/statistics/meta/redundant) es contrato.
type ClienteDocument struct {
	Data      ClienteData  `json:"data"`
	Meta      DocumentMeta `json:"meta"`
	Redundant Redundant    `json:"redundant"`
}

// ClienteData lista de clientes formateados.
type ClienteData struct {
	Customers []FormattedCliente `json:"customers"`
}

// FormattedCliente un cliente en el documento de respuesta.
type FormattedCliente struct {
	Info       ClienteInfo        `json:"info"`
	Duplicated *DuplicatedCliente `json:"duplicated,omitempty"`
	Statistics ClienteStatistics  `json:"statistics"`
}

// ClienteInfo nombre + detalles anidados.
type ClienteInfo struct {
	FullName string         `json:"fullName"`
	Details  ClienteDetails `json:"details"`
}

// ClienteDetails email y fecha de nacimiento (YYYY-MM-DD).
type ClienteDetails struct {
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
}

// DuplicatedCliente bloque presente solo cuando fullName contiene "Carlos".
type DuplicatedCliente struct {
	FullName string `json:"fullName"`
}

// ClienteStatistics ventas del cliente; lista vacía si no tiene, nunca null.
type ClienteStatistics struct {
	Sales []SaleEntry `json:"sales"`
}

// SaleEntry una venta dentro del documento de cliente.
type SaleEntry struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DocumentMeta paginación del documento.
type DocumentMeta struct {
	TotalRecords int `json:"totalRecords"`
	Page         int `json:"page"`
}

// Redundant bloque fijo del contrato.
type Redundant struct {
	Status string `json:"status"`
}

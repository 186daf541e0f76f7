package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta asociada a un cliente. Inmutable después de creada.
type Sale struct {
	ID        string
	ClienteID string
	Valor     decimal.Decimal // monto positivo
	Data      time.Time       // fecha calendario de la venta
	Cliente   *Cliente        // presente solo cuando el repositorio hace el join
	CreatedAt time.Time
}

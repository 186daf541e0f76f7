package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/toystore-api/internal/application/dto"
	"github.com/jhoicas/toystore-api/internal/application/usecase"
	"github.com/jhoicas/toystore-api/internal/domain"
)

// StatsHandler expone las estadísticas agregadas (protegido).
type StatsHandler struct {
	uc     *usecase.StatsUseCase
	redact bool
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase, redact bool) *StatsHandler {
	return &StatsHandler{uc: uc, redact: redact}
}

// SalesByDay GET /stats/sales-by-day?dataInicio=&dataFim=
func (h *StatsHandler) SalesByDay(c *fiber.Ctx) error {
	var q dto.SalesByDayQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	out, err := h.uc.SalesByDay(c.UserContext(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "VALIDATION", "rango de fechas inválido")
		}
		return internalError(c, h.redact, err)
	}
	return c.JSON(out)
}

// Customers GET /stats/customers
func (h *StatsHandler) Customers(c *fiber.Ctx) error {
	out, err := h.uc.ClienteStats(c.UserContext())
	if err != nil {
		return internalError(c, h.redact, err)
	}
	return c.JSON(out)
}

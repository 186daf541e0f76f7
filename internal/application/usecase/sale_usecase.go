package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/toystore-api/internal/application/dto"
	"github.com/jhoicas/toystore-api/internal/domain"
	"github.com/jhoicas/toystore-api/internal/domain/entity"
	"github.com/jhoicas/toystore-api/internal/domain/repository"
)

// SaleUseCase casos de uso de ventas: creación y listado.
// Las ventas son inmutables después de creadas; no hay update ni delete.
type SaleUseCase struct {
	saleRepo    repository.SaleRepository
	clienteRepo repository.ClienteRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(saleRepo repository.SaleRepository, clienteRepo repository.ClienteRepository) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, clienteRepo: clienteRepo}
}

// Create registra una venta. Devuelve ErrClienteNotFound si el cliente no existe.
func (uc *SaleUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleCreatedResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}
	data, err := dto.ParseDate(in.Data)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ClienteID: cliente.ID,
		Valor:     in.Valor,
		Data:      data,
		CreatedAt: time.Now(),
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return &dto.SaleCreatedResponse{
		Message: "venta creada con éxito",
		Sale: dto.SaleSummary{
			ID:    sale.ID,
			Valor: sale.Valor,
			Data:  sale.Data.Format(dateLayout),
			Cliente: dto.SaleCliente{
				FullName: cliente.FullName,
				Email:    cliente.Email,
			},
		},
	}, nil
}

// List lista ventas con su cliente, paginadas y ordenadas por fecha descendente.
func (uc *SaleUseCase) List(q dto.ListSalesQuery) (*dto.SaleListResponse, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}

	filter := repository.SaleFilter{ClienteID: q.ClienteID}
	// El rango solo filtra cuando ambos extremos están presentes.
	if q.DataInicio != "" && q.DataFim != "" {
		inicio, err := dto.ParseDate(q.DataInicio)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fim, err := dto.ParseDate(q.DataFim)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.DataInicio = &inicio
		filter.DataFim = &fim
	}

	sales, err := uc.saleRepo.List(filter, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := uc.saleRepo.Count(filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SaleSummary, 0, len(sales))
	for _, s := range sales {
		summary := dto.SaleSummary{
			ID:    s.ID,
			Valor: s.Valor,
			Data:  s.Data.Format(dateLayout),
		}
		if s.Cliente != nil {
			summary.Cliente = dto.SaleCliente{
				ID:       s.Cliente.ID,
				FullName: s.Cliente.FullName,
				Email:    s.Cliente.Email,
			}
		}
		out = append(out, summary)
	}
	return &dto.SaleListResponse{
		Sales: out,
		Meta: dto.SaleListMeta{
			Total: total,
			Page:  page,
			Limit: limit,
		},
	}, nil
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/toystore-api/internal/application/dto"
	"github.com/jhoicas/toystore-api/internal/domain"
	"github.com/jhoicas/toystore-api/internal/domain/entity"
	"github.com/jhoicas/toystore-api/internal/domain/repository"
)

// ClienteDeleter puerto transaccional: borra un cliente junto con sus ventas.
type ClienteDeleter interface {
	DeleteCliente(ctx context.Context, clienteID string) error
}

// ClienteUseCase casos de uso CRUD de clientes.
type ClienteUseCase struct {
	repo    repository.ClienteRepository
	deleter ClienteDeleter
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, deleter ClienteDeleter) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, deleter: deleter}
}

// Create crea un cliente nuevo. El payload ya viene validado desde el handler.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteDocument, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	birthDate, err := dto.ParseDate(in.BirthDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		FullName:  in.FullName,
		Email:     in.Email,
		BirthDate: birthDate,
		Vendas:    []entity.Sale{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return BuildClienteDocument([]*entity.Cliente{cliente}, 1, 1), nil
}

// GetByID obtiene un cliente por ID con sus ventas.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteDocument, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}
	return BuildClienteDocument([]*entity.Cliente{cliente}, 1, 1), nil
}

// List lista clientes con filtros substring case-insensitive y paginación.
// meta.totalRecords refleja el total filtrado, no el tamaño de la página.
func (uc *ClienteUseCase) List(q dto.ListClientesQuery) (*dto.ClienteDocument, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	filter := repository.ClienteFilter{Name: q.Name, Email: q.Email}

	clientes, err := uc.repo.List(filter, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	return BuildClienteDocument(clientes, total, page), nil
}

// Update aplica una actualización parcial. Devuelve ErrEmailAlreadyExists si el
// email nuevo pertenece a otro cliente.
func (uc *ClienteUseCase) Update(id string, in dto.UpdateClienteRequest) (*dto.ClienteDocument, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}

	if in.Email != nil && *in.Email != cliente.Email {
		other, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		cliente.Email = *in.Email
	}
	if in.FullName != nil {
		cliente.FullName = *in.FullName
	}
	if in.BirthDate != nil {
		birthDate, err := dto.ParseDate(*in.BirthDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		cliente.BirthDate = birthDate
	}
	cliente.UpdatedAt = time.Now()

	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return BuildClienteDocument([]*entity.Cliente{cliente}, 1, 1), nil
}

// Delete elimina un cliente y sus ventas en una transacción.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrClienteNotFound
	}
	return uc.deleter.DeleteCliente(ctx, id)
}

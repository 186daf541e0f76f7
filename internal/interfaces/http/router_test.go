package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/toystore-api/internal/application/auth"
	"github.com/jhoicas/toystore-api/internal/application/usecase"
	"github.com/jhoicas/toystore-api/internal/domain/entity"
	"github.com/jhoicas/toystore-api/internal/domain/repository"
	httpapi "github.com/jhoicas/toystore-api/internal/interfaces/http"
	"github.com/jhoicas/toystore-api/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para probar los handlers de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	clientes []*entity.Cliente
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	r.clientes = append(r.clientes, c)
	return nil
}

func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	for _, c := range r.clientes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClienteRepo) GetByEmail(email string) (*entity.Cliente, error) {
	for _, c := range r.clientes {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClienteRepo) matches(c *entity.Cliente, f repository.ClienteFilter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(c.FullName), strings.ToLower(f.Name)) {
		return false
	}
	if f.Email != "" && !strings.Contains(strings.ToLower(c.Email), strings.ToLower(f.Email)) {
		return false
	}
	return true
}

func (r *fakeClienteRepo) List(f repository.ClienteFilter, limit, offset int) ([]*entity.Cliente, error) {
	var filtered []*entity.Cliente
	for _, c := range r.clientes {
		if r.matches(c, f) {
			filtered = append(filtered, c)
		}
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (r *fakeClienteRepo) Count(f repository.ClienteFilter) (int, error) {
	n := 0
	for _, c := range r.clientes {
		if r.matches(c, f) {
			n++
		}
	}
	return n, nil
}

func (r *fakeClienteRepo) Update(c *entity.Cliente) error {
	for i, existing := range r.clientes {
		if existing.ID == c.ID {
			r.clientes[i] = c
			return nil
		}
	}
	return nil
}

type fakeSaleRepo struct {
	sales    []*entity.Sale
	clientes *fakeClienteRepo
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.sales = append(r.sales, s)
	// Mantiene las ventas del cliente cargadas, como hace el repositorio real.
	if cliente, _ := r.clientes.GetByID(s.ClienteID); cliente != nil {
		cliente.Vendas = append(cliente.Vendas, *s)
	}
	return nil
}

func (r *fakeSaleRepo) matches(s *entity.Sale, f repository.SaleFilter) bool {
	if f.ClienteID != "" && s.ClienteID != f.ClienteID {
		return false
	}
	if f.DataInicio != nil && f.DataFim != nil {
		if s.Data.Before(*f.DataInicio) || s.Data.After(*f.DataFim) {
			return false
		}
	}
	return true
}

func (r *fakeSaleRepo) List(f repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	var filtered []*entity.Sale
	for _, s := range r.sales {
		if r.matches(s, f) {
			withCliente := *s
			withCliente.Cliente, _ = r.clientes.GetByID(s.ClienteID)
			filtered = append(filtered, &withCliente)
		}
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (r *fakeSaleRepo) Count(f repository.SaleFilter) (int, error) {
	n := 0
	for _, s := range r.sales {
		if r.matches(s, f) {
			n++
		}
	}
	return n, nil
}

type fakeStatsRepo struct {
	clientes *fakeClienteRepo
	sales    *fakeSaleRepo
}

func (r *fakeStatsRepo) ListSalesInRange(_ context.Context, inicio, fim *time.Time) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales.sales {
		if inicio != nil && fim != nil && (s.Data.Before(*inicio) || s.Data.After(*fim)) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeStatsRepo) ListClientesWithVendas(_ context.Context) ([]*entity.Cliente, error) {
	return r.clientes.clientes, nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// fakeDeleter borra el cliente y sus ventas, como el TxRunner real.
type fakeDeleter struct {
	clientes *fakeClienteRepo
	sales    *fakeSaleRepo
}

func (d *fakeDeleter) DeleteCliente(_ context.Context, clienteID string) error {
	kept := d.sales.sales[:0]
	for _, s := range d.sales.sales {
		if s.ClienteID != clienteID {
			kept = append(kept, s)
		}
	}
	d.sales.sales = kept

	for i, c := range d.clientes.clientes {
		if c.ID == clienteID {
			d.clientes.clientes = append(d.clientes.clientes[:i], d.clientes.clientes[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de pruebas
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	clientes *fakeClienteRepo
	sales    *fakeSaleRepo
	users    *fakeUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clienteRepo := &fakeClienteRepo{}
	saleRepo := &fakeSaleRepo{clientes: clienteRepo}
	statsRepo := &fakeStatsRepo{clientes: clienteRepo, sales: saleRepo}
	userRepo := &fakeUserRepo{}

	app := fiber.New()
	httpapi.Router(app, httpapi.RouterDeps{
		ClienteUC: usecase.NewClienteUseCase(clienteRepo, &fakeDeleter{clientes: clienteRepo, sales: saleRepo}),
		SaleUC:    usecase.NewSaleUseCase(saleRepo, clienteRepo),
		StatsUC:   usecase.NewStatsUseCase(statsRepo),
		AuthUC: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     testSecret,
			ExpMinutes: 60,
			Issuer:     "toystore-api",
		}),
		JWTSecret: testSecret,
	})

	return &testEnv{app: app, clientes: clienteRepo, sales: saleRepo, users: userRepo}
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-1", "toystore-api", 60)
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedCliente(t *testing.T, e *testEnv, id, fullName, email, birthDate string) *entity.Cliente {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", birthDate)
	require.NoError(t, err)
	cliente := &entity.Cliente{
		ID:        id,
		FullName:  fullName,
		Email:     email,
		BirthDate: parsed,
		Vendas:    []entity.Sale{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, e.clientes.Create(cliente))
	return cliente
}

package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearCliente(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)

	resp := env.request(t, http.MethodPost, "/customers", fiber.Map{
		"fullName":  "Ana Beatriz",
		"email":     "ana@example.com",
		"birthDate": "1992-05-01",
	}, token)

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)

	data := body["data"].(map[string]any)
	customers := data["customers"].([]any)
	require.Len(t, customers, 1)

	customer := customers[0].(map[string]any)
	info := customer["info"].(map[string]any)
	assert.Equal(t, "Ana Beatriz", info["fullName"])
	details := info["details"].(map[string]any)
	assert.Equal(t, "ana@example.com", details["email"])
	assert.Equal(t, "1992-05-01", details["birthDate"])
	assert.NotContains(t, customer, "duplicated")

	stats := customer["statistics"].(map[string]any)
	assert.Empty(t, stats["sales"])

	meta := body["meta"].(map[string]any)
	assert.EqualValues(t, 1, meta["totalRecords"])
	redundant := body["redundant"].(map[string]any)
	assert.Equal(t, "ok", redundant["status"])
}

func TestCrearCliente_ConCarlos(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/customers", fiber.Map{
		"fullName":  "Carlos Eduardo",
		"email":     "carlos@example.com",
		"birthDate": "1988-03-12",
	}, env.token(t))

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	customer := body["data"].(map[string]any)["customers"].([]any)[0].(map[string]any)

	duplicated, ok := customer["duplicated"].(map[string]any)
	require.True(t, ok, "el nombre contiene Carlos, el bloque duplicated debe estar presente")
	assert.Equal(t, "Carlos Eduardo", duplicated["fullName"])
}

func TestCrearCliente_EmailDuplicado(t *testing.T) {
	env := newTestEnv(t)
	seedCliente(t, env, "c1", "Ana Beatriz", "ana@example.com", "1992-05-01")

	resp := env.request(t, http.MethodPost, "/customers", fiber.Map{
		"fullName":  "Otra Ana",
		"email":     "ana@example.com",
		"birthDate": "1990-01-01",
	}, env.token(t))

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "EMAIL_EXISTS", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestCrearCliente_Validacion(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/customers", fiber.Map{
		"email":     "ana@example.com",
		"birthDate": "1992-05-01",
	}, env.token(t))

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["error"])
	assert.Equal(t, "fullName es requerido", body["message"])
}

func TestObtenerCliente_NoExiste(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/customers/no-existe", nil, env.token(t))

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body["error"])
}

func TestListarClientes_Paginacion(t *testing.T) {
	env := newTestEnv(t)
	seedCliente(t, env, "c1", "Ana Beatriz", "ana@example.com", "1992-05-01")
	seedCliente(t, env, "c2", "Bruno Costa", "bruno@example.com", "1985-11-20")
	seedCliente(t, env, "c3", "Carla Dias", "carla@example.com", "1999-07-07")

	resp := env.request(t, http.MethodGet, "/customers?page=1&limit=2", nil, env.token(t))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	customers := body["data"].(map[string]any)["customers"].([]any)
	assert.Len(t, customers, 2)

	meta := body["meta"].(map[string]any)
	assert.EqualValues(t, 3, meta["totalRecords"], "totalRecords es el total filtrado, no la página")
	assert.EqualValues(t, 1, meta["page"])
}

func TestListarClientes_FiltroPorNombre(t *testing.T) {
	env := newTestEnv(t)
	seedCliente(t, env, "c1", "Ana Beatriz", "ana@example.com", "1992-05-01")
	seedCliente(t, env, "c2", "Bruno Costa", "bruno@example.com", "1985-11-20")

	resp := env.request(t, http.MethodGet, "/customers?name=bea", nil, env.token(t))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	customers := body["data"].(map[string]any)["customers"].([]any)
	require.Len(t, customers, 1, "el filtro por nombre es substring case-insensitive")
	info := customers[0].(map[string]any)["info"].(map[string]any)
	assert.Equal(t, "Ana Beatriz", info["fullName"])
}

func TestActualizarCliente_Parcial(t *testing.T) {
	env := newTestEnv(t)
	seedCliente(t, env, "c1", "Ana Beatriz", "ana@example.com", "1992-05-01")

	resp := env.request(t, http.MethodPut, "/customers/c1", fiber.Map{
		"email": "ana.nueva@example.com",
	}, env.token(t))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	info := body["data"].(map[string]any)["customers"].([]any)[0].(map[string]any)["info"].(map[string]any)
	assert.Equal(t, "Ana Beatriz", info["fullName"], "los campos ausentes no se tocan")
	assert.Equal(t, "ana.nueva@example.com", info["details"].(map[string]any)["email"])
}

func TestActualizarCliente_SinCampos(t *testing.T) {
	env := newTestEnv(t)
	seedCliente(t, env, "c1", "Ana Beatriz", "ana@example.com", "1992-05-01")

	resp := env.request(t, http.MethodPut, "/customers/c1", fiber.Map{}, env.token(t))

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "al menos un campo es requerido", body["message"])
}

func TestActualizarCliente_EmailDeOtro(t *testing.T) {
	env := newTestEnv(t)
	seedCliente(t, env, "c1", "Ana Beatriz", "ana@example.com", "1992-05-01")
	seedCliente(t, env, "c2", "Bruno Costa", "bruno@example.com", "1985-11-20")

	resp := env.request(t, http.MethodPut, "/customers/c2", fiber.Map{
		"email": "ana@example.com",
	}, env.token(t))

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "EMAIL_EXISTS", body["error"])
}

func TestEliminarCliente(t *testing.T) {
	env := newTestEnv(t)
	seedCliente(t, env, "c1", "Ana Beatriz", "ana@example.com", "1992-05-01")
	token := env.token(t)

	resp := env.request(t, http.MethodDelete, "/customers/c1", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "cliente eliminado con éxito", body["message"])

	resp = env.request(t, http.MethodGet, "/customers/c1", nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEliminarCliente_NoExiste(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodDelete, "/customers/no-existe", nil, env.token(t))

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestClientes_SinToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/customers", nil, "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "MISSING_TOKEN", body["error"])
}

func TestRutaDesconocida(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/no-existe", nil, "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ROUTE_NOT_FOUND", body["error"], "las rutas desconocidas no pasan por auth")
}

package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcampos/gestor-api/internal/application/auth"
	"github.com/jcampos/gestor-api/internal/application/dto"
	"github.com/jcampos/gestor-api/internal/application/usecase"
	"github.com/jcampos/gestor-api/internal/application/validation"
	"github.com/jcampos/gestor-api/internal/infrastructure/memory"
	"github.com/jcampos/gestor-api/internal/infrastructure/pdf"
	apphttp "github.com/jcampos/gestor-api/internal/interfaces/http"
	pkgjwt "github.com/jcampos/gestor-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "gestor-api-test"
	testExpMin    = 60
)

// buildTestApp monta a aplicação completa com coleções novas e vazias,
// exatamente como o main faz, menos o middleware de swagger.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	customerRepo := memory.NewCustomerRepository()
	employeeRepo := memory.NewEmployeeRepository()
	serviceRepo := memory.NewServiceRepository()
	userRepo := memory.NewUserRepository()
	validate := validation.New()

	customerUC := usecase.NewCustomerUseCase(customerRepo, validate)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, validate)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, validate)
	statsUC := usecase.NewStatsUseCase(customerRepo, employeeRepo, serviceRepo)
	authUC := auth.NewAuthUseCase(userRepo, validate, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	reports := apphttp.NewReportHandler(
		customerUC, employeeUC, serviceUC, statsUC,
		pdf.NewSummaryReportGenerator(), "gestor-api-test",
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC: customerUC,
		EmployeeUC: employeeUC,
		ServiceUC:  serviceUC,
		StatsUC:    statsUC,
		AuthUC:     authUC,
		Reports:    reports,
		JWTSecret:  testJWTSecret,
	})
	return app
}

// tokenForRole gera um JWT com o cargo indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "1", "ator@example.com", role, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doJSON dispara uma requisição com corpo JSON opcional e token opcional.
func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ── Middleware de autenticação ────────────────────────────────────────────────

func TestAuth_SemTokenRetorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_FormatoInvalidoRetorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/customers", "Token abc", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_TokenAssinadoComOutroSecret(t *testing.T) {
	app := buildTestApp(t)
	tok, err := pkgjwt.Generate("outro-secret", "1", "x@example.com", "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/customers", "Bearer "+tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ── Registro e login ──────────────────────────────────────────────────────────

func TestAuth_FluxoRegistroELogin(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email:    "gerente@example.com",
		Password: "senha-segura",
		Name:     "Gerente Geral",
		Role:     "gerente",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "gerente@example.com",
		Password: "senha-segura",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "gerente", login.User.Role)

	// O token emitido dá acesso às rotas protegidas.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/stats", "Bearer "+login.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_LoginComSenhaErrada(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email:    "alguem@example.com",
		Password: "senha-segura",
		Name:     "Alguém",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "alguem@example.com",
		Password: "senha-errada",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_EmailDuplicadoRetorna409(t *testing.T) {
	app := buildTestApp(t)

	in := dto.RegisterRequest{Email: "dup@example.com", Password: "senha-segura", Name: "Primeira"}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func TestCustomers_CriarValidarEBuscar(t *testing.T) {
	app := buildTestApp(t)
	token := tokenForRole(t, "funcionario")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers", token, dto.CreateCustomerRequest{
		Name:     "Maria Souza",
		Document: "111.444.777-35",
		Email:    "maria@example.com",
		Phone:    "11999990000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.CustomerResponse](t, resp)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "11144477735", created.Document)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/customers/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.CustomerResponse](t, resp)
	assert.Equal(t, created.ID, got.ID)
}

func TestCustomers_DocumentoInvalidoRetorna400ComCampo(t *testing.T) {
	app := buildTestApp(t)
	token := tokenForRole(t, "funcionario")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers", token, dto.CreateCustomerRequest{
		Name:     "Maria Souza",
		Document: "11144477736",
		Email:    "maria@example.com",
		Phone:    "11999990000",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "document", body.Fields[0].Field)
}

func TestCustomers_UpdateInexistenteRetorna404(t *testing.T) {
	app := buildTestApp(t)
	token := tokenForRole(t, "funcionario")

	resp := doJSON(t, app, http.MethodPut, "/api/v1/customers/99", token, map[string]string{"name": "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCustomers_IDNaoPositivoRetorna404(t *testing.T) {
	app := buildTestApp(t)
	token := tokenForRole(t, "funcionario")

	// IDs nunca emitidos (zero e negativos) são "não encontrados", não erro
	// de dado: o contrato só distingue 404 para id ausente.
	for _, target := range []string{"/api/v1/customers/0", "/api/v1/customers/-3"} {
		resp := doJSON(t, app, http.MethodGet, target, token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, target)
	}
}

func TestCustomers_IDNaoNumericoRetorna400ComCampo(t *testing.T) {
	app := buildTestApp(t)
	token := tokenForRole(t, "funcionario")

	resp := doJSON(t, app, http.MethodGet, "/api/v1/customers/abc", token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "id", body.Fields[0].Field)
}

// ── Funcionários e gate de acesso ─────────────────────────────────────────────

func TestEmployees_TecnicoNaoCriaSupervisorSim(t *testing.T) {
	app := buildTestApp(t)

	in := dto.CreateEmployeeRequest{
		Name:     "Carlos Pereira",
		Position: "Técnico de campo",
		Email:    "carlos@example.com",
		Phone:    "11977776666",
		Role:     "funcionario",
	}

	resp := doJSON(t, app, http.MethodPost, "/api/v1/employees", tokenForRole(t, "tecnico"), in)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/employees", tokenForRole(t, "supervisor"), in)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestEmployees_DeleteExigeGerente(t *testing.T) {
	app := buildTestApp(t)
	admin := tokenForRole(t, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/employees", admin, dto.CreateEmployeeRequest{
		Name:     "Carlos Pereira",
		Position: "Técnico de campo",
		Email:    "carlos@example.com",
		Phone:    "11977776666",
		Role:     "tecnico",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.EmployeeResponse](t, resp)
	target := fmt.Sprintf("/api/v1/employees/%d", created.ID)

	resp = doJSON(t, app, http.MethodDelete, target, tokenForRole(t, "supervisor"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, target, tokenForRole(t, "gerente"), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Removido: buscar de novo dá 404, e repetir o delete também.
	resp = doJSON(t, app, http.MethodGet, target, admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = doJSON(t, app, http.MethodDelete, target, admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ── Stats e exportações ───────────────────────────────────────────────────────

func TestStats_ContagensAtuais(t *testing.T) {
	app := buildTestApp(t)
	token := tokenForRole(t, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers", token, dto.CreateCustomerRequest{
		Name: "Maria", Document: "11144477735", Email: "m@example.com", Phone: "1199999000011",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/v1/services", token, dto.CreateServiceRequest{
		Name: "Pintura", EstimatedTime: 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[dto.StatsResponse](t, resp)
	assert.Equal(t, dto.StatsResponse{Customers: 1, Employees: 0, Services: 1}, stats)
}

func TestExport_CustomersCSV(t *testing.T) {
	app := buildTestApp(t)
	token := tokenForRole(t, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers", token, dto.CreateCustomerRequest{
		Name: "Maria Souza", Document: "11144477735", Email: "maria@example.com", Phone: "11999990000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/export/customers", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, string(raw), "id,name,document,email,phone,created_at")
	assert.Contains(t, string(raw), "Maria Souza")
	assert.Contains(t, string(raw), "11144477735")
}

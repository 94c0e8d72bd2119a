package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcampos/gestor-api/internal/application/auth"
	"github.com/jcampos/gestor-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ServiceUC  *usecase.ServiceUseCase
	StatsUC    *usecase.StatsUseCase
	AuthUC     *auth.AuthUseCase
	Reports    *ReportHandler
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido; escrita passa pelo validador de documento)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Employees (protegido; mutações passam pelo gate de acesso)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Services (protegido)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Stats (protegido, somente leitura)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", statsHandler.Get)

	// Exportações e relatório gerencial (protegido)
	protected.Get("/export/customers", deps.Reports.ExportCustomers)
	protected.Get("/export/employees", deps.Reports.ExportEmployees)
	protected.Get("/export/services", deps.Reports.ExportServices)
	protected.Get("/reports/summary", deps.Reports.Summary)
}

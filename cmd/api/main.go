package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcampos/gestor-api/internal/application/auth"
	"github.com/jcampos/gestor-api/internal/application/usecase"
	"github.com/jcampos/gestor-api/internal/application/validation"
	"github.com/jcampos/gestor-api/internal/infrastructure/memory"
	"github.com/jcampos/gestor-api/internal/infrastructure/pdf"
	httpRouter "github.com/jcampos/gestor-api/internal/interfaces/http"
	"github.com/jcampos/gestor-api/pkg/config"
	"github.com/jcampos/gestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Todo o estado vive na memória do processo e zera no restart; cada
	// coleção é construída explicitamente aqui e injetada nos chamadores.
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
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err := authUC.Bootstrap(cfg.Auth.BootstrapEmail, cfg.Auth.BootstrapPassword, cfg.Auth.BootstrapName); err != nil {
		log.Fatal().Err(err).Msg("semear conta administradora")
	}

	reportHandler := httpRouter.NewReportHandler(
		customerUC, employeeUC, serviceUC, statsUC,
		pdf.NewSummaryReportGenerator(), cfg.App.Name,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	if !httpRouter.RegisterSwagger(app, "./docs/swagger.json", "Gestor API") {
		log.Warn().Str("file", "./docs/swagger.json").Msg("swagger.json não encontrado, documentação desabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		EmployeeUC: employeeUC,
		ServiceUC:  serviceUC,
		StatsUC:    statsUC,
		AuthUC:     authUC,
		Reports:    reportHandler,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

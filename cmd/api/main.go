package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/entregas-api/internal/application/analytics"
	"github.com/jhoicas/entregas-api/internal/application/auth"
	"github.com/jhoicas/entregas-api/internal/application/issuance"
	"github.com/jhoicas/entregas-api/internal/application/permission"
	"github.com/jhoicas/entregas-api/internal/application/usecase"
	"github.com/jhoicas/entregas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/entregas-api/internal/interfaces/http"
	"github.com/jhoicas/entregas-api/internal/security"
	"github.com/jhoicas/entregas-api/pkg/cache"
	"github.com/jhoicas/entregas-api/pkg/config"
	"github.com/jhoicas/entregas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	issuanceRepo := postgres.NewIssuanceRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	securityEventRepo := postgres.NewSecurityEventRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Capa de seguridad: auditor + validador + rate limiter compartidos
	auditor := security.NewAuditor(securityEventRepo, log.Zerolog())
	validator := security.NewValidator(cfg.Security.MaxInputLength, auditor)
	limiter := security.NewRateLimiter(cfg.Security.RateLimitMax, cfg.Security.RateLimitWindow, auditor)

	gate := permission.NewGate(userRepo, permissionRepo, warehouseRepo)
	permAdminUC := permission.NewAdminUseCase(permissionRepo, userRepo, warehouseRepo)

	issuanceUC := issuance.NewUseCase(
		txRunner, issuanceRepo, productRepo,
		customerRepo, branchRepo,
		gate, validator, limiter,
	)

	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	productUC := usecase.NewProductUseCase(productRepo, validator)
	customerUC := usecase.NewCustomerUseCase(customerRepo, validator)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo, cache.New(cfg.Security.DashboardTTL))

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Entregas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		WarehouseUC: warehouseUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		IssuanceUC:  issuanceUC,
		Gate:        gate,
		PermAdminUC: permAdminUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

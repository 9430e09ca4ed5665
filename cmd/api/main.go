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

	appanalytics "github.com/jhoicas/ErpAdmin-api/internal/application/analytics"
	"github.com/jhoicas/ErpAdmin-api/internal/application/auth"
	"github.com/jhoicas/ErpAdmin-api/internal/application/inventory"
	"github.com/jhoicas/ErpAdmin-api/internal/application/purchasing"
	"github.com/jhoicas/ErpAdmin-api/internal/application/sales"
	"github.com/jhoicas/ErpAdmin-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/ErpAdmin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ErpAdmin-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ErpAdmin-api/internal/interfaces/http"
	"github.com/jhoicas/ErpAdmin-api/pkg/config"
	"github.com/jhoicas/ErpAdmin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (fuera de transacción)
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockListRepo := postgres.NewStockListRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	purchaseOrderRepo := postgres.NewPurchaseOrderRepository(pool)
	salesOrderRepo := postgres.NewSalesOrderRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	auditRepo := postgres.NewAuditEventRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Inventario
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, warehouseRepo)
	listMovementsUC := inventory.NewListMovementsUseCase(movementRepo)

	// Compras y ventas (orquestan el inventario dentro de la misma tx)
	purchaseOrderUC := purchasing.NewPurchaseOrderUseCase(
		txRunner, registerMovementUC,
		purchaseOrderRepo, supplierRepo, productRepo, warehouseRepo,
	)
	salesOrderUC := sales.NewSalesOrderUseCase(
		txRunner, registerMovementUC,
		salesOrderRepo, productRepo, warehouseRepo,
	)

	// Listado de inventario + reporte PDF
	stockUC := usecase.NewStockUseCase(stockListRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	stockReportUC := usecase.NewStockReportUseCase(stockListRepo, companyRepo, pdfGenerator)

	// Catálogos y tenant
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	settingsUC := usecase.NewSettingsUseCase(companyRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)
	moduleSvc := usecase.NewModuleService(companyRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, stockListRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
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
		Title:    "ErpAdmin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		CompanyUC:        companyUC,
		StockUC:          stockUC,
		StockReportUC:    stockReportUC,
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		WarehouseUC:      warehouseUC,
		RegisterMovement: registerMovementUC,
		ListMovements:    listMovementsUC,
		SupplierUC:       supplierUC,
		PurchaseOrderUC:  purchaseOrderUC,
		SalesOrderUC:     salesOrderUC,
		EmployeeUC:       employeeUC,
		DashboardUC:      dashboardUC,
		SettingsUC:       settingsUC,
		AuditUC:          auditUC,
		ModuleService:    moduleSvc,
		AuditRepo:        auditRepo,
		Logger:           log.Component("http"),
		JWTSecret:        cfg.JWT.Secret,
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

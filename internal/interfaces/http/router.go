package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/ErpAdmin-api/internal/application/analytics"
	"github.com/jhoicas/ErpAdmin-api/internal/application/auth"
	"github.com/jhoicas/ErpAdmin-api/internal/application/inventory"
	"github.com/jhoicas/ErpAdmin-api/internal/application/purchasing"
	"github.com/jhoicas/ErpAdmin-api/internal/application/sales"
	"github.com/jhoicas/ErpAdmin-api/internal/application/usecase"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
	"github.com/jhoicas/ErpAdmin-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CompanyUC        *usecase.CompanyUseCase
	StockUC          *usecase.StockUseCase
	StockReportUC    *usecase.StockReportUseCase
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ListMovements    *inventory.ListMovementsUseCase
	SupplierUC       *usecase.SupplierUseCase
	PurchaseOrderUC  *purchasing.PurchaseOrderUseCase
	SalesOrderUC     *sales.SalesOrderUseCase
	EmployeeUC       *usecase.EmployeeUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	SettingsUC       *usecase.SettingsUseCase
	AuditUC          *usecase.AuditUseCase
	ModuleService    *usecase.ModuleService
	AuditRepo        repository.AuditEventRepository
	Logger           *logger.Logger
	JWTSecret        string
}

// Router registra las rutas de la API.
// Escrituras: admin o manager. Lecturas: cualquier rol autenticado.
// Auditoría y configuración del tenant: solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	canWrite := RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público: registro de tenants)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (Bearer Token + auditoría de mutaciones)
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		AuditMiddleware(deps.AuditRepo, deps.Logger),
	)

	// Dashboard (módulo analytics)
	dashboard := protected.Group("/dashboard", RequireModule(entity.ModuleAnalytics, deps.ModuleService))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/inventory-value/monthly", dashboardHandler.GetMonthlyInventoryValue)

	// Stock (módulo inventory)
	stock := protected.Group("/stock", RequireModule(entity.ModuleInventory, deps.ModuleService))
	stockHandler := NewStockHandler(deps.StockUC, deps.StockReportUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/summary", stockHandler.Summary)
	stock.Get("/report.pdf", stockHandler.DownloadReport)

	// Products (módulo inventory)
	products := protected.Group("/products", RequireModule(entity.ModuleInventory, deps.ModuleService))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", canWrite, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", canWrite, productHandler.Update)
	products.Delete("/:id", canWrite, productHandler.Delete)

	// Categories (módulo inventory)
	categories := protected.Group("/categories", RequireModule(entity.ModuleInventory, deps.ModuleService))
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", canWrite, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", canWrite, categoryHandler.Update)
	categories.Delete("/:id", canWrite, categoryHandler.Delete)

	// Warehouses (módulo inventory)
	warehouses := protected.Group("/warehouses", RequireModule(entity.ModuleInventory, deps.ModuleService))
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", canWrite, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", canWrite, warehouseHandler.Update)
	warehouses.Delete("/:id", canWrite, warehouseHandler.Delete)

	// Inventory movements (módulo inventory)
	invGroup := protected.Group("/inventory", RequireModule(entity.ModuleInventory, deps.ModuleService))
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.ListMovements)
	invGroup.Post("/movements", canWrite, inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	// Suppliers (módulo purchasing)
	suppliers := protected.Group("/suppliers", RequireModule(entity.ModulePurchasing, deps.ModuleService))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", canWrite, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", canWrite, supplierHandler.Update)
	suppliers.Delete("/:id", canWrite, supplierHandler.Delete)

	// Purchase orders (módulo purchasing)
	purchaseOrders := protected.Group("/purchase-orders", RequireModule(entity.ModulePurchasing, deps.ModuleService))
	purchaseOrderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	purchaseOrders.Post("/", canWrite, purchaseOrderHandler.Create)
	purchaseOrders.Get("/", purchaseOrderHandler.List)
	purchaseOrders.Get("/:id", purchaseOrderHandler.GetByID)
	purchaseOrders.Post("/:id/receive", canWrite, purchaseOrderHandler.Receive)
	purchaseOrders.Post("/:id/cancel", canWrite, purchaseOrderHandler.Cancel)

	// Sales orders (módulo sales)
	salesOrders := protected.Group("/sales-orders", RequireModule(entity.ModuleSales, deps.ModuleService))
	salesOrderHandler := NewSalesOrderHandler(deps.SalesOrderUC)
	salesOrders.Post("/", canWrite, salesOrderHandler.Create)
	salesOrders.Get("/", salesOrderHandler.List)
	salesOrders.Get("/:id", salesOrderHandler.GetByID)
	salesOrders.Post("/:id/dispatch", canWrite, salesOrderHandler.Dispatch)
	salesOrders.Post("/:id/deliver", canWrite, salesOrderHandler.Deliver)
	salesOrders.Post("/:id/cancel", canWrite, salesOrderHandler.Cancel)

	// Employees (módulo employees)
	employees := protected.Group("/employees", RequireModule(entity.ModuleEmployees, deps.ModuleService))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", canWrite, employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", canWrite, employeeHandler.Update)
	employees.Delete("/:id", canWrite, employeeHandler.Delete)

	// Audit log (solo admin)
	audit := protected.Group("/audit", adminOnly)
	auditHandler := NewAuditHandler(deps.AuditUC)
	audit.Get("/", auditHandler.List)

	// Settings del tenant (lecturas: cualquier rol; escrituras: solo admin)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/company", settingsHandler.GetCompany)
	settings.Put("/company", adminOnly, settingsHandler.UpdateCompany)
	settings.Get("/modules", settingsHandler.ListModules)
	settings.Put("/modules/:name", adminOnly, settingsHandler.SetModule)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/entregas-api/internal/application/analytics"
	"github.com/jhoicas/entregas-api/internal/application/auth"
	"github.com/jhoicas/entregas-api/internal/application/issuance"
	"github.com/jhoicas/entregas-api/internal/application/permission"
	"github.com/jhoicas/entregas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	IssuanceUC  *issuance.UseCase
	Gate        *permission.Gate
	PermAdminUC *permission.AdminUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido; crear solo admin)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireRole("admin"), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Issuances (protegido; el use case aplica permisos por bodega)
	issuances := protected.Group("/issuances")
	issuanceHandler := NewIssuanceHandler(deps.IssuanceUC)
	issuances.Post("/", issuanceHandler.Create)
	issuances.Get("/", issuanceHandler.ListByWarehouse)
	issuances.Get("/:id", issuanceHandler.GetByID)
	issuances.Put("/:id", issuanceHandler.Update)
	issuances.Delete("/:id", issuanceHandler.Delete)

	// Permissions (consulta para el usuario autenticado; administración solo admin)
	permissions := protected.Group("/permissions")
	permissionHandler := NewPermissionHandler(deps.Gate, deps.PermAdminUC)
	permissions.Get("/check", permissionHandler.Check)
	permissions.Get("/warehouses", permissionHandler.AccessibleWarehouses)
	permissions.Post("/", RequireRole("admin"), permissionHandler.Grant)
	permissions.Get("/users/:userId", RequireRole("admin"), permissionHandler.ListByUser)
	permissions.Delete("/users/:userId/warehouses/:warehouseId", RequireRole("admin"), permissionHandler.Revoke)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventauri/inventauri-api/internal/application/auth"
	"github.com/inventauri/inventauri-api/internal/application/sales"
	"github.com/inventauri/inventauri-api/internal/application/usecase"
	"github.com/inventauri/inventauri-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ItemUC      *usecase.ItemUseCase
	MovementUC  *usecase.MovementUseCase
	DashboardUC *usecase.DashboardUseCase
	RecordSale  *sales.RecordSaleUseCase
	ReceiptUC   *sales.ReceiptUseCase
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
	adminOnly := RequireRole(entity.RoleAdmin)

	// Catálogo de ítems (protegido; escritura solo admin)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", adminOnly, itemHandler.Update)

	// Ventas (protegido; cualquier rol autenticado puede vender)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.RecordSale, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Libro de stock (protegido; entradas manuales solo admin)
	stock := protected.Group("/stock")
	movementHandler := NewMovementHandler(deps.MovementUC)
	stock.Post("/movements", adminOnly, movementHandler.Register)
	stock.Get("/items/:itemId/movements", movementHandler.List)
	stock.Get("/items/:itemId/level", movementHandler.Level)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}

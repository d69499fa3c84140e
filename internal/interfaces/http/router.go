package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/emart-api/internal/application/analytics"
	"github.com/jhoicas/emart-api/internal/application/auth"
	"github.com/jhoicas/emart-api/internal/application/inventory"
	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session     *auth.SessionStore
	Inventory   *inventory.Store
	DashboardUC *analytics.DashboardUseCase
	JWT         JWTConfig
}

// Router registra las rutas de la API y la superficie de navegación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y me exigen token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Session, deps.JWT)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWT.Secret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	// Products (protegido; crear es de maker, aprobar de checker)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Inventory)
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.Categories)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleMaker, entity.RoleAdmin), productHandler.Create)
	products.Patch("/:id", productHandler.Update)
	products.Post("/:id/approve", RequireRole(entity.RoleChecker, entity.RoleAdmin), productHandler.Approve)

	// Stock movements (protegido)
	inventoryHandler := NewInventoryHandler(deps.Inventory)
	products.Post("/:id/move", inventoryHandler.MoveStock)

	// Alerts (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.Inventory)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/:id/acknowledge", alertHandler.Acknowledge)

	// Invoices (protegido; colección siempre vacía)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Inventory)
	invoices.Get("/", invoiceHandler.List)

	// Uploads (protegido; colección siempre vacía)
	uploads := protected.Group("/uploads")
	uploadHandler := NewUploadHandler(deps.Inventory)
	uploads.Get("/", uploadHandler.List)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Superficie de navegación: páginas HTML con guard por cookie.
	pages := NewPagesHandler(deps.JWT.Secret)
	app.Get("/", pages.Root)
	app.Get("/login", pages.LoginPage)
	app.Get("/dashboard", pages.Protected("Dashboard", "<p>Resumen del inventario.</p>"))
	app.Get("/inventory", pages.Protected("Inventory", "<p>Listado de productos.</p>"))
	app.Get("/approval", pages.Placeholder("Approval"))
	app.Get("/upload", pages.Placeholder("Upload"))
	app.Get("/invoices", pages.Placeholder("Invoices"))
	app.Get("/alerts", pages.Placeholder("Alerts"))
	app.Get("/reports", pages.Placeholder("Reports"))
	app.Get("/settings", pages.Placeholder("Settings"))
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casa-esperanza/almacen-api/internal/application/auth"
	"github.com/casa-esperanza/almacen-api/internal/application/posting"
	"github.com/casa-esperanza/almacen-api/internal/application/reporting"
	"github.com/casa-esperanza/almacen-api/internal/application/stock"
	"github.com/casa-esperanza/almacen-api/internal/application/usecase"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	CatalogUC     *usecase.CatalogUseCase
	DonorUC       *usecase.DonorUseCase
	Coordinator   *posting.Coordinator
	StockQueries  *stock.QueryUseCase
	ReceiptUC     *reporting.ReceiptUseCase
	Donations     repository.DonationRepository
	Sales         repository.SaleRepository
	Consumptions  repository.ConsumptionRepository
	MovementTypes repository.MovementTypeRepository
	JWTSecret     string
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

	// Perfiles: el cambio de rol es exclusivo del administrador
	users := protected.Group("/users")
	users.Put("/:id/role", RequireRole(entity.RoleAdmin), authHandler.AssignRole)

	// Almacenes
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)

	// Catálogo: productos y variantes
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := protected.Group("/products")
	products.Post("/", catalogHandler.CreateProduct)
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)
	products.Put("/:id", catalogHandler.UpdateProduct)

	variants := protected.Group("/variants")
	variants.Post("/", catalogHandler.CreateVariant)
	variants.Get("/", catalogHandler.ListVariants)
	variants.Get("/:id", catalogHandler.GetVariant)
	variants.Put("/:id", catalogHandler.UpdateVariant)

	// Donadores
	donors := protected.Group("/donors")
	donorHandler := NewDonorHandler(deps.DonorUC)
	donors.Post("/", donorHandler.Create)
	donors.Get("/", donorHandler.List)
	donors.Get("/:id", donorHandler.GetByID)
	donors.Put("/:id", donorHandler.Update)

	// Donativos
	donations := protected.Group("/donations")
	donationHandler := NewDonationHandler(deps.Coordinator, deps.Donations, deps.ReceiptUC)
	donations.Post("/", donationHandler.Create)
	donations.Get("/", donationHandler.List)
	donations.Get("/:id", donationHandler.GetByID)
	donations.Get("/:id/receipt", donationHandler.Receipt)

	// Ventas de bazar
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.Coordinator, deps.Sales)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)

	// Consumos de cocina; la aprobación es solo para admin y coordinador
	consumptions := protected.Group("/consumptions")
	consumptionHandler := NewConsumptionHandler(deps.Coordinator, deps.Consumptions)
	consumptions.Post("/", consumptionHandler.Create)
	consumptions.Get("/pending", consumptionHandler.ListPending)
	consumptions.Get("/mine", consumptionHandler.ListMine)
	consumptions.Post("/:id/approve",
		RequireRole(entity.RoleAdmin, entity.RoleCoordinador),
		consumptionHandler.Approve,
	)

	// Inventario: existencias, libro y ajustes
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockQueries, deps.Coordinator, deps.MovementTypes)
	inventory.Get("/lots", inventoryHandler.AvailableLots)
	inventory.Get("/lots/:id/stock", inventoryHandler.LotStock)
	inventory.Get("/variants/:id/stock", inventoryHandler.VariantStock)
	inventory.Get("/movements", inventoryHandler.Movements)
	inventory.Get("/movement-types", inventoryHandler.MovementTypes)
	inventory.Get("/summary", inventoryHandler.Summary)
	inventory.Post("/adjustments",
		RequireRole(entity.RoleAdmin, entity.RoleCoordinador),
		inventoryHandler.Adjust,
	)
}

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

	"github.com/casa-esperanza/almacen-api/internal/application/auth"
	"github.com/casa-esperanza/almacen-api/internal/application/posting"
	"github.com/casa-esperanza/almacen-api/internal/application/reporting"
	"github.com/casa-esperanza/almacen-api/internal/application/stock"
	"github.com/casa-esperanza/almacen-api/internal/application/usecase"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	infrapdf "github.com/casa-esperanza/almacen-api/internal/infrastructure/pdf"
	"github.com/casa-esperanza/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/casa-esperanza/almacen-api/internal/interfaces/http"
	"github.com/casa-esperanza/almacen-api/pkg/config"
	"github.com/casa-esperanza/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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
	variantRepo := postgres.NewVariantRepository(pool)
	donorRepo := postgres.NewDonorRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	movementTypeRepo := postgres.NewMovementTypeRepository(pool)
	donationRepo := postgres.NewDonationRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	consumptionRepo := postgres.NewConsumptionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Capacidad de aprobación: admin y coordinador. El motor de asientos no
	// conoce roles; recibe este chequeo ya resuelto.
	canApprove := func(actorID string) bool {
		u, err := userRepo.GetByID(actorID)
		if err != nil || u == nil || !u.Active {
			return false
		}
		return u.Role == entity.RoleAdmin || u.Role == entity.RoleCoordinador
	}

	coordinator := posting.NewCoordinator(
		txRunner, movementTypeRepo, variantRepo, warehouseRepo, donorRepo, canApprove, log,
	)
	stockQueries := stock.NewQueryUseCase(lotRepo, movementRepo, movementTypeRepo, log)

	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo, variantRepo)
	donorUC := usecase.NewDonorUseCase(donorRepo)

	// PDF: recibo del donativo para el donador
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := reporting.NewReceiptUseCase(
		donationRepo, donorRepo, variantRepo, productRepo, receiptGenerator,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		WarehouseUC:   warehouseUC,
		CatalogUC:     catalogUC,
		DonorUC:       donorUC,
		Coordinator:   coordinator,
		StockQueries:  stockQueries,
		ReceiptUC:     receiptUC,
		Donations:     donationRepo,
		Sales:         saleRepo,
		Consumptions:  consumptionRepo,
		MovementTypes: movementTypeRepo,
		JWTSecret:     cfg.JWT.Secret,
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

package main

import (
	"os"
	"os/signal"
	"syscall"

	"pringles-wms/internal/config"
	"pringles-wms/internal/handler"
	"pringles-wms/internal/repository"
	"pringles-wms/internal/service"
	"pringles-wms/internal/ws"
	"pringles-wms/pkg/database"
	"pringles-wms/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// 1. Load config
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	// 2. Setup database (schema is migrated on every start)
	db, err := database.Connect(cfg.DatabaseOptions())
	if err != nil {
		baseLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	baseLogger.Info("database ready", zap.String("driver", cfg.Database.Driver))

	// 3. Setup WebSocket hub
	wsHub := ws.NewHub(baseLogger.Named("ws"))
	go wsHub.Run()
	defer wsHub.Stop()

	// 4. Dependency injection
	flavorRepo := repository.NewFlavorRepo(db)
	stockRepo := repository.NewStockRepo(db)
	machineRepo := repository.NewMachineRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	accountRepo := repository.NewAccountRepo(db)
	balanceRepo := repository.NewBalanceRepo(db)

	today := service.LocalToday(cfg.Location())

	invService := service.NewInventoryService(flavorRepo, stockRepo, today, wsHub, baseLogger.Named("svc.inventory"))
	machineService := service.NewMachineService(machineRepo, wsHub, baseLogger.Named("svc.machines"))
	salesService := service.NewSalesService(saleRepo, machineRepo, today, wsHub, baseLogger.Named("svc.sales"))
	ledgerService := service.NewLedgerService(expenseRepo, accountRepo, balanceRepo, today, wsHub, baseLogger.Named("svc.ledger"))
	summaryService := service.NewSummaryService(saleRepo, expenseRepo, accountRepo, balanceRepo)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Pringles Automaten WMS",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 6. Routes
	handler.RegisterRoutes(app.Group("/api/v1"), handler.Handlers{
		Inventory: handler.NewInventoryHandler(invService, baseLogger.Named("handler.inventory")),
		Machines:  handler.NewMachineHandler(machineService, baseLogger.Named("handler.machines")),
		Sales:     handler.NewSalesHandler(salesService, baseLogger.Named("handler.sales")),
		Ledger:    handler.NewLedgerHandler(ledgerService, baseLogger.Named("handler.ledger")),
		Dashboard: handler.NewDashboardHandler(summaryService, baseLogger.Named("handler.dashboard")),
	})

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// clients only listen; reading detects the disconnect
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			baseLogger.Panic("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	baseLogger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		baseLogger.Error("server forced to shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	baseLogger.Info("server exited")
}

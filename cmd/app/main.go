package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"castlecare/cmd"
	httpserver "castlecare/internal/adapters/in/http"
	"castlecare/internal/adapters/out/postgres/customerrepo"
	"castlecare/internal/adapters/out/postgres/orderrepo"
	"castlecare/internal/adapters/out/postgres/pricingrepo"
	"castlecare/internal/adapters/out/postgres/workerrepo"
	"castlecare/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file found, using process environment")
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&customerrepo.AddressDTO{},
		&workerrepo.WorkerDTO{},
		&pricingrepo.PricingOptionDTO{},
		&orderrepo.OrderDTO{},
	); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		logger.Error("failed to build composition root", "error", err)
		os.Exit(1)
	}
	defer root.Close()

	jobManager := jobs.NewJobManager(root.CreateEscalatePendingOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := buildEcho(root)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if err := e.Start(addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func buildEcho(root *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(httpserver.Handlers{
		CreateOrder:       root.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: root.CreateUpdateOrderStatusCommandHandler(),
		AddProof:          root.CreateAddProofCommandHandler(),
		CreateCustomer:    root.CreateCreateCustomerCommandHandler(),
		AddAddress:        root.CreateAddAddressCommandHandler(),
		RemoveAddress:     root.CreateRemoveAddressCommandHandler(),
		CreateWorker:      root.CreateCreateWorkerCommandHandler(),
		ApproveWorker:     root.CreateApproveWorkerCommandHandler(),
		SetAvailability:   root.CreateSetWorkerAvailabilityCommandHandler(),
		CreatePricing:     root.CreateCreatePricingOptionCommandHandler(),
		UpdatePricing:     root.CreateUpdatePricingOptionCommandHandler(),

		OrderByID:         root.CreateOrderByIDHandler(),
		OrdersByCustomer:  root.CreateGetOrdersByCustomerIDQueryHandler(),
		OrdersByWorker:    root.CreateGetOrdersByWorkerIDQueryHandler(),
		OrdersByStatus:    root.CreateGetOrdersByStatusQueryHandler(),
		AvailableWorkers:  root.CreateGetAvailableWorkersByRoleQueryHandler(),
		PricingOptions:    root.CreatePricingOptionsHandler(),
		PricingOptionByID: root.CreatePricingOptionByIDHandler(),
	})
	server.RegisterRoutes(e)

	return e
}

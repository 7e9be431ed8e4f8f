package main

import (
	"context"
	"errors"
	"inventory_dashboard/config"
	"inventory_dashboard/internal/delivery"
	graphqlHandler "inventory_dashboard/internal/delivery/graphql"
	grpcHandler "inventory_dashboard/internal/delivery/grpc"
	"inventory_dashboard/internal/domain"
	"inventory_dashboard/internal/middleware"
	"inventory_dashboard/internal/repository"
	"inventory_dashboard/internal/usecase"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	logger := setupLogger("info", "json")
	cfg := config.LoadConfig(logger)
	logger = setupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting Inventory Dashboard Service...")

	// --- Dependency Injection ---
	// Repository Layer
	productRepo, err := repository.NewMemoryProductRepository(repository.SeedProducts(), logger)
	if err != nil {
		logger.Fatalf("Failed to seed product store: %v", err)
	}
	warehouseRepo := repository.NewMemoryWarehouseRepository(repository.SeedWarehouses(), logger)
	chartSource := newChartSource(cfg.ChartSource, logger)
	logger.Info("Repositories initialized.")

	// Usecase Layer
	productUseCase := usecase.NewProductUseCase(productRepo, warehouseRepo, usecase.ProductOptions{
		DefaultPageSize:   cfg.DefaultPageSize,
		MaxPageSize:       cfg.MaxPageSize,
		ReassignWarehouse: cfg.TransferReassignsWarehouse,
	}, logger)
	dashboardUseCase := usecase.NewDashboardUseCase(productRepo, warehouseRepo, chartSource, logger)
	logger.Info("Use cases initialized.")

	router, err := newRouter(cfg, productUseCase, dashboardUseCase, logger)
	if err != nil {
		logger.Fatalf("Failed to build HTTP router: %v", err)
	}
	httpServer := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpcHandler.LoggingUnaryInterceptor(logger)))
	grpcHandler.RegisterInventoryServiceServer(grpcServer,
		grpcHandler.NewInventoryHandler(productUseCase, dashboardUseCase, cfg.MutationDelay, logger))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(grpcHandler.ServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	logger.Info("Handlers initialized.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("HTTP server (REST + GraphQL) listening on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		lis, err := net.Listen("tcp", cfg.GrpcPort)
		if err != nil {
			return err
		}
		logger.Infof("gRPC server listening on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Warn("Shutdown signal received...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("HTTP server shutdown error: %v", err)
		}
		grpcServer.GracefulStop()
		logger.Info("Servers stopped.")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("Inventory Dashboard Service stopped with error: %v", err)
		os.Exit(1)
	}
	logger.Info("Inventory Dashboard Service shut down gracefully.")
}

func setupLogger(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

func newChartSource(kind string, logger *logrus.Logger) domain.ChartSource {
	if kind == config.ChartSourceRandom {
		logger.Info("Chart data: random series")
		return repository.NewRandomChartSource(nil, nil, logger)
	}
	logger.Info("Chart data: fixture series")
	return repository.NewFixtureChartSource(logger)
}

func newRouter(cfg *config.Config, puc usecase.ProductUseCase, duc usecase.DashboardUseCase, logger *logrus.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	// Route Registration
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	schema, err := graphqlHandler.NewSchema(graphqlHandler.NewResolver(puc, duc, cfg.MutationDelay, logger))
	if err != nil {
		return nil, err
	}
	router.POST("/graphql", gin.WrapH(graphqlHandler.NewHandler(schema)))
	logger.Info("Registered GraphQL route at /graphql")

	delivery.NewProductHandler(puc, logger).RegisterRoutes(router, middleware.SimulatedLatency(cfg.MutationDelay))
	delivery.NewDashboardHandler(duc, logger).RegisterRoutes(router)
	logger.Info("API Routes registered.")

	return router, nil
}

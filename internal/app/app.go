package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hngpack/packaging-svc/internal/dal/mongodb"
	"github.com/hngpack/packaging-svc/internal/dal/rabbitmq"
	orderrepo "github.com/hngpack/packaging-svc/internal/dal/repositories/order/mongodb"
	productrepo "github.com/hngpack/packaging-svc/internal/dal/repositories/product/mongodb"
	"github.com/hngpack/packaging-svc/internal/otel"
	"github.com/hngpack/packaging-svc/internal/service/services/catalogsvc"
	"github.com/hngpack/packaging-svc/internal/service/services/ordersvc"
	httptransport "github.com/hngpack/packaging-svc/internal/transport/http"
	"github.com/hngpack/packaging-svc/internal/worker/events"
	"github.com/spf13/viper"
)

// App represents the application.
type App struct {
	catalogSvc   *catalogsvc.CatalogService
	orderSvc     *ordersvc.OrderService
	transport    *httptransport.HTTPTransport
	mongoClient  *mongodb.Client
	rabbitClient *rabbitmq.Client
	eventsWorker *events.Worker
	otelCtrl     *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	mongoClient := mongodb.MustNewClient()

	productRepo := productrepo.NewMongoProductRepository(mongoClient.Collection("product"))
	orderRepo := orderrepo.NewMongoOrderRepository(mongoClient.Collection("order"))

	catalogSvc := catalogsvc.MustNewCatalogService(
		catalogsvc.WithProductRepository(productRepo),
	)

	var rabbitClient *rabbitmq.Client
	var eventsWorker *events.Worker
	var orderSvc *ordersvc.OrderService
	if viper.GetBool("rabbitmq.enabled") {
		rabbitClient = rabbitmq.MustNewClient()
		eventsWorker = events.NewWorker(rabbitClient)
		orderSvc = ordersvc.MustNewOrderService(
			ordersvc.WithProductRepository(productRepo),
			ordersvc.WithOrderRepository(orderRepo),
			ordersvc.WithEventSink(eventsWorker),
		)
	} else {
		orderSvc = ordersvc.MustNewOrderService(
			ordersvc.WithProductRepository(productRepo),
			ordersvc.WithOrderRepository(orderRepo),
		)
	}

	var otelCtrl *otel.OtelController
	if viper.GetBool("tracing.enabled") {
		otelCtrl = otel.MustInitOtel()
	}

	transport := httptransport.NewHTTPTransport(catalogSvc, orderSvc, mongoClient)
	transport.RegisterRoutes()

	return &App{
		catalogSvc:   catalogSvc,
		orderSvc:     orderSvc,
		transport:    transport,
		mongoClient:  mongoClient,
		rabbitClient: rabbitClient,
		eventsWorker: eventsWorker,
		otelCtrl:     otelCtrl,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	if a.eventsWorker != nil {
		go a.eventsWorker.Start(workerCtx)
	}

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	cancelWorker()

	if a.rabbitClient != nil {
		if err := a.rabbitClient.Close(); err != nil {
			slog.Error("RabbitMQ connection close error", "error", err)
		} else {
			slog.Info("RabbitMQ connection closed gracefully")
		}
	}

	if err := a.mongoClient.Close(); err != nil {
		slog.Error("Database connection close error", "error", err)
	} else {
		slog.Info("Database connection closed gracefully")
	}

	if a.otelCtrl != nil {
		if err := a.otelCtrl.Shutdown(); err != nil {
			slog.Error("Trace provider shutdown error", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
}

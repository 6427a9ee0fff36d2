package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hngpack/packaging-svc/internal/service/models/docid"
	"github.com/hngpack/packaging-svc/internal/service/models/order"
	"github.com/hngpack/packaging-svc/internal/service/models/product"
	createorder "github.com/hngpack/packaging-svc/internal/transport/http/create_order"
	createproduct "github.com/hngpack/packaging-svc/internal/transport/http/create_product"
	"github.com/hngpack/packaging-svc/internal/transport/http/diagnostics"
	listproducts "github.com/hngpack/packaging-svc/internal/transport/http/list_products"
	seedproducts "github.com/hngpack/packaging-svc/internal/transport/http/seed_products"
	"github.com/hngpack/packaging-svc/pkg/http/middleware/trace"
	"github.com/hngpack/packaging-svc/pkg/logger"
	"github.com/spf13/viper"
)

type catalogService interface {
	GetProducts(ctx context.Context, filter *product.QueryProductsModel) ([]product.Product, error)
	CreateProduct(ctx context.Context, p product.Product) (docid.ID, error)
	Seed(ctx context.Context) (string, int64, error)
}

type orderService interface {
	CreateOrder(ctx context.Context, o order.Order) (order.Order, error)
}

type store interface {
	Ping(ctx context.Context) error
	ListCollectionNames(ctx context.Context) ([]string, error)
}

type HTTPTransport struct {
	server     *http.Server
	router     *chi.Mux
	catalogSvc catalogService
	orderSvc   orderService
	store      store
}

func NewHTTPTransport(catalogSvc catalogService, orderSvc orderService, store store) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:     server,
		router:     router,
		catalogSvc: catalogSvc,
		orderSvc:   orderSvc,
		store:      store,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Get("/", diagnostics.Root)
	h.router.Post("/seed", h.seedProducts)
	h.router.Get("/products", h.listProducts)
	h.router.Post("/products", h.createProduct)
	h.router.Post("/orders", h.createOrder)
	h.router.Get("/test", h.testStore)
}

func (h *HTTPTransport) createProduct(w http.ResponseWriter, r *http.Request) {
	createproduct.CreateProduct(w, r, h.catalogSvc)
}

func (h *HTTPTransport) listProducts(w http.ResponseWriter, r *http.Request) {
	listproducts.ListProducts(w, r, h.catalogSvc)
}

func (h *HTTPTransport) seedProducts(w http.ResponseWriter, r *http.Request) {
	seedproducts.SeedProducts(w, r, h.catalogSvc)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) testStore(w http.ResponseWriter, r *http.Request) {
	diagnostics.TestStore(w, r, h.store)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	if viper.GetBool("tracing.enabled") {
		router.Use(trace.NewTraceMiddleware)
	}

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}

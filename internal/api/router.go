package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/openretail/pos-gateway/docs"
	"github.com/openretail/pos-gateway/internal/api/handler"
	"github.com/openretail/pos-gateway/internal/api/middleware"
	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
	"github.com/openretail/pos-gateway/internal/session"
)

// Deps carries everything the router needs. Mongo and Redis may be nil
// when auditing or the denylist are disabled.
type Deps struct {
	Backend     *backend.Client
	AuthService ports.AuthService
	Codec       *session.Codec
	Denylist    ports.TokenDenylist
	AuditSink   ports.AuditSink
	RateStore   middleware.RateLimitStore
	RateLimit   int64
	RateWindow  time.Duration
	Mongo       *mongo.Database
	Redis       *redis.Client
	Secure      bool
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowCredentials: true,
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
	}))
	e.Use(echoprometheus.NewMiddleware("pos_gateway_http"))
	e.Use(middleware.Session(d.Codec, d.Denylist, d.Log))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.AuthService, d.Codec, d.Secure, d.Log)
	products := handler.NewProductHandler(d.Backend, d.AuditSink)
	categories := handler.NewCategoryHandler(d.Backend, d.AuditSink)
	brands := handler.NewBrandHandler(d.Backend, d.AuditSink)
	customers := handler.NewCustomerHandler(d.Backend, d.AuditSink)
	suppliers := handler.NewSupplierHandler(d.Backend, d.AuditSink)
	stores := handler.NewStoreHandler(d.Backend, d.AuditSink)
	users := handler.NewUserHandler(d.Backend, d.AuditSink)
	inventory := handler.NewInventoryHandler(d.Backend, d.AuditSink)
	sales := handler.NewSaleHandler(d.Backend, d.AuditSink)
	dashboard := handler.NewDashboardHandler(d.Backend)
	barcodes := handler.NewBarcodeHandler(d.Backend, d.AuditSink)

	requireAuth := middleware.RequireAuth()
	adminOnly := middleware.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin)

	v1 := e.Group("/v1")

	// --- Auth ---
	auth := v1.Group("/auth")
	if d.RateStore != nil {
		auth.POST("/login", authHandler.Login, middleware.RateLimit(d.RateStore, d.RateLimit, d.RateWindow, d.Log))
	} else {
		auth.POST("/login", authHandler.Login)
	}
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)

	// --- Catalog ---
	v1.GET("/products", products.List)
	v1.POST("/products", products.Create, requireAuth)
	v1.GET("/products/:id", products.Get)
	v1.PUT("/products/:id", products.Update, requireAuth)
	v1.DELETE("/products/:id", products.Delete, requireAuth)

	v1.GET("/categories", categories.List)
	v1.POST("/categories", categories.Create, requireAuth)
	v1.GET("/categories/:id", categories.Get)
	v1.GET("/categories/:id/products", categories.Products)
	v1.PUT("/categories/:id", categories.Update, requireAuth)
	v1.DELETE("/categories/:id", categories.Delete, requireAuth)

	v1.GET("/brands", brands.List)
	v1.GET("/brands/stats", brands.Stats, requireAuth)
	v1.POST("/brands", brands.Create, requireAuth)
	v1.PUT("/brands/:id", brands.Update, requireAuth)
	v1.DELETE("/brands/:id", brands.Delete, requireAuth)

	// --- Customers and suppliers ---
	v1.GET("/customers", customers.List, requireAuth)
	v1.POST("/customers", customers.Create, requireAuth)
	v1.GET("/customers/phone/:phone", customers.ByPhone, requireAuth)
	v1.GET("/customers/:id", customers.Get, requireAuth)
	v1.PUT("/customers/:id", customers.Update, requireAuth)
	v1.DELETE("/customers/:id", customers.Delete, requireAuth)

	v1.GET("/suppliers", suppliers.List, requireAuth)
	v1.POST("/suppliers", suppliers.Create, requireAuth)
	v1.GET("/suppliers/:id", suppliers.Get, requireAuth)
	v1.PUT("/suppliers/:id", suppliers.Update, requireAuth)
	v1.DELETE("/suppliers/:id", suppliers.Delete, requireAuth)
	v1.DELETE("/suppliers/:id/permanent", suppliers.PermanentDelete, requireAuth, adminOnly)
	v1.POST("/suppliers/:id/restore", suppliers.Restore, requireAuth, adminOnly)

	// --- Stores and staff: management territory ---
	v1.GET("/stores", stores.List, requireAuth)
	v1.POST("/stores", stores.Create, requireAuth, adminOnly)
	v1.GET("/stores/:id", stores.Get, requireAuth)
	v1.PUT("/stores/:id", stores.Update, requireAuth, adminOnly)
	v1.DELETE("/stores/:id", stores.Delete, requireAuth, adminOnly)

	v1.GET("/users/me", users.Me, requireAuth)
	v1.GET("/users", users.List, requireAuth, adminOnly)
	v1.POST("/users", users.Create, requireAuth, adminOnly)
	v1.GET("/users/:id", users.Get, requireAuth, adminOnly)
	v1.PUT("/users/:id", users.Update, requireAuth, adminOnly)
	v1.DELETE("/users/:id", users.Delete, requireAuth, adminOnly)

	// --- Inventory ---
	v1.GET("/inventory", inventory.List, requireAuth)
	v1.POST("/inventory/adjust", inventory.Adjust, requireAuth)
	v1.POST("/inventory/adjust/batch", inventory.AdjustBatch, requireAuth)
	v1.POST("/inventory/transfer", inventory.Transfer, requireAuth)
	v1.GET("/inventory/alerts/low-stock", inventory.LowStock, requireAuth)

	// --- Sales, dashboard, reports ---
	v1.GET("/sales", sales.List, requireAuth)
	v1.POST("/sales", sales.Create, requireAuth)
	v1.GET("/sales/:id", sales.Get, requireAuth)

	v1.GET("/dashboard/overview", dashboard.Overview, requireAuth)
	v1.GET("/dashboard/stats", dashboard.Stats, requireAuth)
	v1.GET("/reports/:kind", dashboard.Report, requireAuth, adminOnly)

	// --- Barcodes ---
	v1.GET("/barcodes", barcodes.List, requireAuth)
	v1.POST("/barcodes", barcodes.Create, requireAuth)
	v1.POST("/barcodes/generate", barcodes.Generate, requireAuth)
	v1.GET("/barcodes/check", barcodes.Check, requireAuth)

	return e
}

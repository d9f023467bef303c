package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/pawscare/vetgate/docs"
	"github.com/pawscare/vetgate/internal/api/handler"
	"github.com/pawscare/vetgate/internal/api/middleware"
	"github.com/pawscare/vetgate/internal/core/ports"
)

// NewRouter builds the Echo instance with all routes registered. Everything
// except the auth endpoints, health probes, metrics and docs sits behind the
// route guard.
// rdb may be nil when the gateway runs on the in-memory session store.
// secureCookies marks the session cookie HTTPS-only and should follow the
// deployment environment.
func NewRouter(backend ports.Backend, sessions ports.SessionService, rdb *redis.Client, loginRoute string, secureCookies bool, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vetgate"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(sessions, secureCookies)
	dashboardHandler := handler.NewDashboardHandler(backend)
	petHandler := handler.NewPetHandler(backend)
	parentHandler := handler.NewPetParentHandler(backend)
	appointmentHandler := handler.NewAppointmentHandler(backend)
	billingHandler := handler.NewBillingHandler(backend)
	inventoryHandler := handler.NewInventoryHandler(backend)
	userHandler := handler.NewUserHandler(backend)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Guarded routes ---
	guarded := e.Group("", middleware.Guard(sessions, loginRoute))

	guarded.GET("/auth/me", authHandler.Me)
	guarded.GET("/clinic/dashboard", dashboardHandler.Get)

	guarded.GET("/pets", petHandler.List)
	guarded.POST("/pets", petHandler.Create)
	guarded.GET("/pets/:id", petHandler.Get)
	guarded.PUT("/pets/:id", petHandler.Update)
	guarded.DELETE("/pets/:id", petHandler.Delete)
	guarded.GET("/pets/:id/medical_records", petHandler.MedicalRecords)

	guarded.GET("/pet_parents", parentHandler.List)
	guarded.POST("/pet_parents", parentHandler.Create)
	guarded.GET("/pet_parents/:id", parentHandler.Get)
	guarded.PUT("/pet_parents/:id", parentHandler.Update)
	guarded.DELETE("/pet_parents/:id", parentHandler.Delete)

	guarded.GET("/appointments", appointmentHandler.List)
	guarded.POST("/appointments", appointmentHandler.Create)
	guarded.GET("/appointments/:id", appointmentHandler.Get)
	guarded.PUT("/appointments/:id", appointmentHandler.Update)
	guarded.DELETE("/appointments/:id", appointmentHandler.Delete)

	guarded.GET("/invoices", billingHandler.ListInvoices)
	guarded.POST("/invoices", billingHandler.CreateInvoice)
	guarded.GET("/invoices/:id", billingHandler.GetInvoice)
	guarded.PUT("/invoices/:id", billingHandler.UpdateInvoice)
	guarded.POST("/payments", billingHandler.CreatePayment)

	guarded.GET("/inventory", inventoryHandler.List)
	guarded.POST("/inventory", inventoryHandler.Create)
	guarded.GET("/inventory/:id", inventoryHandler.Get)
	guarded.PUT("/inventory/:id", inventoryHandler.Update)
	guarded.DELETE("/inventory/:id", inventoryHandler.Delete)

	guarded.GET("/users", userHandler.List)
	guarded.POST("/users", userHandler.Create)
	guarded.GET("/users/:id", userHandler.Get)
	guarded.PUT("/users/:id", userHandler.Update)
	guarded.DELETE("/users/:id", userHandler.Delete)

	return e
}

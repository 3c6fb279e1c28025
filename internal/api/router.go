package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hoteldomar/reservation-admin/docs"
	"github.com/hoteldomar/reservation-admin/internal/api/handler"
	"github.com/hoteldomar/reservation-admin/internal/api/middleware"
	"github.com/hoteldomar/reservation-admin/internal/core/service"
	"github.com/hoteldomar/reservation-admin/internal/document"
	redisinfra "github.com/hoteldomar/reservation-admin/internal/infrastructure/db/redis"
	"github.com/hoteldomar/reservation-admin/internal/infrastructure/gateway"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(gw *gateway.Client, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hoteladmin"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	clienteGW := gateway.NewClienteAPI(gw)
	roomGW := gateway.NewRoomAPI(gw)
	reservationGW := gateway.NewReservationAPI(gw)
	authGW := gateway.NewAuthAPI(gw)

	reservationService := service.NewReservationService(
		reservationGW,
		roomGW,
		clienteGW,
		redisinfra.NewSubmitLock(rdb),
		redisinfra.NewDeleteConfirmer(rdb),
		log,
	)
	docs := document.NewGenerator()

	authHandler := handler.NewAuthHandler(authGW)
	clienteHandler := handler.NewClienteHandler(clienteGW)
	roomHandler := handler.NewRoomHandler(roomGW, reservationService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	documentHandler := handler.NewDocumentHandler(reservationService, docs)

	// --- Auth routes (no session required) ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/logout", authHandler.Logout)
	e.GET("/v1/auth/check", authHandler.Check)

	// --- Session-guarded routes ---
	v1 := e.Group("/v1", middleware.Session(authGW))

	v1.GET("/clientes", clienteHandler.Search)
	v1.POST("/clientes", clienteHandler.Create)
	v1.GET("/clientes/:id", clienteHandler.Get)
	v1.PUT("/clientes/:id", clienteHandler.Update)
	v1.DELETE("/clientes/:id", clienteHandler.Delete)

	v1.GET("/quartos", roomHandler.List)
	v1.POST("/quartos", roomHandler.Create)
	v1.GET("/quartos/:id", roomHandler.Get)
	v1.PUT("/quartos/:id", roomHandler.Update)
	v1.DELETE("/quartos/:id", roomHandler.Delete)

	v1.GET("/reservas", reservationHandler.List)
	v1.POST("/reservas", reservationHandler.Create)
	v1.GET("/reservas/documento", documentHandler.ExportAll)
	v1.GET("/reservas/:id", reservationHandler.Get)
	v1.PUT("/reservas/:id", reservationHandler.Update)
	v1.DELETE("/reservas/:id", reservationHandler.Delete)
	v1.POST("/reservas/:id/confirmacao", reservationHandler.RequestDelete)
	v1.GET("/reservas/:id/documento", documentHandler.ExportOne)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, gw)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

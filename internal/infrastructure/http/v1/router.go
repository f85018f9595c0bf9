// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"heladero/internal/domain/balance"
	"heladero/internal/domain/expenses"
	"heladero/internal/domain/orders"
	"heladero/internal/domain/pricing"
	"heladero/internal/infrastructure/http/v1/handlers"
	"heladero/internal/infrastructure/http/v1/middleware"
	"heladero/internal/infrastructure/storage/postgres"
	"heladero/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool     *postgres.Pool
	Logger   *logger.Logger
	Pedidos  *orders.Service
	Precios  *pricing.Service
	Gastos   *expenses.Service
	Balances *balance.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	pedidosHandler := handlers.NewPedidosHandler(base, cfg.Pedidos)
	preciosHandler := handlers.NewPreciosHandler(base, cfg.Precios)
	gastosHandler := handlers.NewGastosHandler(base, cfg.Gastos)
	balancesHandler := handlers.NewBalancesHandler(base, cfg.Balances)

	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	api := router.Group("/api/v1")
	{
		pedidos := api.Group("/pedidos")
		{
			pedidos.POST("", pedidosHandler.Crear)
			pedidos.GET("", pedidosHandler.Listar)
			pedidos.GET("/:id", pedidosHandler.Obtener)
			pedidos.PUT("/:id", pedidosHandler.Editar)
			pedidos.PATCH("/:id/estado", pedidosHandler.ActualizarEstado)
			pedidos.PATCH("/:id/pagado", pedidosHandler.ActualizarPagado)
			pedidos.PATCH("/:id/enviado", pedidosHandler.ActualizarEnviado)
			pedidos.PATCH("/:id/costo-envio", pedidosHandler.ActualizarCostoEnvio)
			pedidos.POST("/bulk/estado", pedidosHandler.BulkEstado)
			pedidos.POST("/bulk/pagado", pedidosHandler.BulkPagado)
			pedidos.POST("/bulk/enviado", pedidosHandler.BulkEnviado)
		}

		listas := api.Group("/listas-precios")
		{
			listas.POST("", preciosHandler.CrearLista)
			listas.GET("/activa", preciosHandler.ListaActiva)
		}
		api.POST("/precios/resolver", preciosHandler.ResolverPrecios)

		gastos := api.Group("/gastos")
		{
			gastos.POST("", gastosHandler.Crear)
			gastos.GET("", gastosHandler.Listar)
			gastos.DELETE("/:id", gastosHandler.Eliminar)
		}

		balances := api.Group("/balances")
		{
			balances.GET("", balancesHandler.Obtener)
			balances.GET("/rango", balancesHandler.ObtenerRango)
		}
	}

	return router
}

package handler

import (
	"net/http"

	"scrap-market/internal/domain/user"
	"scrap-market/internal/handler/api"
	"scrap-market/internal/handler/middleware"
	"scrap-market/internal/infra/metrics"
	"scrap-market/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// NewEngine builds the engine every service shares: the global middleware
// chain and the ops endpoints. Domain routes are added by the Register*
// functions below.
func NewEngine(cfg config.Config, service string, logger *middleware.Logger, recorder metrics.Recorder, gatherer prometheus.Gatherer) *gin.Engine {
	engine := gin.New()
	setupMiddleware(engine, cfg, service, logger, recorder)

	engine.GET("/health", healthCheck(service))
	engine.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return engine
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, service string, logger *middleware.Logger, recorder metrics.Recorder) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Metrics(service, recorder))
}

func RegisterIdentityRoutes(engine *gin.Engine, authHandler *api.AuthHandler, authMiddleware *middleware.AuthMiddleware) {
	auth := engine.Group("/api/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
		})

		authRequired := auth.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/verify", Handler: authHandler.Verify},
			{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
		})
	}
}

func RegisterLedgerRoutes(engine *gin.Engine, requestHandler *api.RequestHandler, authMiddleware *middleware.AuthMiddleware) {
	requests := engine.Group("/api/users/requests")
	requests.Use(authMiddleware.RequireAuth())
	{
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: requestHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: requestHandler.List},
			{
				Method:  http.MethodGet,
				Path:    "/all",
				Handler: requestHandler.ListAll,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleDealer, user.RoleAdmin)},
			},
			{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.Get},
			{Method: http.MethodPut, Path: "/:id/status", Handler: requestHandler.UpdateStatus},
			{Method: http.MethodGet, Path: "/:id/history", Handler: requestHandler.History},
		})
	}
}

func RegisterPricingRoutes(engine *gin.Engine, pricingHandler *api.PricingHandler) {
	pricing := engine.Group("/api/pricing")
	{
		addRoutes(pricing, []route{
			{Method: http.MethodPost, Path: "/calculate", Handler: pricingHandler.Calculate},
		})
	}
}

func RegisterCoordinatorRoutes(engine *gin.Engine, dealerHandler *api.DealerHandler, adminHandler *api.AdminHandler, authMiddleware *middleware.AuthMiddleware) {
	dealers := engine.Group("/api/dealers")
	dealers.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleDealer))
	{
		addRoutes(dealers, []route{
			{Method: http.MethodGet, Path: "/available-requests", Handler: dealerHandler.AvailableRequests},
			{Method: http.MethodPost, Path: "/requests/:id/accept", Handler: dealerHandler.Accept},
			{Method: http.MethodPost, Path: "/requests/:id/complete", Handler: dealerHandler.Complete},
			{Method: http.MethodGet, Path: "/dashboard", Handler: dealerHandler.Dashboard},
			{Method: http.MethodGet, Path: "/transactions", Handler: dealerHandler.Transactions},
			{Method: http.MethodGet, Path: "/my-requests", Handler: dealerHandler.MyRequests},
		})
	}

	admin := engine.Group("/api/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
	{
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/assignments", Handler: adminHandler.Assignments},
			{Method: http.MethodGet, Path: "/dealers", Handler: adminHandler.Dealers},
			{Method: http.MethodGet, Path: "/propagation", Handler: adminHandler.Propagation},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": service,
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"dryclean-api/internal/handler/api"
	"dryclean-api/internal/handler/middleware"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth          *api.AuthHandler
	PasswordReset *api.PasswordResetHandler
	Order         *api.OrderHandler
	Price         *api.PriceHandler
	Branch        *api.BranchHandler
	Contact       *api.ContactHandler
	Admin         *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, reqLogger *middleware.Logger, logger *slog.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, reqLogger, m)
	setupRoutes(engine, m, h, authMiddleware)
	logger.Info("routes registered", "count", len(engine.Routes()))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, reqLogger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(reqLogger.LoggingMiddleware())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	customerOnly := []gin.HandlerFunc{requireAuth, authMiddleware.RequireCustomer()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/prices", Handler: h.Price.List},
			{Method: http.MethodGet, Path: "/branches", Handler: h.Branch.ListActive},
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/password-reset/request", Handler: h.PasswordReset.RequestCode},
				{Method: http.MethodPost, Path: "/password-reset/verify", Handler: h.PasswordReset.VerifyCode},
				{Method: http.MethodPost, Path: "/password-reset/complete", Handler: h.PasswordReset.Complete},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPut, Path: "/password", Handler: h.Auth.ChangePassword},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: h.Order.Quote},
				{Method: http.MethodPost, Path: "/track", Handler: h.Order.Track},
				{Method: http.MethodPost, Path: "", Handler: h.Order.Create, Mw: customerOnly},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListMine, Mw: customerOnly},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.AdminLogin},
			})

			adminOnly := admin.Group("")
			adminOnly.Use(requireAuth, authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Admin.Dashboard},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Admin.ListOrders},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: h.Admin.UpdateStatus},
				{Method: http.MethodGet, Path: "/customers", Handler: h.Admin.ListCustomers},
				{Method: http.MethodGet, Path: "/messages", Handler: h.Admin.ListMessages},
				{Method: http.MethodPut, Path: "/prices", Handler: h.Price.Update},
				{Method: http.MethodGet, Path: "/branches", Handler: h.Branch.ListAll},
				{Method: http.MethodPost, Path: "/branches", Handler: h.Branch.Create},
				{Method: http.MethodPut, Path: "/branches/:id", Handler: h.Branch.Update},
				{Method: http.MethodDelete, Path: "/branches/:id", Handler: h.Branch.Deactivate},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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

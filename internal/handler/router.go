package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers so the router signature stays stable as resources are added.
type Handlers struct {
	Auth        *api.AuthHandler
	Booking     *api.BookingHandler
	Hotel       *api.HotelHandler
	Room        *api.RoomHandler
	Payment     *api.PaymentHandler
	Transaction *api.TransactionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, reg *prometheus.Registry, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, reg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reg *prometheus.Registry, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	adminOnly := authMiddleware.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/google", Handler: h.Auth.GoogleLogin},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "/search", Handler: h.Hotel.Search},
				{Method: http.MethodGet, Path: "/all", Handler: h.Hotel.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Hotel.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Hotel.Create, Mw: []gin.HandlerFunc{requireAuth, adminOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Hotel.Update, Mw: []gin.HandlerFunc{requireAuth, adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Hotel.Delete, Mw: []gin.HandlerFunc{requireAuth, adminOnly}},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: []gin.HandlerFunc{requireAuth, adminOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.Update, Mw: []gin.HandlerFunc{requireAuth, adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete, Mw: []gin.HandlerFunc{requireAuth, adminOnly}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/my-bookings", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Booking.Stats, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListAll, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateStatus, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(requireAuth)
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/create-intent", Handler: h.Payment.CreateIntent},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Payment.Verify},
			})
		}

		transactions := apiGroup.Group("/transactions")
		transactions.Use(requireAuth)
		{
			addRoutes(transactions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Transaction.ListMine},
				{Method: http.MethodPost, Path: "", Handler: h.Transaction.Create},
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

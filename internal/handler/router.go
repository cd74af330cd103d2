package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cape-tours-api/internal/handler/api"
	"cape-tours-api/internal/handler/middleware"
	"cape-tours-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth           *api.AuthHandler
	Booking        *api.BookingHandler
	Availability   *api.AvailabilityHandler
	Unavailability *api.UnavailabilityHandler
	Tour           *api.TourHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, rdb *redis.Client) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware, rdb)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, rdb *redis.Client) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	bookingLimiter := middleware.NewRateLimiter(cfg.RateLimit, rdb)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: handlers.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/tours", Handler: handlers.Tour.ListTours},
			{Method: http.MethodGet, Path: "/availability", Handler: handlers.Availability.GetAvailability},
		})

		bookings := apiGroup.Group("/bookings")
		{
			// Create is public so the funnel works without an account; the
			// limiter throttles it, and OptionalAuth links logged-in customers
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Booking.CreateBooking,
					Mw: []gin.HandlerFunc{bookingLimiter, authMiddleware.OptionalAuth()}},
			})

			authed := bookings.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Booking.GetBooking},
				{Method: http.MethodPatch, Path: "/:id", Handler: handlers.Booking.TransitionBooking},
			})
		}

		drivers := apiGroup.Group("/drivers")
		drivers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(drivers, []route{
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: handlers.Booking.ListDriverBookings},
				{Method: http.MethodGet, Path: "/:id/unavailability", Handler: handlers.Unavailability.ListBlocks},
				{Method: http.MethodPost, Path: "/:id/unavailability", Handler: handlers.Unavailability.CreateBlock},
				{Method: http.MethodDelete, Path: "/:id/unavailability/:date", Handler: handlers.Unavailability.DeleteBlock},
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studio-booking/internal/handler/api"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/queries"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Chat        *api.ChatHandler
	Calendar    *api.CalendarHandler
	Offer       *api.OfferHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	chat *api.ChatHandler,
	calendar *api.CalendarHandler,
	offer *api.OfferHandler,
) Handlers {
	return Handlers{
		Auth:        auth,
		Reservation: reservation,
		Chat:        chat,
		Calendar:    calendar,
		Offer:       offer,
	}
}

// NewRouter wires every route. rdb may be nil, which disables rate limiting.
func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, reservationQueries queries.ReservationQueries, rdb *redis.Client) {
	setupMiddleware(engine, cfg)

	var limiter redis.Scripter
	if rdb != nil {
		limiter = rdb
	}
	guard := middleware.RequireReservationAccess(reservationQueries)
	setupRoutes(engine, h, authMiddleware, guard, middleware.RateLimit(cfg.RateLimit, limiter))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, guard, rateLimit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/offers", Handler: h.Offer.List},
			{Method: http.MethodGet, Path: "/offers/:id", Handler: h.Offer.Get},
			{Method: http.MethodPost, Path: "/discount-codes/verify", Handler: h.Offer.VerifyDiscount},
		})

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodPost, Path: "/:code/access", Handler: h.Reservation.Access},
				{Method: http.MethodGet, Path: "/:code", Handler: h.Reservation.Get},
				{Method: http.MethodGet, Path: "/:code/messages", Handler: h.Chat.ClientFetch, Mw: []gin.HandlerFunc{guard}},
				{Method: http.MethodPost, Path: "/:code/messages", Handler: h.Chat.ClientSend, Mw: []gin.HandlerFunc{guard}},
				{Method: http.MethodPost, Path: "/:code/typing", Handler: h.Chat.ClientTyping, Mw: []gin.HandlerFunc{guard}},
				{Method: http.MethodGet, Path: "/:code/calendar", Handler: h.Calendar.Links, Mw: []gin.HandlerFunc{guard}},
				{Method: http.MethodGet, Path: "/:code/calendar.ics", Handler: h.Calendar.Download, Mw: []gin.HandlerFunc{guard}},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			// token-protected for calendar clients that cannot send a JWT
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Calendar.Feed},
			})

			secured := admin.Group("")
			secured.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(secured, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.GetByID},
				{Method: http.MethodPatch, Path: "/reservations/:id", Handler: h.Reservation.UpdateDetails},
				{Method: http.MethodPatch, Path: "/reservations/:id/status", Handler: h.Reservation.UpdateStatus},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.Delete},
				{Method: http.MethodGet, Path: "/reservations/:id/messages", Handler: h.Chat.AdminFetch},
				{Method: http.MethodPost, Path: "/reservations/:id/messages", Handler: h.Chat.AdminSend},
				{Method: http.MethodPost, Path: "/reservations/:id/typing", Handler: h.Chat.AdminTyping},
				{Method: http.MethodPost, Path: "/offers", Handler: h.Offer.Create},
				{Method: http.MethodPut, Path: "/offers/:id", Handler: h.Offer.Update},
				{Method: http.MethodDelete, Path: "/offers/:id", Handler: h.Offer.Delete},
				{Method: http.MethodGet, Path: "/discount-codes", Handler: h.Offer.ListDiscounts},
				{Method: http.MethodPost, Path: "/discount-codes", Handler: h.Offer.CreateDiscount},
				{Method: http.MethodPut, Path: "/account", Handler: h.Auth.UpdateAccount},
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

package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"beacon-backend/application/service"
	"beacon-backend/interfaces/http/rest/handlers"
	"beacon-backend/interfaces/http/rest/middleware"
	"beacon-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	svc        service.NotificationService
	limiter    *auth.IPRateLimiter
	logger     *zap.Logger
	enableCORS bool
}

// NewRouter creates a new router instance
func NewRouter(svc service.NotificationService, limiter *auth.IPRateLimiter, enableCORS bool, logger *zap.Logger) *Router {
	return &Router{
		svc:        svc,
		limiter:    limiter,
		logger:     logger,
		enableCORS: enableCORS,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.RateLimit(rt.limiter, rt.logger))

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.beacon.dev"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	accountHandler := handlers.NewAccountHandler(rt.svc, rt.logger)
	appHandler := handlers.NewApplicationHandler(rt.svc, rt.logger)
	messageHandler := handlers.NewMessageHandler(rt.svc, rt.logger)
	userHandler := handlers.NewUserHandler(rt.svc, rt.logger)

	router.Route("/api/v1", func(r chi.Router) {
		// Endpoints exempt from authentication
		r.Get("/version", accountHandler.GetAPIVersion)
		r.Post("/signin", accountHandler.SignIn)
		r.Post("/signup", accountHandler.SignUp)

		// Application lifecycle. Token checks happen inside the service;
		// the router does not gate these routes itself.
		r.Route("/applications", func(r chi.Router) {
			r.Post("/", appHandler.Provision)
			r.Get("/mine", appHandler.GetMine)
			r.Get("/search", appHandler.Search)
			r.Get("/{applicationID}", appHandler.GetInfo)
			r.Delete("/{applicationID}", appHandler.Delete)
			r.Post("/{applicationID}/token", appHandler.RegenerateToken)
			r.Post("/{applicationID}/follow", appHandler.Follow)
			r.Delete("/{applicationID}/follow", appHandler.Unfollow)
			r.Post("/{applicationID}/messages", messageHandler.Send)
			r.Get("/{applicationID}/messages/{messageID}", messageHandler.GetFullMessage)
		})

		// Inbox and dashboard
		r.Get("/inbox", messageHandler.GetInbox)
		r.Post("/inbox/dismiss", messageHandler.Dismiss)
		r.Get("/dashboard", messageHandler.GetDashboard)

		// Profile, activity, media
		r.Get("/activity", userHandler.GetActivity)
		r.Get("/users/me", userHandler.GetMe)
		r.Get("/users/{userID}", userHandler.GetUser)
		r.Get("/media/{mediaID}", userHandler.GetMedia)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

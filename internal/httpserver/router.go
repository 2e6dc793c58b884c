package httpserver

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "travelmate/docs"
	"travelmate/internal/config"
	"travelmate/internal/metrics"
	"travelmate/internal/security"
	"travelmate/internal/service"
	"travelmate/internal/store/sqlite"
)

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// NewRouter constructs the main HTTP router and wires routes, services, and middleware.
func NewRouter(cfg *config.Config, db *sql.DB, log *zap.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(m.Instrument)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Repositories
	personRepo := sqlite.NewPersonRepo(db)
	chatRepo := sqlite.NewChatRepo(db)
	msgRepo := sqlite.NewMessageRepo(db)
	partRepo := sqlite.NewParticipantRepo(db)

	// Services
	chatSvc := service.NewChatService(chatRepo, partRepo, msgRepo, personRepo, m, cfg.EnforceSenderMembership)
	personSvc := service.NewPersonService(personRepo, chatRepo, security.NewPasswordHasher(cfg.BcryptCost))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rootResponse{Message: cfg.AppName, Version: "1.0.0", Docs: "/docs"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			log.Warn("health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	// Swagger documentation
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Chats and messages
	r.Get("/chats/{id}", handleListChatsForPerson(chatSvc, log))
	r.Get("/messages/{id}", handleListMessages(chatSvc, log))
	r.Route("/chat", func(r chi.Router) {
		r.Post("/", handleCreateChat(chatSvc, log))
		r.Put("/message", handleAddMessage(chatSvc, log))
		r.Get("/{id}", handleGetChat(chatSvc, log))
	})

	// Persons
	r.Route("/person", func(r chi.Router) {
		r.Get("/", handleListPersons(personSvc, log))
		r.Post("/", handleCreatePerson(personSvc, log))
		r.Get("/{id}", handleGetPerson(personSvc, log))
		r.Get("/{id}/details", handleGetPersonDetails(personSvc, log))
		r.Put("/{id}", handleUpdatePerson(personSvc, log))
		r.Delete("/{id}", handleDeletePerson(personSvc, log))
	})

	return r
}

// README: API gateway; builds the gin engine and registers itinerary routes.
package http

import (
	"io"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripbrief/internal/http/handlers"
	"tripbrief/internal/http/middleware"
	"tripbrief/internal/infra"
	"tripbrief/internal/modules/itinerary"
)

type ServerDeps struct {
	Itinerary      *itinerary.Service
	Verifier       infra.TokenVerifier // nil disables auth
	Logger         *slog.Logger
	CORSOrigins    []string
	RequestTimeout time.Duration
}

type Server struct {
	itinerary      *itinerary.Service
	verifier       infra.TokenVerifier
	logger         *slog.Logger
	corsOrigins    []string
	requestTimeout time.Duration
}

func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		itinerary:      deps.Itinerary,
		verifier:       deps.Verifier,
		logger:         logger,
		corsOrigins:    deps.CORSOrigins,
		requestTimeout: deps.RequestTimeout,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(s.logger), middleware.Logging(s.logger), cors.New(s.corsConfig()))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	if s.verifier != nil {
		api.Use(middleware.Auth(s.verifier))
	}

	itineraryHandler := handlers.NewItineraryHandler(s.itinerary, s.requestTimeout, s.logger)
	api.GET("/itinerary", itineraryHandler.Get)
	api.POST("/itinerary", itineraryHandler.Create)

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(s.corsOrigins) == 0 || slices.Contains(s.corsOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.corsOrigins
	}
	return cfg
}

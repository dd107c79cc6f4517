package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"event-task-suggester/config"
	"event-task-suggester/internal/feedback"
	"event-task-suggester/internal/suggestion"
	"event-task-suggester/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Suggestion domain
	suggestionUC suggestion.UseCase
	feedback     feedback.Store
	rateLimit    config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	SuggestionUC suggestion.UseCase
	Feedback     feedback.Store
	RateLimit    config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		suggestionUC: cfg.SuggestionUC,
		feedback:     cfg.Feedback,
		rateLimit:    cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.suggestionUC == nil {
		return errors.New("suggestion usecase is required")
	}
	if srv.feedback == nil {
		return errors.New("feedback store is required")
	}
	return nil
}

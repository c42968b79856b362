package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sreecharan/portfolio-agent/chat"
	"github.com/sreecharan/portfolio-agent/config"
	"github.com/sreecharan/portfolio-agent/profile"
)

const serviceName = "portfolio-agent"

// Server exposes the HTTP facade: chat, health, portfolio summary and the
// static image routes. All business logic lives in the chat service.
type Server struct {
	cfg    config.Config
	store  *profile.Store
	chat   *chat.Service
	logger *log.Logger
	engine *gin.Engine
}

func New(cfg config.Config, store *profile.Store, chatSvc *chat.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:    cfg,
		store:  store,
		chat:   chatSvc,
		logger: logger,
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(cors.Default())
	r.Use(RequestID())
	r.Use(s.recovery())

	r.GET("/", s.handleRoot)
	r.POST("/chat", s.handleChat)
	r.GET("/health", s.handleHealth)
	r.GET("/portfolio-summary", s.handleSummary)

	assets := s.cfg.AssetsDir
	r.Static("/hackathons", filepath.Join(assets, "hackathons"))
	r.Static("/projects", filepath.Join(assets, "projects"))
	r.Static("/member-photoes", filepath.Join(assets, "member-photoes"))

	// Deprecated aliases kept for older frontend builds.
	r.Static("/photo", filepath.Join(assets, "member-photoes"))
	r.Static("/projectfolder", filepath.Join(assets, "projects"))

	return r
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then drains in-flight
// requests before returning.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

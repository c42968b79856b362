package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status              string    `json:"status"`
	Service             string    `json:"service"`
	Version             string    `json:"version"`
	PortfolioDataLoaded bool      `json:"portfolio_data_loaded"`
	DefaultProfile      bool      `json:"default_profile"`
	ProjectsCount       int       `json:"projects_count"`
	LLMConfigured       bool      `json:"llm_configured"`
	RetrievalMode       string    `json:"retrieval_mode"`
	Timestamp           time.Time `json:"timestamp"`
}

func (s *Server) handleHealth(c *gin.Context) {
	p := s.store.Profile()

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: s.cfg.Version,
		// The store always holds a document: either the on-disk profile
		// or the built-in default.
		PortfolioDataLoaded: true,
		DefaultProfile:      s.store.UsingDefault(),
		ProjectsCount:       len(p.Projects),
		LLMConfigured:       s.cfg.LLMConfigured(),
		RetrievalMode:       s.cfg.RetrievalMode,
		Timestamp:           time.Now().UTC(),
	})
}

package api

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sreecharan/portfolio-agent/chat"
)

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Answer           string   `json:"answer"`
	Images           []string `json:"images"`
	RelevantSections []string `json:"relevant_sections"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "Hi, this is %s", s.store.Profile().Name)
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	resp, err := s.chat.Chat(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Answer:           resp.Answer,
		Images:           emptyIfNil(resp.Images),
		RelevantSections: emptyIfNil(resp.RelevantSections),
	})
}

func (s *Server) handleSummary(c *gin.Context) {
	p := s.store.Profile()

	categories := make([]string, 0, len(p.Skills))
	for category := range p.Skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	c.JSON(http.StatusOK, gin.H{
		"name":             p.Name,
		"title":            p.Title,
		"technologies":     emptyIfNil(p.Technologies),
		"skill_categories": categories,
		"projects_count":   len(p.Projects),
		"hackathons_count": len(p.Hackathons.Events),
		"contact":          p.Contact,
	})
}

// emptyIfNil keeps the JSON arrays as [] instead of null for empty results.
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID ensures every request carries a stable request ID: the
// X-Request-Id header is honored when present, generated otherwise, and
// echoed back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader("X-Request-Id"))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("request_id", rid)
		c.Writer.Header().Set("X-Request-Id", rid)
		c.Next()
	}
}

// recovery catches panics at the top of the request and renders them as an
// apologetic answer embedding the panic text. Nothing at request scope is
// allowed to kill the process.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Printf("panic in %s %s: %v", c.Request.Method, c.Request.URL.Path, rec)
				c.AbortWithStatusJSON(http.StatusOK, gin.H{
					"answer": fmt.Sprintf("I'm sorry, something went wrong on my side: %v. Please try again.", rec),
				})
			}
		}()
		c.Next()
	}
}

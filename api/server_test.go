package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreecharan/portfolio-agent/api"
	"github.com/sreecharan/portfolio-agent/chat"
	"github.com/sreecharan/portfolio-agent/config"
	"github.com/sreecharan/portfolio-agent/llm"
	"github.com/sreecharan/portfolio-agent/match"
	"github.com/sreecharan/portfolio-agent/profile"
)

type stubLLM struct {
	answer string
	err    error
	calls  int
}

func (s *stubLLM) Generate(ctx context.Context, messages []llm.Message) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

var _ llm.Client = (*stubLLM)(nil)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Version:       "test",
		RetrievalMode: config.RetrievalKeyword,
		AssetsDir:     t.TempDir(),
		LLM:           config.LLMConfig{Provider: config.ProviderGemini},
	}
}

func newTestServer(t *testing.T, store *profile.Store, generator llm.Client) *api.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := log.New(io.Discard, "", 0)
	cfg := testConfig(t)
	extractor := match.NewKeywordExtractor(store.Profile(), cfg.AssetsDir)
	svc := chat.NewService(extractor, generator, store.Profile(), logger)

	return api.New(cfg, store, svc, logger)
}

func defaultStore(t *testing.T) *profile.Store {
	t.Helper()
	return profile.Load(filepath.Join(t.TempDir(), "missing.json"), log.New(io.Discard, "", 0))
}

func postChat(t *testing.T, server *api.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)
	return rr
}

func TestChatRejectsEmptyQuestion(t *testing.T) {
	generator := &stubLLM{answer: "never"}
	server := newTestServer(t, defaultStore(t), generator)

	for _, body := range []string{`{}`, `{"question": ""}`, `{"question": "   "}`} {
		rr := postChat(t, server, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %s", body)
	}

	assert.Zero(t, generator.calls, "llm must never be called for empty questions")
}

func TestChatReturnsAnswer(t *testing.T) {
	generator := &stubLLM{answer: "Here is the answer."}
	server := newTestServer(t, defaultStore(t), generator)

	rr := postChat(t, server, `{"question": "Who are you?"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Answer           string   `json:"answer"`
		Images           []string `json:"images"`
		RelevantSections []string `json:"relevant_sections"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "Here is the answer.", resp.Answer)
	assert.NotNil(t, resp.Images, "images must encode as [], not null")
	assert.Contains(t, resp.RelevantSections, match.SectionAbout)
}

func TestChatQuotaFailureReturnsCannedAnswer(t *testing.T) {
	generator := &stubLLM{err: errors.New("googleapi: Error 429: quota exceeded")}
	server := newTestServer(t, defaultStore(t), generator)

	rr := postChat(t, server, `{"question": "What skills do you have?"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	answer, _ := resp["answer"].(string)
	assert.NotContains(t, answer, "429")
	assert.NotContains(t, answer, "quota")
}

func TestHealthWithDefaultProfile(t *testing.T) {
	server := newTestServer(t, defaultStore(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "healthy", resp.Status)
	assert.True(t, resp.PortfolioDataLoaded)
	assert.True(t, resp.DefaultProfile)
	assert.Zero(t, resp.ProjectsCount)
	assert.False(t, resp.LLMConfigured)
	assert.Equal(t, config.RetrievalKeyword, resp.RetrievalMode)
}

func TestRootGreeting(t *testing.T) {
	server := newTestServer(t, defaultStore(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hi, this is Sree Charan", rr.Body.String())
}

func TestPortfolioSummary(t *testing.T) {
	server := newTestServer(t, defaultStore(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/portfolio-summary", nil)
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Sree Charan", resp["name"])
	assert.EqualValues(t, 0, resp["projects_count"])
}

func TestRequestIDEchoedAndGenerated(t *testing.T) {
	server := newTestServer(t, defaultStore(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rr = httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

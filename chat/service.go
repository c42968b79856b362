package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sreecharan/portfolio-agent/llm"
	"github.com/sreecharan/portfolio-agent/match"
	"github.com/sreecharan/portfolio-agent/profile"
)

// ErrEmptyQuestion is returned before any retrieval or LLM work happens.
var ErrEmptyQuestion = errors.New("question cannot be empty")

// Retriever produces the context block for a question. Implemented by the
// keyword extractor and the embedding retriever.
type Retriever interface {
	Retrieve(ctx context.Context, question string) (match.Result, error)
}

// Service answers portfolio questions: retrieve context, prompt the LLM,
// and fall back to canned answers when the LLM is absent or out of quota.
type Service struct {
	retriever Retriever
	llm       llm.Client
	profile   profile.Profile
	logger    *log.Logger
}

// NewService wires a chat service. llmClient may be nil, in which case
// every answer comes from the canned templates.
func NewService(retriever Retriever, llmClient llm.Client, p profile.Profile, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}

	return &Service{
		retriever: retriever,
		llm:       llmClient,
		profile:   p,
		logger:    logger,
	}
}

func (s *Service) Chat(ctx context.Context, question string) (Response, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Response{}, ErrEmptyQuestion
	}
	if s.retriever == nil {
		return Response{}, fmt.Errorf("retriever is not configured")
	}

	result, err := s.retriever.Retrieve(ctx, question)
	if err != nil {
		// Retrieval failure degrades to the generic context; the answer
		// still goes out.
		s.logger.Printf("retrieve context: %v", err)
		result = match.Result{}
	}

	contextBlock := result.Context
	if strings.TrimSpace(contextBlock) == "" {
		contextBlock = summaryContext(s.profile)
	}

	if s.llm == nil {
		return s.respond(templateAnswer(question, s.profile), result), nil
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt(s.profile.Name)},
		{Role: llm.RoleUser, Content: formatUserPrompt(question, contextBlock)},
	}

	answer, err := s.llm.Generate(ctx, messages)
	if err != nil {
		if llm.IsQuotaError(err) {
			s.logger.Printf("llm quota exhausted, serving canned answer: %v", err)
			return s.respond(templateAnswer(question, s.profile), result), nil
		}
		s.logger.Printf("llm generate: %v", err)
		return s.respond(apologeticAnswer(err), result), nil
	}

	return s.respond(strings.TrimSpace(answer), result), nil
}

func (s *Service) respond(answer string, result match.Result) Response {
	return Response{
		Answer:           answer,
		Images:           result.Images,
		RelevantSections: result.Sections,
	}
}

// apologeticAnswer embeds the raw provider error; frontends render it
// verbatim as the answer text.
func apologeticAnswer(err error) string {
	return fmt.Sprintf("I'm sorry, I ran into a problem while answering that: %v. Please try again in a moment.", err)
}

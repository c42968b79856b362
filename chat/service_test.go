package chat_test

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/sreecharan/portfolio-agent/chat"
	"github.com/sreecharan/portfolio-agent/llm"
	"github.com/sreecharan/portfolio-agent/match"
	"github.com/sreecharan/portfolio-agent/profile"
)

type stubRetriever struct {
	result match.Result
	err    error
}

func (s *stubRetriever) Retrieve(ctx context.Context, question string) (match.Result, error) {
	if s.err != nil {
		return match.Result{}, s.err
	}
	return s.result, nil
}

var _ chat.Retriever = (*stubRetriever)(nil)

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
	if len(messages) == 0 {
		return "", errors.New("no messages provided")
	}
	return s.answer, nil
}

var _ llm.Client = (*stubLLM)(nil)

func testProfile() profile.Profile {
	return profile.Profile{
		Name:         "Sree Charan",
		Title:        "Full Stack Developer",
		Technologies: []string{"Go", "React"},
		Contact:      profile.Contact{Email: "sree@example.com"},
		Projects: []profile.Project{
			{Name: "Study Buddy"},
			{Name: "Portfolio Chatbot"},
		},
		Hackathons: profile.Hackathons{
			Events: []profile.HackathonEvent{{Event: "Smart India Hackathon"}},
		},
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestChatReturnsAnswerWithImagesAndSections(t *testing.T) {
	retriever := &stubRetriever{result: match.Result{
		Context:  "Project: Study Buddy",
		Images:   []string{"/projects/study-buddy/shot-01.png"},
		Sections: []string{match.SectionProjects},
	}}
	generator := &stubLLM{answer: "Study Buddy is a collaborative study planner."}

	svc := chat.NewService(retriever, generator, testProfile(), discardLogger())

	resp, err := svc.Chat(context.Background(), "Tell me about Study Buddy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Answer != "Study Buddy is a collaborative study planner." {
		t.Fatalf("unexpected answer: %q", resp.Answer)
	}
	if len(resp.Images) != 1 || resp.Images[0] != "/projects/study-buddy/shot-01.png" {
		t.Fatalf("unexpected images: %v", resp.Images)
	}
	if len(resp.RelevantSections) != 1 || resp.RelevantSections[0] != match.SectionProjects {
		t.Fatalf("unexpected sections: %v", resp.RelevantSections)
	}
	if generator.calls != 1 {
		t.Fatalf("expected exactly one llm call, got %d", generator.calls)
	}
}

func TestChatRejectsEmptyQuestionBeforeLLM(t *testing.T) {
	generator := &stubLLM{answer: "never"}
	svc := chat.NewService(&stubRetriever{}, generator, testProfile(), discardLogger())

	_, err := svc.Chat(context.Background(), "   ")
	if !errors.Is(err, chat.ErrEmptyQuestion) {
		t.Fatalf("expected ErrEmptyQuestion, got %v", err)
	}
	if generator.calls != 0 {
		t.Fatalf("llm must not be called for an empty question, got %d calls", generator.calls)
	}
}

func TestChatQuotaFailureServesTemplateNotError(t *testing.T) {
	generator := &stubLLM{err: errors.New("googleapi: Error 429: quota exceeded for quota metric")}
	svc := chat.NewService(&stubRetriever{}, generator, testProfile(), discardLogger())

	resp, err := svc.Chat(context.Background(), "What projects have you built?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(resp.Answer, "429") || strings.Contains(resp.Answer, "quota") {
		t.Fatalf("raw provider error leaked into answer: %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Study Buddy") {
		t.Fatalf("expected the projects template, got %q", resp.Answer)
	}
}

func TestChatGenericFailureApologizesWithErrorText(t *testing.T) {
	generator := &stubLLM{err: errors.New("connection reset by peer")}
	svc := chat.NewService(&stubRetriever{}, generator, testProfile(), discardLogger())

	resp, err := svc.Chat(context.Background(), "What projects have you built?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(resp.Answer, "sorry") && !strings.Contains(resp.Answer, "Sorry") {
		t.Fatalf("expected apologetic answer, got %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "connection reset by peer") {
		t.Fatalf("answer must embed the raw error text, got %q", resp.Answer)
	}
}

func TestChatWithoutLLMServesTemplates(t *testing.T) {
	svc := chat.NewService(&stubRetriever{}, nil, testProfile(), discardLogger())

	cases := []struct {
		question string
		want     string
	}{
		{"Tell me about your work experience", "professional journey"},
		{"What projects have you built?", "Study Buddy"},
		{"Any hackathon wins?", "Smart India Hackathon"},
		{"What skills do you have?", "Go, React"},
		{"Hello there", "portfolio assistant"},
	}

	for _, tc := range cases {
		resp, err := svc.Chat(context.Background(), tc.question)
		if err != nil {
			t.Fatalf("question %q: unexpected error: %v", tc.question, err)
		}
		if !strings.Contains(resp.Answer, tc.want) {
			t.Fatalf("question %q: expected answer containing %q, got %q", tc.question, tc.want, resp.Answer)
		}
	}
}

func TestChatRetrievalErrorStillAnswers(t *testing.T) {
	retriever := &stubRetriever{err: errors.New("embedding backend down")}
	generator := &stubLLM{answer: "still fine"}
	svc := chat.NewService(retriever, generator, testProfile(), discardLogger())

	resp, err := svc.Chat(context.Background(), "What projects have you built?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Answer != "still fine" {
		t.Fatalf("unexpected answer: %q", resp.Answer)
	}
}

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sreecharan/portfolio-agent/api"
	"github.com/sreecharan/portfolio-agent/chat"
	"github.com/sreecharan/portfolio-agent/config"
	"github.com/sreecharan/portfolio-agent/embeddings"
	"github.com/sreecharan/portfolio-agent/llm"
	"github.com/sreecharan/portfolio-agent/match"
	"github.com/sreecharan/portfolio-agent/profile"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	cfg := config.Load()

	switch command {
	case "serve":
		serveCmd(cfg, logger, args)
	case "ask":
		askCmd(cfg, logger, args)
	case "chunks":
		chunksCmd(cfg, logger, args)
	default:
		logger.Printf("unknown command: %s", command)
		printUsage()
		os.Exit(1)
	}
}

func serveCmd(cfg config.Config, logger *log.Logger, args []string) {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	dataFile := flags.String("data", cfg.DataFile, "path to the profile JSON document")
	if err := flags.Parse(args); err != nil {
		logger.Fatalf("parse serve flags: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := profile.Load(*dataFile, logger)

	svc, err := buildChatService(ctx, cfg, store, logger)
	if err != nil {
		logger.Fatalf("chat service setup: %v", err)
	}

	server := api.New(cfg, store, svc, logger)
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	logger.Printf("listening on %s (retrieval mode %s, llm configured %t)", addr, cfg.RetrievalMode, cfg.LLMConfigured())

	if err := server.Run(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("server: %v", err)
	}
}

func askCmd(cfg config.Config, logger *log.Logger, args []string) {
	flags := flag.NewFlagSet("ask", flag.ExitOnError)
	question := flags.String("question", "", "question to ask about the portfolio")
	dataFile := flags.String("data", cfg.DataFile, "path to the profile JSON document")
	if err := flags.Parse(args); err != nil {
		logger.Fatalf("parse ask flags: %v", err)
	}

	if strings.TrimSpace(*question) == "" {
		fmt.Print("Enter your question: ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			*question = scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			logger.Fatalf("read question: %v", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := profile.Load(*dataFile, logger)

	svc, err := buildChatService(ctx, cfg, store, logger)
	if err != nil {
		logger.Fatalf("chat service setup: %v", err)
	}

	resp, err := svc.Chat(ctx, *question)
	if err != nil {
		logger.Fatalf("chat failed: %v", err)
	}

	fmt.Println(resp.Answer)
	if len(resp.RelevantSections) > 0 {
		fmt.Println()
		fmt.Println("Matched sections:", strings.Join(resp.RelevantSections, ", "))
	}
	if len(resp.Images) > 0 {
		fmt.Println("Images:")
		for _, image := range resp.Images {
			fmt.Printf("  %s\n", image)
		}
	}
}

func chunksCmd(cfg config.Config, logger *log.Logger, args []string) {
	flags := flag.NewFlagSet("chunks", flag.ExitOnError)
	dataFile := flags.String("data", cfg.DataFile, "path to the profile JSON document")
	if err := flags.Parse(args); err != nil {
		logger.Fatalf("parse chunks flags: %v", err)
	}

	store := profile.Load(*dataFile, logger)
	chunks := store.Chunks()
	logger.Printf("built %d text chunks", len(chunks))

	for i, chunk := range chunks {
		fmt.Printf("--- chunk %d [%s] %s ---\n%s\n\n", i+1, chunk.Type, chunk.Tag, chunk.Content)
	}
}

// buildChatService assembles the retrieval path and the LLM client per the
// configuration. A missing credential is not fatal: the service runs with
// canned answers only.
func buildChatService(ctx context.Context, cfg config.Config, store *profile.Store, logger *log.Logger) (*chat.Service, error) {
	extractor := match.NewKeywordExtractor(store.Profile(), cfg.AssetsDir)

	var retriever chat.Retriever = extractor
	if cfg.RetrievalMode == config.RetrievalEmbedding {
		embedder, err := embeddings.NewEmbedder(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("embedder setup: %w", err)
		}
		matcher, err := match.NewEmbeddingMatcher(ctx, store.Chunks(), embedder)
		if err != nil {
			return nil, fmt.Errorf("build embedding index: %w", err)
		}
		retriever = match.NewEmbeddingRetriever(matcher, extractor)
		logger.Printf("embedding index ready (%d chunks, %s/%s)", len(store.Chunks()), cfg.Embeddings.Provider, cfg.Embeddings.Model)
	}

	var llmClient llm.Client
	if cfg.LLMConfigured() {
		client, err := llm.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("llm setup: %w", err)
		}
		llmClient = client
	} else {
		logger.Printf("no %s credential configured, serving canned answers only", cfg.LLM.Provider)
	}

	return chat.NewService(retriever, llmClient, store.Profile(), logger), nil
}

func printUsage() {
	fmt.Println("Usage: portfolio-agent <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  serve    Run the HTTP backend (default)")
	fmt.Println("  ask      Ask a one-off question from the command line")
	fmt.Println("  chunks   Print the text chunks built from the profile document")
}

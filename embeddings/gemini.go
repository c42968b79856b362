package embeddings

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiEmbedder struct {
	client *genai.Client
	model  string
}

func NewGeminiEmbedder(ctx context.Context, opts Options) (Embedder, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &geminiEmbedder{client: client, model: opts.Model}, nil
}

func (e *geminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	em := e.client.EmbeddingModel(e.model)

	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	rsp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("batch embed contents: %w", err)
	}
	if len(rsp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("gemini embedding count mismatch: expected %d, got %d", len(texts), len(rsp.Embeddings))
	}

	results := make([][]float32, len(rsp.Embeddings))
	for i, embedding := range rsp.Embeddings {
		results[i] = embedding.Values
	}

	return results, nil
}

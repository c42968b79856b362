package match

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sreecharan/portfolio-agent/embeddings"
	"github.com/sreecharan/portfolio-agent/profile"
)

// DefaultTopK is how many chunks the embedding path hands to the prompt.
const DefaultTopK = 5

// ScoredChunk pairs a profile chunk with its cosine similarity to a query.
type ScoredChunk struct {
	profile.Chunk
	Score float64
}

// EmbeddingMatcher ranks precomputed profile chunks against a query by
// cosine similarity. Chunk vectors are embedded once at construction and
// held in memory; only the query is embedded per call.
type EmbeddingMatcher struct {
	chunks   []profile.Chunk
	vectors  [][]float32
	embedder embeddings.Embedder
}

func NewEmbeddingMatcher(ctx context.Context, chunks []profile.Chunk, embedder embeddings.Embedder) (*EmbeddingMatcher, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder is not configured")
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no chunks to index")
	}

	contents := make([]string, len(chunks))
	for i, chunk := range chunks {
		contents[i] = chunk.Content
	}

	vectors, err := embedder.Embed(ctx, contents)
	if err != nil {
		return nil, fmt.Errorf("embed profile chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(vectors))
	}

	return &EmbeddingMatcher{chunks: chunks, vectors: vectors, embedder: embedder}, nil
}

// TopChunks returns the min(k, available) chunks closest to the query, in
// descending score order. Ties keep the original chunk order, so identical
// inputs always rank identically. There is no score threshold.
func (m *EmbeddingMatcher) TopChunks(ctx context.Context, query string, k int) ([]ScoredChunk, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	vectors, err := m.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vectors")
	}

	scored := make([]ScoredChunk, len(m.chunks))
	for i := range m.chunks {
		scored[i] = ScoredChunk{
			Chunk: m.chunks[i],
			Score: cosine(vectors[0], m.vectors[i]),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

// cosine is dot(a, b) / (|a| * |b|), zero when either vector is empty or
// all zeroes.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// EmbeddingRetriever adapts the matcher to the retriever contract. Image
// resolution is shared with the keyword path: matched project and hackathon
// chunks contribute the listings of their asset folders.
type EmbeddingRetriever struct {
	matcher   *EmbeddingMatcher
	extractor *KeywordExtractor
}

func NewEmbeddingRetriever(matcher *EmbeddingMatcher, extractor *KeywordExtractor) *EmbeddingRetriever {
	return &EmbeddingRetriever{matcher: matcher, extractor: extractor}
}

func (r *EmbeddingRetriever) Retrieve(ctx context.Context, question string) (Result, error) {
	scored, err := r.matcher.TopChunks(ctx, question, DefaultTopK)
	if err != nil {
		return Result{}, err
	}
	return r.extractor.FromChunks(scored), nil
}

// FromChunks assembles a Query Result out of ranked chunks: contents joined
// in rank order, section tags deduplicated by chunk type, and images pulled
// from the folders of matched project/hackathon chunks.
func (e *KeywordExtractor) FromChunks(chunks []ScoredChunk) Result {
	var contents []string
	var sections []string
	var images []string
	seen := make(map[string]struct{}, len(chunks))

	for _, sc := range chunks {
		contents = append(contents, sc.Content)
		if _, ok := seen[sc.Type]; !ok {
			seen[sc.Type] = struct{}{}
			sections = append(sections, sc.Type)
		}
		switch sc.Type {
		case profile.ChunkProject:
			folder := slug(sc.Tag)
			images = append(images, e.collectImages("projects", []string{folder})...)
		case profile.ChunkHackathon:
			folder := slug(sc.Tag)
			images = append(images, e.collectImages("hackathons", []string{folder})...)
		}
	}

	return Result{
		Context:  strings.Join(contents, "\n\n"),
		Images:   dedupeImages(images, maxImages),
		Sections: sections,
	}
}

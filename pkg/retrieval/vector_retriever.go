package retrieval

import (
	"context"
	"fmt"

	"support-chatbot-be/pkg/embedding"
)

// ScoredChunk is a stored document chunk with its cosine similarity to the
// query, as produced by the vector store.
type ScoredChunk struct {
	SourceLabel string
	Content     string
	Similarity  float64
}

// ChunkSearcher is the slice of the document chunk repository the retriever
// needs: nearest-neighbour search above a similarity threshold, best first.
type ChunkSearcher interface {
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]ScoredChunk, error)
}

// VectorRetriever embeds the query and ranks stored chunks by cosine
// similarity via pgvector.
type VectorRetriever struct {
	embedder  embedding.EmbeddingProvider
	searcher  ChunkSearcher
	topK      int
	threshold float64
}

var _ Retriever = &VectorRetriever{}

func NewVectorRetriever(embedder embedding.EmbeddingProvider, searcher ChunkSearcher, topK int, threshold float64) *VectorRetriever {
	if topK <= 0 {
		topK = 5
	}
	return &VectorRetriever{
		embedder:  embedder,
		searcher:  searcher,
		topK:      topK,
		threshold: threshold,
	}
}

func (r *VectorRetriever) Retrieve(ctx context.Context, query string) ([]Candidate, error) {
	embedRes, err := r.embedder.Generate(query, "retrieval_query")
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := r.searcher.SearchSimilarWithScore(ctx, embedRes.Embedding.Values, r.topK, r.threshold)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	candidates := make([]Candidate, len(scored))
	for i, chunk := range scored {
		candidates[i] = Candidate{
			Label:   chunk.SourceLabel,
			Snippet: chunk.Content,
			Score:   chunk.Similarity,
		}
	}
	return candidates, nil
}

package implementation

import (
	"context"

	"support-chatbot-be/internal/repository/contract"
	"support-chatbot-be/pkg/retrieval"
)

// ChunkSearcherAdapter exposes the document chunk repository through the
// retrieval.ChunkSearcher interface the vector retriever consumes.
type ChunkSearcherAdapter struct {
	repo contract.DocumentChunkRepository
}

var _ retrieval.ChunkSearcher = &ChunkSearcherAdapter{}

func NewChunkSearcherAdapter(repo contract.DocumentChunkRepository) *ChunkSearcherAdapter {
	return &ChunkSearcherAdapter{repo: repo}
}

func (a *ChunkSearcherAdapter) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]retrieval.ScoredChunk, error) {
	scored, err := a.repo.SearchSimilarWithScore(ctx, embedding, limit, threshold)
	if err != nil {
		return nil, err
	}

	chunks := make([]retrieval.ScoredChunk, len(scored))
	for i, s := range scored {
		chunks[i] = retrieval.ScoredChunk{
			SourceLabel: s.Chunk.SourceLabel,
			Content:     s.Chunk.Content,
			Similarity:  s.Similarity,
		}
	}
	return chunks, nil
}

//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"support-chatbot-be/internal/config"
	"support-chatbot-be/internal/repository/implementation"
	"support-chatbot-be/pkg/database"
	"support-chatbot-be/pkg/embedding"
)

// Manual smoke check for the vector search path. Run with:
//
//	go run scripts/check_retrieval.go "how do I reset my password"
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: check_retrieval <query>")
	}
	query := os.Args[1]

	cfg := config.Load()

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		provider = embedding.NewGeminiProvider(cfg.Ai.GoogleGemini)
	} else {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbeddingModel)
	}

	fmt.Println("--- Embedding query ---")
	res, err := provider.Generate(query, "retrieval_query")
	if err != nil {
		log.Fatalf("embedding failed: %v", err)
	}
	fmt.Printf("vector dims: %d\n", len(res.Embedding.Values))

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	repo := implementation.NewDocumentChunkRepository(db)
	chunks, err := repo.SearchSimilarWithScore(context.Background(), res.Embedding.Values, cfg.Rag.TopK, cfg.Rag.RelevanceThreshold)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	fmt.Printf("--- %d matches (threshold %.2f) ---\n", len(chunks), cfg.Rag.RelevanceThreshold)
	for i, c := range chunks {
		fmt.Printf("%d. [%s] %.4f\n", i+1, c.Chunk.SourceLabel, c.Similarity)
		preview := c.Chunk.Content
		if len(preview) > 120 {
			preview = preview[:120] + "..."
		}
		fmt.Printf("   %s\n", preview)
	}
}

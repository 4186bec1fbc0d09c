package main

import (
	"context"
	"flag"
	"strings"

	"support-chatbot-be/internal/bootstrap"
	"support-chatbot-be/internal/config"
	"support-chatbot-be/internal/model"
	"support-chatbot-be/internal/repository/implementation"
	"support-chatbot-be/internal/repository/specification"
	"support-chatbot-be/pkg/database"

	"github.com/fatih/color"
)

// Indexer ingests the knowledge base directory into the vector store. Each
// subdirectory of the documents path becomes one option label.
func main() {
	cfg := config.Load()

	docsPath := flag.String("path", cfg.Rag.DocumentsPath, "documents directory to index")
	flag.Parse()

	color.Cyan("Indexing knowledge base from %s", *docsPath)

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		return
	}

	if err := gormDB.AutoMigrate(&model.DocumentChunk{}); err != nil {
		color.Red("Failed to run migrations: %v", err)
		return
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer func() {
		if container.NatsPublisher != nil {
			container.NatsPublisher.Close()
		}
		_ = container.Logger.Sync()
	}()

	report, err := container.IndexingService.IndexDirectory(context.Background(), *docsPath)
	if err != nil {
		color.Red("Indexing failed: %v", err)
		return
	}

	color.Green("Indexed %d chunks from %d files", report.Chunks, report.Files)
	color.Green("Labels: %s", strings.Join(report.Labels, ", "))

	// Read back stored totals so a partial write is visible immediately.
	chunkRepo := implementation.NewDocumentChunkRepository(gormDB)
	for _, label := range report.Labels {
		stored, err := chunkRepo.Count(context.Background(), specification.BySourceLabel{Label: label})
		if err != nil {
			color.Red("Failed to count chunks for %s: %v", label, err)
			continue
		}
		color.Green("  %s: %d chunks stored", label, stored)
	}
}

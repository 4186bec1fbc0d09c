package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"support-chatbot-be/internal/constant"
	"support-chatbot-be/internal/entity"
	"support-chatbot-be/internal/pkg/logger"
	"support-chatbot-be/internal/repository/unitofwork"
	"support-chatbot-be/pkg/embedding"
	"support-chatbot-be/pkg/events"
	"support-chatbot-be/pkg/textsplit"
)

// IndexReport summarizes one indexing run.
type IndexReport struct {
	Labels []string
	Files  int
	Chunks int
}

// IIndexingService ingests the knowledge base directory: each subdirectory is
// one option label, each markdown or text file inside it is split, embedded
// and stored for vector search.
type IIndexingService interface {
	IndexDirectory(ctx context.Context, root string) (*IndexReport, error)
}

type indexingService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	eventBus          EventPublisher
	logger            logger.ILogger
	chunkSize         int
	chunkOverlap      int
}

func NewIndexingService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	eventBus EventPublisher,
	log logger.ILogger,
	chunkSize int,
	chunkOverlap int,
) IIndexingService {
	return &indexingService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventBus:          eventBus,
		logger:            log,
		chunkSize:         chunkSize,
		chunkOverlap:      chunkOverlap,
	}
}

func (s *indexingService) IndexDirectory(ctx context.Context, root string) (*IndexReport, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read documents directory: %w", err)
	}

	report := &IndexReport{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		label := entry.Name()
		files, chunks, err := s.indexLabel(ctx, root, label)
		if err != nil {
			return nil, fmt.Errorf("index label %s: %w", label, err)
		}
		if files == 0 {
			continue
		}
		report.Labels = append(report.Labels, label)
		report.Files += files
		report.Chunks += chunks
	}

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, events.NewDocumentsIndexed(report.Labels, report.Chunks)); err != nil {
			s.logger.Warn(constant.ModuleIndexingService, "failed to publish indexed event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return report, nil
}

// indexLabel replaces all chunks for one label transactionally, so a reindex
// never leaves a label half ingested.
func (s *indexingService) indexLabel(ctx context.Context, root, label string) (int, int, error) {
	dir := filepath.Join(root, label)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, err
	}

	var chunks []*entity.DocumentChunk
	files := 0
	for _, entry := range entries {
		if entry.IsDir() || !isDocumentFile(entry.Name()) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return 0, 0, err
		}

		pieces := textsplit.SplitText(string(content), s.chunkSize, s.chunkOverlap)
		if len(pieces) == 0 {
			continue
		}
		files++

		for i, piece := range pieces {
			if err := ctx.Err(); err != nil {
				return 0, 0, err
			}

			embedRes, err := s.embeddingProvider.Generate(piece, "retrieval_document")
			if err != nil {
				return 0, 0, fmt.Errorf("embed chunk %d of %s: %w", i, entry.Name(), err)
			}

			chunks = append(chunks, &entity.DocumentChunk{
				SourceLabel:    label,
				SourceFile:     entry.Name(),
				ChunkIndex:     i,
				Content:        piece,
				EmbeddingValue: embedRes.Embedding.Values,
			})
		}
	}

	if len(chunks) == 0 {
		return 0, 0, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, 0, err
	}
	repo := uow.DocumentChunkRepository()
	if err := repo.DeleteBySourceLabel(ctx, label); err != nil {
		_ = uow.Rollback()
		return 0, 0, err
	}
	if err := repo.CreateBulk(ctx, chunks); err != nil {
		_ = uow.Rollback()
		return 0, 0, err
	}
	if err := uow.Commit(); err != nil {
		return 0, 0, err
	}

	s.logger.Info(constant.ModuleIndexingService, "indexed label", map[string]interface{}{
		"label":  label,
		"files":  files,
		"chunks": len(chunks),
	})
	return files, len(chunks), nil
}

func isDocumentFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".txt":
		return true
	default:
		return false
	}
}

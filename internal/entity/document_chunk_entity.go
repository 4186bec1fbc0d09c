package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentChunk is one indexed slice of a knowledge base document.
// SourceLabel names the option the document belongs to (e.g. "Outlook"),
// taken from the directory the file was indexed from.
type DocumentChunk struct {
	Id             uuid.UUID
	SourceLabel    string
	SourceFile     string
	ChunkIndex     int
	Content        string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

//go:build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"support-chatbot-be/internal/config"
	"support-chatbot-be/internal/repository/implementation"
	"support-chatbot-be/internal/repository/specification"
	"support-chatbot-be/pkg/database"
)

// Dumps the logged exchanges for one session, oldest first. Run with:
//
//	go run scripts/dump_transcript.go -session <session_id> [-limit 20]
func main() {
	sessionID := flag.String("session", "", "session id to dump")
	limit := flag.Int("limit", 20, "max exchanges to print")
	flag.Parse()

	if *sessionID == "" {
		log.Fatal("usage: dump_transcript -session <session_id>")
	}

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	repo := implementation.NewConversationLogRepository(db)
	logs, err := repo.FindAll(context.Background(),
		specification.BySessionID{SessionID: *sessionID},
		specification.OrderBy{Field: "created_at"},
		specification.Pagination{Limit: *limit},
	)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}

	if len(logs) == 0 {
		fmt.Println("no exchanges logged for this session")
		return
	}

	for _, l := range logs {
		fmt.Printf("[%s] intent=%s decision=%s\n", l.CreatedAt.Format("2006-01-02 15:04:05"), l.Intent, l.Decision)
		fmt.Printf("  user: %s\n", l.UserMessage)
		fmt.Printf("  assistant: %s\n\n", l.AssistantMessage)
	}
}

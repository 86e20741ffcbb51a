package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"arogya-chatbot/internal/config"
	"arogya-chatbot/internal/core"
	"arogya-chatbot/internal/db"
	httpserver "arogya-chatbot/internal/http"
	"arogya-chatbot/internal/llm"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yaml", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// History persistence is optional: without a database URL the service
	// still answers chat requests, it just keeps no audit trail.
	var store httpserver.ChatStore
	var alerts httpserver.AlertSink
	if cfg.Database.URL != "" {
		dbConn, err := sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := dbConn.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping database: %v", err)
		}
		cancel()
		if err := db.Migrate(context.Background(), dbConn); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		store = db.NewRepository(dbConn)
		alerts = db.NewAlertNotifier(dbConn, cfg.Database.URL, cfg.Database.AlertChannel)
	} else {
		log.Println("DATABASE_URL not set; consultation history disabled")
	}

	kb := core.DefaultKnowledgeBase()
	rag := core.NewRAGService(kb)
	// Uses env: OPENAI_API_KEY (model from config or OPENAI_MODEL_CHAT)
	client := llm.NewOpenAIClient(cfg.LLM.Model)

	srv := httpserver.NewServer(rag, client, store, alerts,
		time.Duration(cfg.LLM.TimeoutSecs)*time.Second)

	addr := ":" + cfg.Server.Port
	log.Printf("Listening on %s", addr)
	if err := http.ListenAndServe(addr, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"arogya-chatbot/internal/core"
	"arogya-chatbot/internal/llm"
	"arogya-chatbot/pkg"
)

// ChatStore is the slice of the repository the handlers need to keep the
// consultation audit trail. It may be left nil, in which case the service
// answers statelessly.
type ChatStore interface {
	CreateConsultation(ctx context.Context, language pkg.Language, location *string) (*pkg.Consultation, error)
	MarkEmergency(ctx context.Context, consultationID string) error
	CreateMessage(ctx context.Context, consultationID string, role pkg.MessageRole, content string) (*pkg.ChatMessage, error)
}

// AlertSink receives the ids of emergency-flagged consultations.
type AlertSink interface {
	Notify(ctx context.Context, consultationID string) error
}

// Server bundles together the dependencies required by HTTP handlers. It
// implements http.Handler so it can be passed to http.ListenAndServe.
type Server struct {
	RAG        *core.RAGService
	LLM        llm.Client
	Store      ChatStore
	Alerts     AlertSink
	GenTimeout time.Duration
}

// NewServer constructs a Server. store and alerts may be nil when no
// database is configured.
func NewServer(rag *core.RAGService, client llm.Client, store ChatStore, alerts AlertSink, genTimeout time.Duration) *Server {
	if genTimeout <= 0 {
		genTimeout = 30 * time.Second
	}
	return &Server{
		RAG:        rag,
		LLM:        client,
		Store:      store,
		Alerts:     alerts,
		GenTimeout: genTimeout,
	}
}

// ServeHTTP dispatches incoming requests based on the URL path. Minimal
// routing logic is implemented here to keep dependencies light.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/chat" && r.Method == http.MethodPost:
		s.handleChat(w, r)
	case r.URL.Path == "/api/health" && r.Method == http.MethodGet:
		s.handleHealth(w, r)
	case r.URL.Path == "/api/languages" && r.Method == http.MethodGet:
		s.handleLanguages(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleChat runs one full request cycle: validate input, short-circuit on
// emergencies, otherwise retrieve context, call the generation model under a
// deadline, and wrap the answer with source citations.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req pkg.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		http.Error(w, "message must not be empty", http.StatusBadRequest)
		return
	}
	// The boundary coerces unknown codes to English; the core itself would
	// reject them.
	language := pkg.ParseLanguage(req.Language)

	// Emergency pre-check. This path never touches retrieval or the
	// generation model.
	if core.IsEmergency(message) {
		resp, err := core.EmergencyChatResponse(language)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.recordExchange(language, req.Location, message, resp.Message, true)
		writeJSON(w, resp)
		return
	}

	ragResp, err := s.RAG.Process(pkg.RAGQuery{
		Query:       message,
		Language:    language,
		Location:    req.Location,
		UserContext: req.UserContext,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	genCtx, cancel := context.WithTimeout(ctx, s.GenTimeout)
	defer cancel()
	var resp pkg.ChatResponse
	answer, err := s.LLM.Generate(genCtx, ragResp.GeneratedPrompt)
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			log.Println("generation failed:", err)
		}
		resp = core.FallbackResponse(language)
	} else {
		resp = core.BuildChatResponse(answer, language, ragResp.RetrievedDocuments)
	}

	s.recordExchange(language, req.Location, message, resp.Message, false)
	writeJSON(w, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]interface{}{"languages": pkg.SupportedLanguages})
}

// recordExchange persists one question/answer pair and, for emergencies,
// raises an alert. Persistence is fire and forget: failures are logged and
// never fail the chat response.
func (s *Server) recordExchange(language pkg.Language, location, question, answer string, emergency bool) {
	if s.Store == nil {
		return
	}
	var loc *string
	if location != "" {
		loc = &location
	}
	go func() {
		ctx := context.Background()
		consultation, err := s.Store.CreateConsultation(ctx, language, loc)
		if err != nil {
			log.Println("failed to create consultation:", err)
			return
		}
		if _, err := s.Store.CreateMessage(ctx, consultation.ID, pkg.RolePatient, question); err != nil {
			log.Println("failed to store patient message:", err)
		}
		if _, err := s.Store.CreateMessage(ctx, consultation.ID, pkg.RoleAssistant, answer); err != nil {
			log.Println("failed to store assistant message:", err)
		}
		if emergency {
			if err := s.Store.MarkEmergency(ctx, consultation.ID); err != nil {
				log.Println("failed to flag emergency:", err)
			}
			if s.Alerts != nil {
				if err := s.Alerts.Notify(ctx, consultation.ID); err != nil {
					log.Println("failed to send emergency alert:", err)
				}
			}
		}
	}()
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to write response:", err)
	}
}

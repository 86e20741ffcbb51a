package pkg

import (
	"fmt"
	"time"
)

// Language identifies one of the assistant's supported response languages.
// The set is fixed; anything else must be rejected or coerced at the
// boundary before it reaches the core pipeline.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangTelugu  Language = "te"
	LangTamil   Language = "ta"
	LangOdia    Language = "or"
	LangKannada Language = "kn"
)

// SupportedLanguages lists every language code the assistant accepts, in a
// stable order suitable for display.
var SupportedLanguages = []Language{
	LangEnglish, LangHindi, LangTelugu, LangTamil, LangOdia, LangKannada,
}

// Valid reports whether l is one of the six supported codes.
func (l Language) Valid() bool {
	switch l {
	case LangEnglish, LangHindi, LangTelugu, LangTamil, LangOdia, LangKannada:
		return true
	}
	return false
}

// ParseLanguage coerces an arbitrary code from the boundary layer to a
// supported language. Empty or unrecognised values fall back to English;
// the core itself never performs this coercion.
func ParseLanguage(code string) Language {
	l := Language(code)
	if l.Valid() {
		return l
	}
	return LangEnglish
}

// MedicalDocument is one entry of the curated knowledge base. Documents are
// immutable after construction; the corpus is fixed at startup.
type MedicalDocument struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Language Language `json:"language"`
}

// UserContext carries optional patient details supplied with a query.
// Absent fields are nil, not zero values.
type UserContext struct {
	Age            *int     `json:"age,omitempty"`
	Gender         *string  `json:"gender,omitempty"`
	MedicalHistory []string `json:"medicalHistory,omitempty"`
}

// Empty reports whether no field of the context is populated.
func (u *UserContext) Empty() bool {
	return u == nil || (u.Age == nil && u.Gender == nil && len(u.MedicalHistory) == 0)
}

// RAGQuery is the orchestrator's input: the raw question plus the metadata
// that shapes retrieval and prompt composition.
type RAGQuery struct {
	Query       string       `json:"query"`
	Language    Language     `json:"language"`
	Location    string       `json:"location,omitempty"`
	UserContext *UserContext `json:"userContext,omitempty"`
}

// RAGResponse is the orchestrator's output. GeneratedPrompt is ready to send
// to a generation model; Context repeats the knowledge-base block standalone
// for caller-side logging.
type RAGResponse struct {
	RetrievedDocuments []MedicalDocument `json:"retrievedDocuments"`
	GeneratedPrompt    string            `json:"generatedPrompt"`
	Context            string            `json:"context"`
}

// ChatRequest is the inbound shape consumed from the HTTP and webhook layers.
type ChatRequest struct {
	Message     string       `json:"message"`
	Language    string       `json:"language,omitempty"`
	Location    string       `json:"location,omitempty"`
	UserContext *UserContext `json:"userContext,omitempty"`
}

// Source is the display-safe subset of a retrieved document returned to the
// user. Content is deliberately excluded.
type Source struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// ChatResponse is the outbound shape produced after generation.
type ChatResponse struct {
	Message     string   `json:"message"`
	Language    Language `json:"language"`
	Timestamp   string   `json:"timestamp"`
	IsEmergency bool     `json:"isEmergency"`
	Sources     []Source `json:"sources"`
}

// MessageRole describes who authored a chat message. There are only two
// roles: the patient and the assistant.
type MessageRole string

const (
	RolePatient   MessageRole = "patient"
	RoleAssistant MessageRole = "assistant"
)

// Consultation represents one patient conversation kept for the audit trail.
// It is keyed by a UUID and flags whether an emergency was ever detected.
type Consultation struct {
	ID          string    `json:"id"`
	Language    Language  `json:"language"`
	Location    *string   `json:"location,omitempty"`
	IsEmergency bool      `json:"is_emergency"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChatMessage is a single stored message within a consultation.
type ChatMessage struct {
	ID             int64       `json:"id"`
	ConsultationID string      `json:"consultation_id"`
	Role           MessageRole `json:"role"`
	Content        string      `json:"content"`
	CreatedAt      time.Time   `json:"created_at"`
}

// UnsupportedLanguageError is returned when a language code outside the
// fixed set reaches a component that must not guess, such as the emergency
// responder.
type UnsupportedLanguageError struct {
	Code Language
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language code %q", string(e.Code))
}

package core

import (
	"errors"
	"strings"

	"arogya-chatbot/pkg"
)

// retrievalLimit caps how many documents feed the prompt. Display layers
// may truncate further.
const retrievalLimit = 5

// ErrEmptyQuery is returned when a request reaches the pipeline with no
// question text.
var ErrEmptyQuery = errors.New("query must not be empty")

// RAGService wires retrieval and prompt composition into one
// request/response cycle. It has no emergency awareness on purpose: the
// emergency short-circuit is an explicit pre-check in the request-handling
// layer, which keeps this pipeline pure and independently testable.
type RAGService struct {
	retriever *Retriever
}

// NewRAGService constructs the pipeline over the given knowledge base.
func NewRAGService(kb *KnowledgeBase) *RAGService {
	return &RAGService{retriever: NewRetriever(kb)}
}

// Process retrieves context for the query, composes the generation prompt,
// and returns both together with the standalone context string. Zero
// retrieved documents is a valid outcome; errors are only raised for
// malformed input.
func (s *RAGService) Process(query pkg.RAGQuery) (*pkg.RAGResponse, error) {
	if strings.TrimSpace(query.Query) == "" {
		return nil, ErrEmptyQuery
	}
	if !query.Language.Valid() {
		return nil, &pkg.UnsupportedLanguageError{Code: query.Language}
	}

	docs := s.retriever.Retrieve(query.Query, query.Language, retrievalLimit)
	return &pkg.RAGResponse{
		RetrievedDocuments: docs,
		GeneratedPrompt:    ComposePrompt(query, docs),
		Context:            FormatContext(docs),
	}, nil
}

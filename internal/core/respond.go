package core

import (
	"strings"
	"time"

	"arogya-chatbot/pkg"
)

// displaySourceLimit caps how many citations are shown to the user, even
// when retrieval returned more documents for the prompt.
const displaySourceLimit = 3

// Sources maps retrieved documents to their display-safe subset. Document
// content is never echoed back to the user raw.
func Sources(docs []pkg.MedicalDocument) []pkg.Source {
	out := make([]pkg.Source, len(docs))
	for i, d := range docs {
		out[i] = pkg.Source{Title: d.Title, Category: d.Category, Tags: d.Tags}
	}
	return out
}

// BuildChatResponse wraps the generated answer into the outbound response,
// appending source citations for up to displaySourceLimit retrieved
// documents.
func BuildChatResponse(generated string, language pkg.Language, docs []pkg.MedicalDocument) pkg.ChatResponse {
	msg := strings.TrimSpace(generated)
	if len(docs) > 0 {
		cited := docs
		if len(cited) > displaySourceLimit {
			cited = cited[:displaySourceLimit]
		}
		var b strings.Builder
		b.WriteString(msg)
		b.WriteString("\n\n📚 Sources:\n")
		for _, d := range cited {
			b.WriteString("- ")
			b.WriteString(d.Title)
			b.WriteString(" (")
			b.WriteString(d.Category)
			b.WriteString(")\n")
		}
		msg = strings.TrimRight(b.String(), "\n")
	}
	return pkg.ChatResponse{
		Message:     msg,
		Language:    language,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		IsEmergency: false,
		Sources:     Sources(docs),
	}
}

// FallbackResponse is returned when the generation call failed, timed out
// or produced nothing. The message is a fixed per-language apology that
// still directs the user toward professional care.
func FallbackResponse(language pkg.Language) pkg.ChatResponse {
	return pkg.ChatResponse{
		Message:     FallbackMessage(language),
		Language:    language,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		IsEmergency: false,
		Sources:     []pkg.Source{},
	}
}

// EmergencyChatResponse wraps the fixed emergency message for the outbound
// shape. The generation model is never involved on this path.
func EmergencyChatResponse(language pkg.Language) (pkg.ChatResponse, error) {
	msg, err := EmergencyResponse(language)
	if err != nil {
		return pkg.ChatResponse{}, err
	}
	return pkg.ChatResponse{
		Message:     msg,
		Language:    language,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		IsEmergency: true,
		Sources:     []pkg.Source{},
	}, nil
}

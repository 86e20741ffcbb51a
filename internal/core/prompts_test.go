package core

import (
	"strings"
	"testing"

	"arogya-chatbot/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocs() []pkg.MedicalDocument {
	return []pkg.MedicalDocument{
		{
			ID:       "fever-1",
			Title:    "Fever Management",
			Content:  "Rest and drink fluids.",
			Category: "symptoms",
			Tags:     []string{"fever", "hydration"},
			Language: pkg.LangEnglish,
		},
	}
}

func TestComposePromptContainsQueryVerbatim(t *testing.T) {
	q := pkg.RAGQuery{Query: "I have a fever since yesterday", Language: pkg.LangEnglish}
	prompt := ComposePrompt(q, sampleDocs())
	assert.Contains(t, prompt, "I have a fever since yesterday")
}

func TestComposePromptContainsLanguageDirective(t *testing.T) {
	for _, lang := range pkg.SupportedLanguages {
		q := pkg.RAGQuery{Query: "what is a balanced diet", Language: lang}
		prompt := ComposePrompt(q, nil)
		assert.Contains(t, prompt, languageDirectives[lang], "directive missing for %s", lang)
	}
}

func TestComposePromptContextBlock(t *testing.T) {
	q := pkg.RAGQuery{Query: "fever", Language: pkg.LangEnglish}
	prompt := ComposePrompt(q, sampleDocs())

	assert.Contains(t, prompt, "MEDICAL CONTEXT FROM KNOWLEDGE BASE:")
	assert.Contains(t, prompt, "Title: Fever Management")
	assert.Contains(t, prompt, "Category: symptoms")
	assert.Contains(t, prompt, "Tags: fever, hydration")
}

func TestComposePromptNoMatchPlaceholder(t *testing.T) {
	q := pkg.RAGQuery{Query: "what is good nutrition", Language: pkg.LangTamil}
	prompt := ComposePrompt(q, nil)

	assert.Contains(t, prompt, "MEDICAL CONTEXT FROM KNOWLEDGE BASE:")
	assert.Contains(t, prompt, noContextPlaceholder)
}

func TestComposePromptOmitsEmptyUserContext(t *testing.T) {
	q := pkg.RAGQuery{Query: "fever", Language: pkg.LangEnglish}
	assert.NotContains(t, ComposePrompt(q, nil), "USER CONTEXT")

	q.UserContext = &pkg.UserContext{}
	assert.NotContains(t, ComposePrompt(q, nil), "USER CONTEXT")
}

func TestComposePromptIncludesUserContext(t *testing.T) {
	age := 34
	gender := "female"
	q := pkg.RAGQuery{
		Query:    "fever",
		Language: pkg.LangEnglish,
		UserContext: &pkg.UserContext{
			Age:            &age,
			Gender:         &gender,
			MedicalHistory: []string{"diabetes", "hypertension"},
		},
	}
	prompt := ComposePrompt(q, nil)
	assert.Contains(t, prompt, "USER CONTEXT:")
	assert.Contains(t, prompt, "Age: 34")
	assert.Contains(t, prompt, "Gender: female")
	assert.Contains(t, prompt, "Medical history: diabetes, hypertension")
}

func TestComposePromptLocationLine(t *testing.T) {
	q := pkg.RAGQuery{Query: "fever", Language: pkg.LangEnglish}
	assert.NotContains(t, ComposePrompt(q, nil), "USER LOCATION")

	q.Location = "Warangal district"
	assert.Contains(t, ComposePrompt(q, nil), "USER LOCATION: Warangal district")
}

func TestComposePromptGuidelinesAndClosingAlwaysPresent(t *testing.T) {
	q := pkg.RAGQuery{Query: "fever", Language: pkg.LangEnglish}
	prompt := ComposePrompt(q, nil)
	assert.Contains(t, prompt, "IMPORTANT GUIDELINES:")
	assert.Contains(t, prompt, closingInstruction)
}

func TestComposePromptDeterministic(t *testing.T) {
	q := pkg.RAGQuery{Query: "fever", Language: pkg.LangHindi, Location: "Bihar"}
	assert.Equal(t, ComposePrompt(q, sampleDocs()), ComposePrompt(q, sampleDocs()))
}

func TestFormatContextSeparatesDocuments(t *testing.T) {
	docs := append(sampleDocs(), pkg.MedicalDocument{
		ID: "nutrition-1", Title: "Balanced Nutrition", Category: "prevention",
		Content: "Combine cereals with pulses.", Language: pkg.LangEnglish,
	})
	ctx := FormatContext(docs)
	require.Equal(t, 2, strings.Count(ctx, "Title: "))
	assert.Contains(t, ctx, documentSeparator)
}

func TestFallbackMessageKnownAndUnknownLanguages(t *testing.T) {
	for _, lang := range pkg.SupportedLanguages {
		assert.NotEmpty(t, FallbackMessage(lang))
	}
	// unknown codes fall back to English rather than returning nothing
	assert.Equal(t, fallbackMessages[pkg.LangEnglish], FallbackMessage(pkg.Language("fr")))
}

package core

import (
	"testing"
	"time"

	"arogya-chatbot/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesExcludeContent(t *testing.T) {
	sources := Sources(sampleDocs())
	require.Len(t, sources, 1)
	assert.Equal(t, "Fever Management", sources[0].Title)
	assert.Equal(t, "symptoms", sources[0].Category)
	assert.Equal(t, []string{"fever", "hydration"}, sources[0].Tags)
}

func TestBuildChatResponseAppendsCitations(t *testing.T) {
	resp := BuildChatResponse("Rest and drink plenty of fluids.", pkg.LangEnglish, sampleDocs())

	assert.Contains(t, resp.Message, "Rest and drink plenty of fluids.")
	assert.Contains(t, resp.Message, "Sources:")
	assert.Contains(t, resp.Message, "Fever Management (symptoms)")
	assert.False(t, resp.IsEmergency)
	require.Len(t, resp.Sources, 1)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestBuildChatResponseCitationCap(t *testing.T) {
	docs := make([]pkg.MedicalDocument, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		docs = append(docs, pkg.MedicalDocument{
			ID: id, Title: "Doc " + id, Category: "symptoms", Language: pkg.LangEnglish,
		})
	}
	resp := BuildChatResponse("answer", pkg.LangEnglish, docs)

	// citations stop at three, but all retrieved sources are reported
	assert.Contains(t, resp.Message, "Doc c (symptoms)")
	assert.NotContains(t, resp.Message, "Doc d (symptoms)")
	assert.Len(t, resp.Sources, 5)
}

func TestBuildChatResponseNoDocsNoCitationBlock(t *testing.T) {
	resp := BuildChatResponse("General advice.", pkg.LangEnglish, nil)
	assert.Equal(t, "General advice.", resp.Message)
	assert.Empty(t, resp.Sources)
}

func TestFallbackResponse(t *testing.T) {
	resp := FallbackResponse(pkg.LangHindi)
	assert.Equal(t, FallbackMessage(pkg.LangHindi), resp.Message)
	assert.Equal(t, pkg.LangHindi, resp.Language)
	assert.False(t, resp.IsEmergency)
	assert.Empty(t, resp.Sources)
}

func TestEmergencyChatResponse(t *testing.T) {
	resp, err := EmergencyChatResponse(pkg.LangTelugu)
	require.NoError(t, err)
	assert.True(t, resp.IsEmergency)
	assert.Contains(t, resp.Message, "108")
	assert.Empty(t, resp.Sources)

	_, err = EmergencyChatResponse(pkg.Language("xx"))
	assert.Error(t, err)
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contentwerk/seo-engine/internal/domain"
)

func TestParseKeywordAnalysis(t *testing.T) {
	text := `{"secondaryKeywords": ["Stützstrümpfe", "Thrombosestrümpfe"],
		"wQuestions": ["Wie wirken Kompressionsstrümpfe?"],
		"searchIntent": "buy",
		"suggestedTopics": ["Kompressionsklassen"]}`

	analysis := ParseKeywordAnalysis(text)
	assert.Equal(t, []string{"Stützstrümpfe", "Thrombosestrümpfe"}, analysis.SecondaryKeywords)
	assert.Equal(t, domain.IntentBuy, analysis.SearchIntent)
	assert.Equal(t, []string{"Kompressionsklassen"}, analysis.SuggestedTopics)
}

func TestParseKeywordAnalysisFromFencedBlock(t *testing.T) {
	text := "Hier die Analyse:\n```json\n{\"searchIntent\": \"do\", \"wQuestions\": [\"Wie?\"]}\n```"
	analysis := ParseKeywordAnalysis(text)
	assert.Equal(t, domain.IntentDo, analysis.SearchIntent)
	assert.Equal(t, []string{"Wie?"}, analysis.WQuestions)
}

// An unknown intent value falls back to "know" while valid fields survive.
func TestParseKeywordAnalysisInvalidIntent(t *testing.T) {
	text := `{"searchIntent": "purchase", "secondaryKeywords": ["Stützstrümpfe"]}`
	analysis := ParseKeywordAnalysis(text)
	assert.Equal(t, domain.IntentKnow, analysis.SearchIntent)
	assert.Equal(t, []string{"Stützstrümpfe"}, analysis.SecondaryKeywords)
}

func TestParseKeywordAnalysisGarbage(t *testing.T) {
	for _, input := range []string{"", "kein JSON", "{}", "[1,2,3]"} {
		analysis := ParseKeywordAnalysis(input)
		assert.Equal(t, domain.IntentKnow, analysis.SearchIntent, "input %q", input)
		assert.NotNil(t, analysis.SecondaryKeywords, "input %q", input)
		assert.Empty(t, analysis.SecondaryKeywords, "input %q", input)
		assert.NotNil(t, analysis.WQuestions, "input %q", input)
		assert.NotNil(t, analysis.SuggestedTopics, "input %q", input)
	}
}

package parser

import (
	"encoding/json"
	"strings"

	"github.com/contentwerk/seo-engine/internal/domain"
)

var validIntents = map[string]bool{
	domain.IntentKnow: true,
	domain.IntentDo:   true,
	domain.IntentBuy:  true,
	domain.IntentGo:   true,
}

// ParseKeywordAnalysis recovers a KeywordAnalysis from raw LLM text with
// the same defensive-default philosophy as the content parser: any input
// yields a well-formed result. An invalid or missing search intent defaults
// to "know".
func ParseKeywordAnalysis(text string) domain.KeywordAnalysis {
	analysis := domain.KeywordAnalysis{
		SecondaryKeywords: []string{},
		WQuestions:        []string{},
		SearchIntent:      domain.IntentKnow,
		SuggestedTopics:   []string{},
	}

	raw, ok := decodeKeywordCandidate(strings.TrimSpace(text))
	if !ok {
		return analysis
	}

	if len(raw.SecondaryKeywords) > 0 {
		analysis.SecondaryKeywords = raw.SecondaryKeywords
	}
	if len(raw.WQuestions) > 0 {
		analysis.WQuestions = raw.WQuestions
	}
	if len(raw.SuggestedTopics) > 0 {
		analysis.SuggestedTopics = raw.SuggestedTopics
	}
	if intent := strings.ToLower(strings.TrimSpace(raw.SearchIntent)); validIntents[intent] {
		analysis.SearchIntent = intent
	}

	return analysis
}

type rawKeywordAnalysis struct {
	SecondaryKeywords []string `json:"secondaryKeywords"`
	WQuestions        []string `json:"wQuestions"`
	SearchIntent      string   `json:"searchIntent"`
	SuggestedTopics   []string `json:"suggestedTopics"`
}

// decodeKeywordCandidate tries the whole text, the first fenced block and
// the balanced-brace candidates, in that order.
func decodeKeywordCandidate(text string) (*rawKeywordAnalysis, bool) {
	candidates := []string{text}
	if matches := fencedBlockRe.FindStringSubmatch(text); len(matches) >= 2 {
		candidates = append(candidates, strings.TrimSpace(matches[1]))
	}
	candidates = append(candidates, balancedBraceCandidates(text)...)

	for _, candidate := range candidates {
		if !strings.HasPrefix(candidate, "{") {
			continue
		}
		var raw rawKeywordAnalysis
		if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
			continue
		}
		if len(raw.SecondaryKeywords) == 0 && len(raw.WQuestions) == 0 &&
			raw.SearchIntent == "" && len(raw.SuggestedTopics) == 0 {
			continue
		}
		return &raw, true
	}
	return nil, false
}

// Package parser recovers structured content from free-form LLM output.
// The extraction cascade is total: for any input string it returns a
// well-formed GeneratedContent, possibly error-flagged, and never panics or
// returns an error. A malformed model response must not crash the request
// pipeline.
package parser

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/contentwerk/seo-engine/internal/domain"
)

// minSEOTextLen rejects responses whose body is too short to be a real text.
const minSEOTextLen = 100

// minBareHTMLLen guards the last-resort bare-HTML extraction.
const minBareHTMLLen = 500

// rawContent is the wire shape the prompt templates ask the model for.
// "text" is a legacy alias for "seoText" still produced by older prompt
// versions.
type rawContent struct {
	Title           string           `json:"title"`
	MetaDescription string           `json:"metaDescription"`
	SEOText         string           `json:"seoText"`
	Text            string           `json:"text"`
	FAQ             []domain.FAQItem `json:"faq"`
	InternalLinks   []string         `json:"internalLinks"`
	TechnicalHints  string           `json:"technicalHints"`
}

func (r *rawContent) body() string {
	if r.SEOText != "" {
		return r.SEOText
	}
	return r.Text
}

// extractor attempts one recovery strategy. The first successful extractor
// wins; order matters.
type extractor func(text string) (*rawContent, bool)

var extractors = []extractor{
	extractWholeJSON,
	extractFencedJSON,
	extractBalancedBraces,
	extractWrapperKey,
	extractBareHTML,
}

// Parse converts raw LLM text into a GeneratedContent. focusKeyword seeds
// the deterministic fallbacks for missing fields.
func Parse(text, focusKeyword string) domain.GeneratedContent {
	for _, extract := range extractors {
		if raw, ok := extract(text); ok {
			return validate(raw, focusKeyword)
		}
	}
	return ErrorContent("no parsable content in model response")
}

// ErrorContent returns the well-formed but error-flagged empty object.
func ErrorContent(flag string) domain.GeneratedContent {
	red := domain.EEATScore{Score: 0, Status: domain.StatusRed}
	return domain.GeneratedContent{
		Title:           "",
		MetaDescription: "",
		SEOText:         "",
		FAQ:             []domain.FAQItem{},
		InternalLinks:   []string{},
		TechnicalHints:  "",
		QualityReport: domain.QualityReport{
			Status:        domain.StatusError,
			Flags:         []string{flag},
			EvidenceTable: []domain.EvidenceRow{},
		},
		GuidelineValidation: domain.GuidelineValidation{
			OverallScore: 0,
			GoogleEEAT: domain.GoogleEEAT{
				Experience:        red,
				Expertise:         red,
				Authoritativeness: red,
				Trustworthiness:   red,
			},
			Metrics: domain.ContentMetrics{},
		},
	}
}

// validate applies the derivation step to an extracted candidate: rejects
// too-short bodies, computes structural metrics and E-E-A-T scores, and
// fills every missing field with a deterministic default.
func validate(raw *rawContent, focusKeyword string) domain.GeneratedContent {
	seoText := strings.TrimSpace(raw.body())
	if utf8.RuneCountInString(seoText) < minSEOTextLen {
		return ErrorContent("seoText missing or shorter than 100 characters")
	}

	metrics := computeMetrics(seoText, len(raw.FAQ))
	eeat, overall := scoreEEAT(metrics)

	content := domain.GeneratedContent{
		Title:           raw.Title,
		MetaDescription: raw.MetaDescription,
		SEOText:         seoText,
		FAQ:             raw.FAQ,
		InternalLinks:   raw.InternalLinks,
		TechnicalHints:  raw.TechnicalHints,
		QualityReport: domain.QualityReport{
			Status:        domain.StatusOK,
			Flags:         []string{},
			EvidenceTable: []domain.EvidenceRow{},
		},
		GuidelineValidation: domain.GuidelineValidation{
			OverallScore: overall,
			GoogleEEAT:   eeat,
			Metrics:      metrics,
		},
	}

	if content.Title == "" {
		content.Title = defaultTitle(seoText, focusKeyword)
	}
	if content.MetaDescription == "" {
		content.MetaDescription = truncateChars(StripHTML(seoText), 155)
	}
	if content.FAQ == nil {
		content.FAQ = []domain.FAQItem{}
	}
	if content.InternalLinks == nil {
		content.InternalLinks = []string{}
	}

	return content
}

// defaultTitle prefers the H1 of the text, then the focus keyword.
func defaultTitle(seoText, focusKeyword string) string {
	if h1 := firstH1(seoText); h1 != "" {
		return h1
	}
	if focusKeyword != "" {
		return focusKeyword
	}
	return "SEO-Text"
}

// extractWholeJSON parses the entire response as a JSON content object.
func extractWholeJSON(text string) (*rawContent, bool) {
	return decodeContent(strings.TrimSpace(text))
}

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// extractFencedJSON parses the first markdown-fenced block. It takes
// precedence over the balanced-brace scan so that stray braces in narration
// around the fence cannot shadow the fenced payload.
func extractFencedJSON(text string) (*rawContent, bool) {
	matches := fencedBlockRe.FindStringSubmatch(text)
	if len(matches) < 2 {
		return nil, false
	}
	return decodeContent(strings.TrimSpace(matches[1]))
}

// extractBalancedBraces scans for balanced {...} substrings and tries them
// largest-first, accepting the first one that parses and carries a body.
func extractBalancedBraces(text string) (*rawContent, bool) {
	candidates := balancedBraceCandidates(text)
	for _, candidate := range candidates {
		if raw, ok := decodeContent(candidate); ok {
			return raw, true
		}
	}
	return nil, false
}

// wrapperKeys are envelope keys some models wrap their payload in.
var wrapperKeys = []string{"content", "result", "output"}

// extractWrapperKey unwraps {"content": {...}} style envelopes.
func extractWrapperKey(text string) (*rawContent, bool) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &envelope); err != nil {
		return nil, false
	}
	for _, key := range wrapperKeys {
		nested, ok := envelope[key]
		if !ok {
			continue
		}
		if raw, ok := decodeContent(string(nested)); ok {
			return raw, true
		}
	}
	return nil, false
}

// extractBareHTML wraps a raw HTML response with no JSON envelope at all.
// Only applies when the text clearly is a full article.
func extractBareHTML(text string) (*rawContent, bool) {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) <= minBareHTMLLen {
		return nil, false
	}
	if !strings.Contains(trimmed, "<h1>") || !strings.Contains(trimmed, "</h1>") {
		return nil, false
	}
	return &rawContent{SEOText: trimmed}, true
}

// decodeContent unmarshals a candidate string and accepts it only when it
// is a JSON object carrying a seoText/text body.
func decodeContent(candidate string) (*rawContent, bool) {
	if !strings.HasPrefix(candidate, "{") {
		return nil, false
	}
	var raw rawContent
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return nil, false
	}
	if raw.body() == "" {
		return nil, false
	}
	return &raw, true
}

// balancedBraceCandidates returns every balanced {...} substring of the
// text, largest first. Brace tracking is string-aware so braces inside JSON
// string values do not break the pairing.
func balancedBraceCandidates(text string) []string {
	var candidates []string
	var stack []int
	inString := false
	escaped := false

	for i, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			inString = true
		case '{':
			stack = append(stack, i)
		case '}':
			if len(stack) == 0 {
				continue
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			candidates = append(candidates, text[start:i+1])
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return len(candidates[i]) > len(candidates[j])
	})
	return candidates
}

package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/contentwerk/seo-engine/internal/domain"
)

// Status thresholds for the traffic-light classification.
const (
	greenThreshold  = 70
	yellowThreshold = 50
)

// computeMetrics derives the structural counts from the seoText HTML.
func computeMetrics(seoText string, faqCount int) domain.ContentMetrics {
	metrics := domain.ContentMetrics{FAQCount: faqCount}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(seoText))
	if err != nil {
		metrics.WordCount = len(strings.Fields(stripTagsFallback(seoText)))
		return metrics
	}

	metrics.H1Count = doc.Find("h1").Length()
	metrics.H2Count = doc.Find("h2").Length()
	metrics.H3Count = doc.Find("h3").Length()
	metrics.ListCount = doc.Find("ul, ol").Length()
	metrics.StrongCount = doc.Find("strong").Length()
	metrics.WordCount = len(strings.Fields(doc.Text()))

	return metrics
}

// scoreEEAT derives the four heuristic sub-scores from the structure counts.
// These are fixed linear combinations kept for compatibility with scores
// already stored for existing content; they do not measure semantic quality.
func scoreEEAT(m domain.ContentMetrics) (domain.GoogleEEAT, int) {
	experience := clampScore(50 + 10*m.ListCount + 2*m.StrongCount)
	expertise := clampScore(40 + 8*m.H2Count + 4*m.H3Count)
	authoritativeness := clampScore(45 + 5*m.H1Count + 10*m.FAQCount)
	trustworthiness := clampScore(50 + 5*m.ListCount + 3*m.StrongCount)

	overall := (experience + expertise + authoritativeness + trustworthiness) / 4

	eeat := domain.GoogleEEAT{
		Experience:        domain.EEATScore{Score: experience, Status: statusFor(experience)},
		Expertise:         domain.EEATScore{Score: expertise, Status: statusFor(expertise)},
		Authoritativeness: domain.EEATScore{Score: authoritativeness, Status: statusFor(authoritativeness)},
		Trustworthiness:   domain.EEATScore{Score: trustworthiness, Status: statusFor(trustworthiness)},
	}
	return eeat, overall
}

func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func statusFor(score int) string {
	switch {
	case score >= greenThreshold:
		return domain.StatusGreen
	case score >= yellowThreshold:
		return domain.StatusYellow
	default:
		return domain.StatusRed
	}
}

// StripHTML returns the plain text of an HTML fragment with collapsed
// whitespace.
func StripHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(stripTagsFallback(html)), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func stripTagsFallback(html string) string {
	return tagRe.ReplaceAllString(html, " ")
}

// firstH1 returns the text of the first h1 element, if any.
func firstH1(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// truncateChars shortens a string to at most limit runes, trimming at a
// word boundary when possible.
func truncateChars(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	cut := string(runes[:limit])
	if idx := strings.LastIndex(cut, " "); idx > limit/2 {
		cut = cut[:idx]
	}
	return cut
}

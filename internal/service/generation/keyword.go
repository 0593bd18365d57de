package generation

import (
	"context"
	"strings"

	"github.com/contentwerk/seo-engine/internal/domain"
	"github.com/contentwerk/seo-engine/internal/service/llm"
	"github.com/contentwerk/seo-engine/internal/service/parser"
)

// analyzeKeyword runs the keyword-research mode. The result carries an
// analysis instead of generated content.
func (o *Orchestrator) analyzeKeyword(ctx context.Context, req *domain.GenerationRequest) (*Result, error) {
	o.logger.Info("Dispatching keyword analysis", "focus_keyword", req.FocusKeyword)

	raw, err := o.gateway.ChatCompletion(ctx, req.AIModel, keywordAnalysisMessages(req))
	if err != nil {
		return nil, err
	}

	analysis := parser.ParseKeywordAnalysis(raw)
	return &Result{Analysis: &analysis}, nil
}

func keywordAnalysisMessages(req *domain.GenerationRequest) []llm.Message {
	var user strings.Builder
	user.WriteString("Analysiere das folgende Fokus-Keyword für eine deutschsprachige Webseite.\n\n")
	user.WriteString("Fokus-Keyword: " + req.FocusKeyword + "\n")
	if req.PageType != "" {
		user.WriteString("Seitentyp: " + req.PageType + "\n")
	}
	if req.MainTopic != "" {
		user.WriteString("Hauptthema: " + req.MainTopic + "\n")
	}
	if req.SERPContext != "" {
		user.WriteString("\nSERP-Kontext:\n" + req.SERPContext + "\n")
	}
	user.WriteString("\nAntworte nur mit einem JSON-Objekt in diesem Format:\n")
	user.WriteString(`{"secondaryKeywords": ["..."], "wQuestions": ["..."], "searchIntent": "know|do|buy|go", "suggestedTopics": ["..."]}`)

	return []llm.Message{
		{
			Role: "system",
			Content: "Du bist ein erfahrener SEO-Analyst. " +
				"Du lieferst Sekundär-Keywords, W-Fragen, die dominante Suchintention und Themenvorschläge zu einem Fokus-Keyword. " +
				"Antworte ausschließlich mit validem JSON.",
		},
		{Role: "user", Content: user.String()},
	}
}

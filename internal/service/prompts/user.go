package prompts

import (
	"fmt"
	"strings"

	"github.com/contentwerk/seo-engine/internal/domain"
)

// maxProductDataChars caps manufacturer/product data pasted into the form.
const maxProductDataChars = 3000

// BuildUserPrompt assembles the user message for a fresh generation. Each
// section is included only when the corresponding input is non-empty.
func BuildUserPrompt(cfg domain.ResolvedConfig, req *domain.GenerationRequest, briefing string) string {
	var sb strings.Builder

	sb.WriteString("Erstelle den SEO-Text mit folgenden Angaben:\n\n")

	if req.BrandName != "" {
		sb.WriteString(fmt.Sprintf("Marke: %s\n", req.BrandName))
	}
	if req.MainTopic != "" {
		sb.WriteString(fmt.Sprintf("Hauptthema: %s\n", req.MainTopic))
	}
	sb.WriteString(fmt.Sprintf("Fokus-Keyword: %s\n", req.FocusKeyword))

	if len(req.SecondaryKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Neben-Keywords: %s\n", strings.Join(req.SecondaryKeywords, ", ")))
	}
	if req.PageGoal != "" {
		sb.WriteString(fmt.Sprintf("Seitenziel: %s\n", req.PageGoal))
	}

	if req.ProductData != "" {
		sb.WriteString("\nHersteller-/Produktdaten:\n")
		sb.WriteString(truncate(req.ProductData, maxProductDataChars))
		sb.WriteString("\n")
	}

	if req.AdditionalInfo != "" {
		sb.WriteString("\nZusätzliche Informationen:\n")
		sb.WriteString(req.AdditionalInfo)
		sb.WriteString("\n")
	}

	if len(req.InternalLinks) > 0 {
		sb.WriteString("\nInterne Verlinkungen (sinnvoll im Text unterbringen):\n")
		for _, link := range req.InternalLinks {
			sb.WriteString("- " + link + "\n")
		}
	}

	if len(req.FAQQuestions) > 0 {
		sb.WriteString("\nDiese FAQ-Fragen müssen beantwortet werden:\n")
		for _, question := range req.FAQQuestions {
			sb.WriteString("- " + question + "\n")
		}
	}

	writeSearchIntent(&sb, req.SearchIntent)

	if len(req.WQuestions) > 0 {
		sb.WriteString("\nDiese W-Fragen müssen im Text beantwortet werden:\n")
		for _, question := range req.WQuestions {
			sb.WriteString("- " + question + "\n")
		}
	}

	if req.SERPContext != "" {
		sb.WriteString("\nSERP-Kontext (aktuelle Top-Ergebnisse, zur Orientierung):\n")
		sb.WriteString(req.SERPContext)
		sb.WriteString("\n")
	}

	if briefing != "" {
		sb.WriteString("\nBriefing des Kunden (hat Vorrang vor allgemeinen Regeln):\n")
		sb.WriteString(briefing)
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeSearchIntent maps the declared search intents to writing guidance.
func writeSearchIntent(sb *strings.Builder, intents []string) {
	if len(intents) == 0 {
		return
	}

	sb.WriteString("\nSuchintention:\n")
	for _, intent := range intents {
		switch strings.ToLower(intent) {
		case domain.IntentKnow:
			sb.WriteString("- know: Informationsbedarf vollständig abdecken, Fragen direkt beantworten\n")
		case domain.IntentDo:
			sb.WriteString("- do: konkrete Anleitungen und Handlungsschritte liefern\n")
		case domain.IntentBuy:
			sb.WriteString("- buy: Kaufentscheidung unterstützen, Vorteile und Auswahlkriterien nennen\n")
		case domain.IntentGo:
			sb.WriteString("- go: Orientierung geben, schnell zur gesuchten Seite führen\n")
		default:
			sb.WriteString(fmt.Sprintf("- %s\n", intent))
		}
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}

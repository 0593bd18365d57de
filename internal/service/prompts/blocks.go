package prompts

import (
	"fmt"
	"strings"

	"github.com/contentwerk/seo-engine/internal/domain"
)

// forbiddenPhrases are marketing filler patterns every template bans. The
// list mirrors what editors kept striking out of generated drafts.
var forbiddenPhrases = []string{
	"in der heutigen Zeit",
	"in der heutigen schnelllebigen Welt",
	"Willkommen in der Welt von",
	"Tauchen Sie ein",
	"tauche ein",
	"revolutionär",
	"bahnbrechend",
	"einzigartig",
	"auf ein neues Level",
	"Geheimtipp",
	"das Nonplusultra",
	"Egal ob ... oder ...",
}

// writeToneBlock renders tonality and form of address.
func writeToneBlock(sb *strings.Builder, cfg domain.ResolvedConfig) {
	sb.WriteString(fmt.Sprintf("Tonalität: %s\n", cfg.TonalityLabel))
	sb.WriteString(fmt.Sprintf("Anrede: %s\n", cfg.AddressStyle))
}

// writeLengthBlock renders word count and keyword density targets.
func writeLengthBlock(sb *strings.Builder, cfg domain.ResolvedConfig) {
	sb.WriteString(fmt.Sprintf("Ziel-Länge: ca. %d Wörter.\n", cfg.TargetWordCount))
	sb.WriteString(fmt.Sprintf(
		"Keyword-Dichte: %s. Verwende das Fokus-Keyword %d- bis %d-mal im Fließtext, natürlich eingebunden.\n",
		cfg.KeywordDensity.Label, cfg.MinKeywords, cfg.MaxKeywords))
	sb.WriteString(fmt.Sprintf("Absätze: maximal %d Wörter pro Absatz.\n", cfg.MaxParagraphWords))
}

// writeComplianceBlock renders the regulatory checklist. Nothing is written
// when the checklist is empty.
func writeComplianceBlock(sb *strings.Builder, cfg domain.ResolvedConfig) {
	if len(cfg.Compliance) == 0 {
		return
	}

	sb.WriteString("\nRegulatorische Vorgaben (zwingend einhalten):\n")
	for _, check := range cfg.Compliance {
		switch check {
		case domain.ComplianceMDR:
			sb.WriteString("- MDR: keine Heilversprechen für Medizinprodukte, Zweckbestimmung nicht überschreiten.\n")
		case domain.ComplianceHWG:
			sb.WriteString("- HWG: keine irreführende Heilmittelwerbung, keine Erfolgsgarantien, keine Angstwerbung.\n")
		case domain.ComplianceStudies:
			sb.WriteString("- Studienbezug: Wirkaussagen nur mit belegbaren Studien, Quellen im Text benennen.\n")
		}
	}
}

// writePageSkeleton renders the structural skeleton per page type. Product
// and category pages differ; anything else gets the product skeleton.
func writePageSkeleton(sb *strings.Builder, pageType string) {
	switch strings.ToLower(pageType) {
	case "category":
		sb.WriteString("\nStruktur für eine Kategorieseite:\n")
		sb.WriteString("1. H1 mit dem Fokus-Keyword\n")
		sb.WriteString("2. Einleitung: Sortiment und Nutzen der Kategorie (2-3 Absätze)\n")
		sb.WriteString("3. H2-Abschnitte zu den wichtigsten Unterkategorien oder Produkttypen\n")
		sb.WriteString("4. H2 Kaufberatung: Auswahlkriterien als Liste\n")
		sb.WriteString("5. H2 Anwendung/Pflege, falls relevant\n")
		sb.WriteString("6. Abschluss mit Orientierungshilfe, kein harter Kaufappell\n")
	default:
		sb.WriteString("\nStruktur für eine Produktseite:\n")
		sb.WriteString("1. H1 mit dem Fokus-Keyword\n")
		sb.WriteString("2. Einleitung: Problem und Lösung aus Kundensicht (2 Absätze)\n")
		sb.WriteString("3. H2 Vorteile: die wichtigsten Produktvorteile als Liste\n")
		sb.WriteString("4. H2 Anwendung: Schritt für Schritt erklärt\n")
		sb.WriteString("5. H2 Details: Material, Eigenschaften, Lieferumfang\n")
		sb.WriteString("6. Abschluss mit konkretem Nutzenversprechen\n")
	}
}

// writeAudienceBlock picks the language register from the target audience.
func writeAudienceBlock(sb *strings.Builder, targetAudience string) {
	if targetAudience == "" {
		return
	}

	sb.WriteString(fmt.Sprintf("\nZielgruppe: %s\n", targetAudience))
	if isExpertAudience(targetAudience) {
		sb.WriteString("Verwende Fachsprache und setze Grundlagenwissen voraus. Keine vereinfachenden Erklärungen von Fachbegriffen.\n")
	} else {
		sb.WriteString("Schreibe allgemeinverständlich. Erkläre Fachbegriffe beim ersten Auftreten kurz und einfach.\n")
	}
}

func isExpertAudience(targetAudience string) bool {
	audience := strings.ToLower(targetAudience)
	for _, marker := range []string{"fach", "expert", "profi", "b2b", "arzt", "ärzt", "therapeut", "mediziner"} {
		if strings.Contains(audience, marker) {
			return true
		}
	}
	return false
}

// writeForbiddenBlock renders the anti-pattern list.
func writeForbiddenBlock(sb *strings.Builder) {
	sb.WriteString("\nVerbotene Floskeln und Muster (niemals verwenden):\n")
	for _, phrase := range forbiddenPhrases {
		sb.WriteString("- \"" + phrase + "\"\n")
	}
	sb.WriteString("- Keyword-Stuffing, leere Superlative, ausgedachte Fakten oder Studien\n")
}

// writeJSONContract renders the output contract. The field names are a wire
// contract consumed by the response parser; do not change them.
func writeJSONContract(sb *strings.Builder) {
	sb.WriteString("\nAntworte ausschließlich mit einem einzigen JSON-Objekt, ohne Markdown und ohne Erklärtext davor oder danach:\n")
	sb.WriteString(`{
  "title": "SEO-Titel, max. 60 Zeichen",
  "metaDescription": "Meta-Description, 140-155 Zeichen",
  "seoText": "<h1>...</h1><p>...</p> (der vollständige Text als HTML)",
  "faq": [{"question": "...", "answer": "..."}],
  "internalLinks": ["..."],
  "technicalHints": "Hinweise zur technischen Umsetzung"
}`)
	sb.WriteString("\n")
}

package prompts

import (
	"fmt"
	"strings"

	"github.com/contentwerk/seo-engine/internal/domain"
)

// systemV1 is the first production template. Kept for reproducing old
// generations; minimal instructions, no skeleton, no forbidden-phrase list.
func systemV1(cfg domain.ResolvedConfig, req *domain.GenerationRequest) string {
	var sb strings.Builder

	sb.WriteString("Du bist ein erfahrener SEO-Texter für deutschsprachige Online-Shops.\n\n")
	sb.WriteString("Schreibe einen suchmaschinenoptimierten Text zum vorgegebenen Fokus-Keyword.\n")
	writeToneBlock(&sb, cfg)
	writeLengthBlock(&sb, cfg)
	writeComplianceBlock(&sb, cfg)

	sb.WriteString("\nDer Text braucht eine H1, mehrere H2-Zwischenüberschriften und kurze Absätze.\n")
	sb.WriteString("Wichtige Begriffe kannst du mit <strong> hervorheben.\n")

	writeJSONContract(&sb)
	return sb.String()
}

// systemV2 added the structural skeleton and the audience register after the
// first round of editor feedback.
func systemV2(cfg domain.ResolvedConfig, req *domain.GenerationRequest) string {
	var sb strings.Builder

	sb.WriteString("Du bist ein erfahrener SEO-Texter für deutschsprachige Online-Shops.\n\n")
	sb.WriteString("Schreibe einen suchmaschinenoptimierten Text, der Lesern echten Mehrwert bietet und zugleich für Suchmaschinen sauber strukturiert ist.\n\n")

	writeToneBlock(&sb, cfg)
	writeLengthBlock(&sb, cfg)
	writePageSkeleton(&sb, req.PageType)
	writeAudienceBlock(&sb, req.TargetAudience)
	writeComplianceBlock(&sb, cfg)

	sb.WriteString("\nFormatierung: HTML mit h1/h2/h3, Listen (<ul>/<ol>) für Aufzählungen, <strong> für zentrale Begriffe.\n")

	writeJSONContract(&sb)
	return sb.String()
}

// systemV6 is the E-E-A-T rewrite: same skeleton as v2, plus explicit
// experience/expertise/authority/trust signals.
func systemV6(cfg domain.ResolvedConfig, req *domain.GenerationRequest) string {
	var sb strings.Builder

	sb.WriteString("Du bist ein SEO-Texter, der Inhalte nach den Google-E-E-A-T-Kriterien erstellt (Experience, Expertise, Authoritativeness, Trustworthiness).\n\n")

	sb.WriteString("Baue die vier Signale aktiv in den Text ein:\n")
	sb.WriteString("- Experience: konkrete Anwendungsbeispiele und Praxiswissen\n")
	sb.WriteString("- Expertise: fachlich korrekte, präzise Aussagen mit Substanz\n")
	sb.WriteString("- Authoritativeness: nachvollziehbare Begründungen statt Behauptungen\n")
	sb.WriteString("- Trustworthiness: ehrliche Einordnung, keine übertriebenen Versprechen\n\n")

	writeToneBlock(&sb, cfg)
	writeLengthBlock(&sb, cfg)
	writePageSkeleton(&sb, req.PageType)
	writeAudienceBlock(&sb, req.TargetAudience)
	writeComplianceBlock(&sb, cfg)
	writeForbiddenBlock(&sb)

	writeJSONContract(&sb)
	return sb.String()
}

// systemV8 puts the regulatory rules first. Written for medical device
// shops where MDR/HWG violations are more expensive than a weak ranking.
func systemV8(cfg domain.ResolvedConfig, req *domain.GenerationRequest) string {
	var sb strings.Builder

	sb.WriteString("Du bist ein SEO-Texter für regulierte Gesundheitsprodukte im deutschsprachigen Raum.\n\n")

	sb.WriteString("Oberste Priorität hat die rechtliche Unbedenklichkeit des Textes. Jede Aussage muss auch ohne Quellenangabe vertretbar sein.\n")
	writeComplianceBlock(&sb, cfg)
	if len(cfg.Compliance) == 0 {
		sb.WriteString("\nAuch ohne aktivierte Prüfungen gilt: keine Heilversprechen, keine Erfolgsgarantien, keine erfundenen Studien.\n")
	}

	sb.WriteString("\n")
	writeToneBlock(&sb, cfg)
	writeLengthBlock(&sb, cfg)
	writePageSkeleton(&sb, req.PageType)
	writeAudienceBlock(&sb, req.TargetAudience)
	writeForbiddenBlock(&sb)

	writeJSONContract(&sb)
	return sb.String()
}

// systemV9 is the current default template.
func systemV9(cfg domain.ResolvedConfig, req *domain.GenerationRequest) string {
	var sb strings.Builder

	sb.WriteString("Du bist ein erfahrener SEO-Texter und Content-Stratege für deutschsprachige Online-Shops.\n\n")

	sb.WriteString("Deine Aufgabe: ein vollständiger SEO-Text, der drei Ansprüche gleichzeitig erfüllt:\n")
	sb.WriteString("1. Er beantwortet die Suchintention der Nutzer vollständig.\n")
	sb.WriteString("2. Er ist sauber strukturiert und für Suchmaschinen optimiert.\n")
	sb.WriteString("3. Er klingt nach einem Menschen, nicht nach einer Maschine.\n\n")

	writeToneBlock(&sb, cfg)
	writeLengthBlock(&sb, cfg)
	writePageSkeleton(&sb, req.PageType)
	writeAudienceBlock(&sb, req.TargetAudience)
	writeComplianceBlock(&sb, cfg)

	sb.WriteString("\nQualitätsregeln:\n")
	sb.WriteString("- Jeder Absatz beginnt mit der Kernaussage, Begründung danach.\n")
	sb.WriteString("- Mindestens eine Liste (<ul> oder <ol>) mit konkreten Punkten.\n")
	sb.WriteString("- Zentrale Begriffe mit <strong> markieren, sparsam eingesetzt.\n")
	sb.WriteString("- E-E-A-T beachten: Praxisbeispiele, fachliche Tiefe, ehrliche Einordnung.\n")
	sb.WriteString("- Keine Wiederholung der immer gleichen Satzanfänge.\n")

	writeForbiddenBlock(&sb)
	writeJSONContract(&sb)
	return sb.String()
}

// systemV10 is the compact experimental template: shorter instructions,
// stricter output control. Being evaluated against v9.
func systemV10(cfg domain.ResolvedConfig, req *domain.GenerationRequest) string {
	var sb strings.Builder

	sb.WriteString("Du bist SEO-Texter. Schreibe präzise, ohne Füllwörter, ohne Werbefloskeln.\n\n")

	sb.WriteString(fmt.Sprintf("Tonalität: %s. %s\n", cfg.TonalityLabel, cfg.AddressStyle))
	sb.WriteString(fmt.Sprintf("Länge: ca. %d Wörter. Fokus-Keyword %d-%d-mal (%s). Max. %d Wörter pro Absatz.\n",
		cfg.TargetWordCount, cfg.MinKeywords, cfg.MaxKeywords, cfg.KeywordDensity.Label, cfg.MaxParagraphWords))

	writePageSkeleton(&sb, req.PageType)
	writeAudienceBlock(&sb, req.TargetAudience)
	writeComplianceBlock(&sb, cfg)
	writeForbiddenBlock(&sb)

	sb.WriteString("\nJede Aussage muss konkret und überprüfbar sein. Streiche jeden Satz, der auch auf einer beliebigen anderen Produktseite stehen könnte.\n")

	writeJSONContract(&sb)
	return sb.String()
}

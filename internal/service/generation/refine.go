package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/contentwerk/seo-engine/internal/domain"
	"github.com/contentwerk/seo-engine/internal/service/llm"
	"github.com/contentwerk/seo-engine/internal/service/parser"
)

// RefinementContext bundles the content being reworked with the change
// instruction sent to the model.
type RefinementContext struct {
	Base        *domain.GeneratedContent
	Instruction string
}

// refine reworks existing content according to a free-form instruction.
func (o *Orchestrator) refine(ctx context.Context, req *domain.GenerationRequest) (*Result, error) {
	rc := RefinementContext{
		Base:        req.ExistingContent,
		Instruction: req.RefinementPrompt,
	}

	o.logger.Info("Dispatching refinement",
		"focus_keyword", req.FocusKeyword,
		"instruction_chars", len(rc.Instruction))

	return o.runRefinement(ctx, req, rc)
}

// quickChange translates setting diffs into a refinement instruction. When
// the requested settings match the existing ones there is nothing to do and
// the existing content is returned without a gateway call.
func (o *Orchestrator) quickChange(ctx context.Context, req *domain.GenerationRequest) (*Result, error) {
	changes := quickChangeInstructions(req)
	if len(changes) == 0 {
		o.logger.Info("Quick change requested without setting changes, returning existing content",
			"focus_keyword", req.FocusKeyword)
		return &Result{Content: req.ExistingContent}, nil
	}

	o.logger.Info("Dispatching quick change",
		"focus_keyword", req.FocusKeyword,
		"changes", len(changes))

	rc := RefinementContext{
		Base:        req.ExistingContent,
		Instruction: strings.Join(changes, "\n"),
	}
	return o.runRefinement(ctx, req, rc)
}

// runRefinement is the shared gateway exchange of the refine and
// quick-change paths.
func (o *Orchestrator) runRefinement(ctx context.Context, req *domain.GenerationRequest, rc RefinementContext) (*Result, error) {
	raw, err := o.gateway.ChatCompletion(ctx, req.AIModel, refinementMessages(rc))
	if err != nil {
		return nil, err
	}

	content := parser.Parse(raw, req.FocusKeyword)
	return &Result{Content: &content}, nil
}

func refinementMessages(rc RefinementContext) []llm.Message {
	baseJSON, err := json.Marshal(rc.Base)
	if err != nil {
		baseJSON = []byte("{}")
	}

	var user strings.Builder
	user.WriteString("Bestehender Inhalt als JSON:\n")
	user.Write(baseJSON)
	user.WriteString("\n\nÄnderungswunsch:\n")
	user.WriteString(rc.Instruction)

	return []llm.Message{
		{
			Role: "system",
			Content: "Du überarbeitest bestehende SEO-Texte. " +
				"Setze ausschließlich den Änderungswunsch um und lasse alle anderen Teile inhaltlich unverändert. " +
				"Antworte mit dem vollständigen überarbeiteten JSON-Objekt im selben Format wie der bestehende Inhalt, ohne weitere Erklärungen.",
		},
		{Role: "user", Content: user.String()},
	}
}

// quickChangeInstructions diffs the requested settings against the snapshot
// taken when the existing content was generated. Unset request fields mean
// "keep as is" and produce no instruction.
func quickChangeInstructions(req *domain.GenerationRequest) []string {
	prev := req.ExistingSettings
	if prev == nil {
		prev = &domain.ContentSettings{}
	}

	var changes []string

	tone := req.Tone
	if tone == "" {
		tone = req.Tonality
	}
	if tone != "" && !strings.EqualFold(tone, prev.Tonality) {
		cfg := domain.ResolveConfig(req)
		changes = append(changes, fmt.Sprintf("Ändere die Tonalität des gesamten Textes auf: %s.", cfg.TonalityLabel))
	}

	if req.FormOfAddress != "" && !strings.EqualFold(req.FormOfAddress, prev.FormOfAddress) {
		changes = append(changes, fmt.Sprintf("Stelle die Anrede durchgehend auf %q um.", strings.ToLower(req.FormOfAddress)))
	}

	if target := requestedWordCount(req); target > 0 && target != prev.WordCount {
		if target < prev.WordCount && prev.WordCount > 0 {
			changes = append(changes, fmt.Sprintf("Kürze den Text auf ca. %d Wörter, ohne zentrale Aussagen zu verlieren.", target))
		} else {
			changes = append(changes, fmt.Sprintf("Erweitere den Text auf ca. %d Wörter mit zusätzlichen relevanten Details.", target))
		}
	}

	if req.KeywordDensity != "" && !strings.EqualFold(req.KeywordDensity, prev.KeywordDensity) {
		cfg := domain.ResolveConfig(req)
		changes = append(changes, fmt.Sprintf("Passe die Keyword-Dichte auf %s an.", cfg.KeywordDensity.Label))
	}

	if req.IncludeFAQ != nil && *req.IncludeFAQ != prev.IncludeFAQ {
		if *req.IncludeFAQ {
			changes = append(changes, "Ergänze einen FAQ-Block mit 3 bis 5 passenden Fragen und Antworten.")
		} else {
			changes = append(changes, "Entferne den FAQ-Block vollständig.")
		}
	}

	if req.AddExamples != nil && *req.AddExamples != prev.AddExamples {
		if *req.AddExamples {
			changes = append(changes, "Reichere den Text mit konkreten Anwendungsbeispielen an.")
		} else {
			changes = append(changes, "Entferne die Anwendungsbeispiele aus dem Text.")
		}
	}

	return changes
}

// requestedWordCount returns the word target a quick-change request carries,
// or 0 when neither the explicit count nor the length preset is set.
func requestedWordCount(req *domain.GenerationRequest) int {
	if req.WordCount > 0 {
		return req.WordCount
	}
	if count, ok := domain.WordCountFor(req.ContentLength); ok {
		return count
	}
	return 0
}

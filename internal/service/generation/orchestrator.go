// Package generation routes an incoming request through the generation
// pipeline: config resolution, briefing aggregation, prompt composition,
// the gateway call and response parsing.
package generation

import (
	"context"
	"strings"

	"github.com/contentwerk/seo-engine/internal/domain"
	"github.com/contentwerk/seo-engine/internal/service/llm"
	"github.com/contentwerk/seo-engine/internal/service/parser"
	"github.com/contentwerk/seo-engine/internal/service/prompts"
)

// Briefings is the aggregator surface the orchestrator needs.
type Briefings interface {
	Aggregate(ctx context.Context, paths []string, modelID string) string
}

// Result is the outcome of one request: content for the generation paths,
// analysis for the analyze-keyword mode.
type Result struct {
	Content  *domain.GeneratedContent
	Analysis *domain.KeywordAnalysis
}

// Orchestrator is the top-level entry point of the pipeline. It holds no
// per-request state; one instance serves all requests.
type Orchestrator struct {
	gateway   llm.Completer
	briefings Briefings
	logger    llm.Logger
}

// NewOrchestrator creates an orchestrator. briefings may be nil when no
// storage is configured.
func NewOrchestrator(gateway llm.Completer, briefings Briefings, logger llm.Logger) *Orchestrator {
	if logger == nil {
		logger = llm.NewDefaultLogger()
	}
	return &Orchestrator{gateway: gateway, briefings: briefings, logger: logger}
}

// Handle routes a validated request to one of the four modes. Precedence
// between the content-bearing modes is quickChange > refinementPrompt >
// fresh generation.
func (o *Orchestrator) Handle(ctx context.Context, req *domain.GenerationRequest) (*Result, error) {
	switch {
	case req.Mode == domain.ModeAnalyzeKeyword:
		return o.analyzeKeyword(ctx, req)
	case req.QuickChange && req.ExistingContent != nil:
		return o.quickChange(ctx, req)
	case req.RefinementPrompt != "" && req.ExistingContent != nil:
		return o.refine(ctx, req)
	default:
		return o.generate(ctx, req)
	}
}

// generate is the fresh-generation path.
func (o *Orchestrator) generate(ctx context.Context, req *domain.GenerationRequest) (*Result, error) {
	cfg := domain.ResolveConfig(req)

	briefingText := ""
	if len(req.BriefingFiles) > 0 && o.briefings != nil {
		briefingText = o.briefings.Aggregate(ctx, req.BriefingFiles, req.AIModel)
	}

	bundle := prompts.Compose(req.PromptVersion, cfg, req, briefingText)

	userPrompt := bundle.UserPrompt
	if style := writingStyleBlock(req.Tone); style != "" {
		userPrompt += "\n" + style
	}

	o.logger.Info("Dispatching fresh generation",
		"focus_keyword", req.FocusKeyword,
		"prompt_version", prompts.Lookup(req.PromptVersion).Version,
		"target_words", cfg.TargetWordCount,
		"briefing", briefingText != "")

	raw, err := o.gateway.ChatCompletion(ctx, req.AIModel, []llm.Message{
		{Role: "system", Content: bundle.SystemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return nil, err
	}

	content := parser.Parse(raw, req.FocusKeyword)
	return &Result{Content: &content}, nil
}

// writingStyleBlock returns the tone-specific style instructions appended
// to the user prompt on the fresh-generation path.
func writingStyleBlock(tone string) string {
	switch strings.ToLower(tone) {
	case "factual", "sachlich", "informativ":
		return "Schreibstil: nüchtern und belegbar. Kurze Hauptsätze, keine rhetorischen Fragen, keine Emotionalisierung."
	case "advisory", "beratend":
		return "Schreibstil: wie ein guter Fachberater im Geschäft. Erst das Problem des Lesers ernst nehmen, dann die Lösung begründen."
	case "sales", "verkaufsstark", "werblich", "verkaufend":
		return "Schreibstil: überzeugend, aber seriös. Nutzenargumente statt Superlative, konkrete Vorteile statt Versprechen."
	default:
		return ""
	}
}

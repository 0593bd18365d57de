package generation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentwerk/seo-engine/internal/domain"
	"github.com/contentwerk/seo-engine/internal/service/llm"
)

type fakeGateway struct {
	calls    int
	response string
	err      error
	messages [][]llm.Message
}

func (f *fakeGateway) ChatCompletion(ctx context.Context, modelID string, messages []llm.Message) (string, error) {
	f.calls++
	f.messages = append(f.messages, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeGateway) lastUserMessage(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.messages)
	last := f.messages[len(f.messages)-1]
	require.NotEmpty(t, last)
	return last[len(last)-1].Content
}

const testBody = `<h1>Kompressionsstrümpfe</h1><p>Ein ausführlicher Text über Venengesundheit, ` +
	`Tragekomfort und die richtige Kompressionsklasse für den Alltag und den Sport.</p>`

func validResponse(t *testing.T) string {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{
		"title":   "Kompressionsstrümpfe kaufen",
		"seoText": testBody,
	})
	require.NoError(t, err)
	return string(payload)
}

func existingContent() *domain.GeneratedContent {
	return &domain.GeneratedContent{
		Title:   "Bestehender Titel",
		SEOText: testBody,
		FAQ:     []domain.FAQItem{},
	}
}

func boolPtr(b bool) *bool { return &b }

func TestHandleFreshGeneration(t *testing.T) {
	gateway := &fakeGateway{response: validResponse(t)}
	o := NewOrchestrator(gateway, nil, nil)

	result, err := o.Handle(context.Background(), &domain.GenerationRequest{
		FocusKeyword: "Kompressionsstrümpfe",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Content)
	assert.Nil(t, result.Analysis)
	assert.Equal(t, 1, gateway.calls)
	assert.Equal(t, domain.StatusOK, result.Content.QualityReport.Status)

	require.Len(t, gateway.messages[0], 2)
	assert.Equal(t, "system", gateway.messages[0][0].Role)
	assert.Contains(t, gateway.messages[0][0].Content, "SEO-Texter")
	assert.Contains(t, gateway.messages[0][1].Content, "Fokus-Keyword: Kompressionsstrümpfe")
}

func TestHandleFreshGenerationAppendsStyleBlock(t *testing.T) {
	gateway := &fakeGateway{response: validResponse(t)}
	o := NewOrchestrator(gateway, nil, nil)

	_, err := o.Handle(context.Background(), &domain.GenerationRequest{
		FocusKeyword: "Kompressionsstrümpfe",
		Tone:         "sales",
	})
	require.NoError(t, err)
	assert.Contains(t, gateway.lastUserMessage(t), "Schreibstil:")
}

// A quick change whose settings match the snapshot is a no-op: the existing
// content comes back untouched and no gateway call happens.
func TestHandleQuickChangeWithoutDiff(t *testing.T) {
	gateway := &fakeGateway{response: validResponse(t)}
	o := NewOrchestrator(gateway, nil, nil)
	existing := existingContent()

	result, err := o.Handle(context.Background(), &domain.GenerationRequest{
		FocusKeyword:    "Kompressionsstrümpfe",
		QuickChange:     true,
		Tone:            "factual",
		WordCount:       800,
		ExistingContent: existing,
		ExistingSettings: &domain.ContentSettings{
			Tonality:  "factual",
			WordCount: 800,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, gateway.calls)
	assert.Same(t, existing, result.Content)
}

func TestHandleQuickChangeWithDiff(t *testing.T) {
	gateway := &fakeGateway{response: validResponse(t)}
	o := NewOrchestrator(gateway, nil, nil)

	result, err := o.Handle(context.Background(), &domain.GenerationRequest{
		FocusKeyword:    "Kompressionsstrümpfe",
		QuickChange:     true,
		IncludeFAQ:      boolPtr(true),
		ExistingContent: existingContent(),
		ExistingSettings: &domain.ContentSettings{
			IncludeFAQ: false,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, gateway.calls)
	require.NotNil(t, result.Content)

	user := gateway.lastUserMessage(t)
	assert.Contains(t, user, "Bestehender Inhalt")
	assert.Contains(t, user, "FAQ-Block")
	assert.Contains(t, user, "Bestehender Titel")
}

// When both quickChange and refinementPrompt are set, quickChange wins.
func TestHandleQuickChangeBeatsRefinement(t *testing.T) {
	gateway := &fakeGateway{response: validResponse(t)}
	o := NewOrchestrator(gateway, nil, nil)

	_, err := o.Handle(context.Background(), &domain.GenerationRequest{
		FocusKeyword:     "Kompressionsstrümpfe",
		QuickChange:      true,
		RefinementPrompt: "Mach den Text lustiger.",
		Tone:             "sales",
		ExistingContent:  existingContent(),
		ExistingSettings: &domain.ContentSettings{Tonality: "factual"},
	})

	require.NoError(t, err)
	user := gateway.lastUserMessage(t)
	assert.Contains(t, user, "Tonalität")
	assert.NotContains(t, user, "Mach den Text lustiger.")
}

func TestHandleRefinement(t *testing.T) {
	gateway := &fakeGateway{response: validResponse(t)}
	o := NewOrchestrator(gateway, nil, nil)

	result, err := o.Handle(context.Background(), &domain.GenerationRequest{
		FocusKeyword:     "Kompressionsstrümpfe",
		RefinementPrompt: "Kürze die Einleitung auf zwei Sätze.",
		ExistingContent:  existingContent(),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, gateway.calls)
	require.NotNil(t, result.Content)

	user := gateway.lastUserMessage(t)
	assert.Contains(t, user, "Kürze die Einleitung auf zwei Sätze.")
	assert.Contains(t, user, "Bestehender Titel")
}

// Without existing content the refinement prompt cannot apply; the request
// falls through to a fresh generation.
func TestHandleRefinementWithoutExistingContent(t *testing.T) {
	gateway := &fakeGateway{response: validResponse(t)}
	o := NewOrchestrator(gateway, nil, nil)

	_, err := o.Handle(context.Background(), &domain.GenerationRequest{
		FocusKeyword:     "Kompressionsstrümpfe",
		RefinementPrompt: "Kürzer bitte.",
	})

	require.NoError(t, err)
	require.Len(t, gateway.messages, 1)
	assert.Contains(t, gateway.messages[0][0].Content, "SEO-Texter")
}

func TestHandleAnalyzeKeyword(t *testing.T) {
	gateway := &fakeGateway{response: `{"searchIntent": "buy", "secondaryKeywords": ["Stützstrümpfe"]}`}
	o := NewOrchestrator(gateway, nil, nil)

	result, err := o.Handle(context.Background(), &domain.GenerationRequest{
		Mode:         domain.ModeAnalyzeKeyword,
		FocusKeyword: "Kompressionsstrümpfe",
	})

	require.NoError(t, err)
	assert.Nil(t, result.Content)
	require.NotNil(t, result.Analysis)
	assert.Equal(t, domain.IntentBuy, result.Analysis.SearchIntent)
	assert.Equal(t, []string{"Stützstrümpfe"}, result.Analysis.SecondaryKeywords)
}

func TestHandleAnalyzeKeywordInvalidIntent(t *testing.T) {
	gateway := &fakeGateway{response: `{"searchIntent": "purchase", "secondaryKeywords": ["Stützstrümpfe"]}`}
	o := NewOrchestrator(gateway, nil, nil)

	result, err := o.Handle(context.Background(), &domain.GenerationRequest{
		Mode:         domain.ModeAnalyzeKeyword,
		FocusKeyword: "Kompressionsstrümpfe",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Analysis)
	assert.Equal(t, domain.IntentKnow, result.Analysis.SearchIntent)
}

func TestHandlePropagatesGatewayErrors(t *testing.T) {
	gateway := &fakeGateway{err: llm.ErrRateLimited}
	o := NewOrchestrator(gateway, nil, nil)

	_, err := o.Handle(context.Background(), &domain.GenerationRequest{FocusKeyword: "k"})
	assert.ErrorIs(t, err, llm.ErrRateLimited)
}

func TestHandleUnparseableResponse(t *testing.T) {
	gateway := &fakeGateway{response: "Entschuldigung, das kann ich nicht."}
	o := NewOrchestrator(gateway, nil, nil)

	result, err := o.Handle(context.Background(), &domain.GenerationRequest{FocusKeyword: "k"})
	require.NoError(t, err)
	require.NotNil(t, result.Content)
	assert.Equal(t, domain.StatusError, result.Content.QualityReport.Status)
}

func TestQuickChangeInstructionWording(t *testing.T) {
	shrink := quickChangeInstructions(&domain.GenerationRequest{
		WordCount:        400,
		ExistingSettings: &domain.ContentSettings{WordCount: 1200},
	})
	require.Len(t, shrink, 1)
	assert.Contains(t, shrink[0], "Kürze")
	assert.Contains(t, shrink[0], "400")

	grow := quickChangeInstructions(&domain.GenerationRequest{
		ContentLength:    "long",
		ExistingSettings: &domain.ContentSettings{WordCount: 400},
	})
	require.Len(t, grow, 1)
	assert.Contains(t, grow[0], "Erweitere")
	assert.Contains(t, grow[0], "1200")

	removeFAQ := quickChangeInstructions(&domain.GenerationRequest{
		IncludeFAQ:       boolPtr(false),
		ExistingSettings: &domain.ContentSettings{IncludeFAQ: true},
	})
	require.Len(t, removeFAQ, 1)
	assert.Contains(t, removeFAQ[0], "Entferne")
}

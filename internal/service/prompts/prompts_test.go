package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contentwerk/seo-engine/internal/domain"
)

func TestLookupFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "v9", Lookup("").Version)
	assert.Equal(t, "v9", Lookup("v99").Version)
	assert.Equal(t, "v9", Lookup("latest").Version)
	assert.Equal(t, "v10", Lookup("v10").Version)
}

func TestComposeUnknownVersionUsesDefaultStrategy(t *testing.T) {
	req := &domain.GenerationRequest{FocusKeyword: "Kompressionsstrümpfe"}
	cfg := domain.ResolveConfig(req)

	unknown := Compose("v99", cfg, req, "")
	fallback := Compose("v9", cfg, req, "")
	assert.Equal(t, fallback.SystemPrompt, unknown.SystemPrompt)
}

func TestEveryVersionCarriesTheWireContract(t *testing.T) {
	req := &domain.GenerationRequest{FocusKeyword: "Wanderschuhe"}
	cfg := domain.ResolveConfig(req)

	for _, version := range Versions() {
		bundle := Compose(version, cfg, req, "")
		assert.Contains(t, bundle.SystemPrompt, `"seoText"`, "version %s", version)
		assert.Contains(t, bundle.SystemPrompt, `"metaDescription"`, "version %s", version)
		assert.NotEmpty(t, bundle.UserPrompt, "version %s", version)
	}
}

func TestSystemPromptComplianceBlock(t *testing.T) {
	req := &domain.GenerationRequest{
		FocusKeyword:    "Blutdruckmessgerät",
		ComplianceCheck: true,
		CheckMDR:        true,
		CheckHWG:        true,
	}
	cfg := domain.ResolveConfig(req)

	bundle := Compose("v9", cfg, req, "")
	assert.Contains(t, bundle.SystemPrompt, "MDR")
	assert.Contains(t, bundle.SystemPrompt, "HWG")

	// Without the master switch the block disappears entirely.
	off := &domain.GenerationRequest{FocusKeyword: "Blutdruckmessgerät", CheckMDR: true}
	offBundle := Compose("v9", domain.ResolveConfig(off), off, "")
	assert.NotContains(t, offBundle.SystemPrompt, "MDR")
	assert.NotContains(t, offBundle.SystemPrompt, "Regulatorische Vorgaben")
}

func TestSystemPromptPageSkeleton(t *testing.T) {
	category := &domain.GenerationRequest{FocusKeyword: "Laufschuhe", PageType: "category"}
	bundle := Compose("v9", domain.ResolveConfig(category), category, "")
	assert.Contains(t, bundle.SystemPrompt, "Kategorieseite")

	product := &domain.GenerationRequest{FocusKeyword: "Laufschuhe", PageType: "product"}
	bundle = Compose("v9", domain.ResolveConfig(product), product, "")
	assert.Contains(t, bundle.SystemPrompt, "Produktseite")
}

func TestUserPromptOmitsEmptySections(t *testing.T) {
	req := &domain.GenerationRequest{FocusKeyword: "Gartenmöbel"}
	prompt := BuildUserPrompt(domain.ResolveConfig(req), req, "")

	assert.Contains(t, prompt, "Fokus-Keyword: Gartenmöbel")
	assert.NotContains(t, prompt, "Marke:")
	assert.NotContains(t, prompt, "Neben-Keywords:")
	assert.NotContains(t, prompt, "Briefing des Kunden")
	assert.NotContains(t, prompt, "SERP-Kontext")
}

func TestUserPromptIncludesProvidedSections(t *testing.T) {
	req := &domain.GenerationRequest{
		FocusKeyword:      "Gartenmöbel",
		BrandName:         "Gartenwelt",
		SecondaryKeywords: []string{"Gartenstuhl", "Gartentisch"},
		InternalLinks:     []string{"/pflegehinweise"},
		SearchIntent:      []string{"buy"},
		WQuestions:        []string{"Welches Material ist wetterfest?"},
	}
	prompt := BuildUserPrompt(domain.ResolveConfig(req), req, "Nur FSC-Holz erwähnen.")

	assert.Contains(t, prompt, "Marke: Gartenwelt")
	assert.Contains(t, prompt, "Gartenstuhl, Gartentisch")
	assert.Contains(t, prompt, "/pflegehinweise")
	assert.Contains(t, prompt, "buy: Kaufentscheidung")
	assert.Contains(t, prompt, "Welches Material ist wetterfest?")
	assert.Contains(t, prompt, "Nur FSC-Holz erwähnen.")
}

func TestUserPromptTruncatesProductData(t *testing.T) {
	long := make([]rune, maxProductDataChars+500)
	for i := range long {
		long[i] = 'x'
	}
	req := &domain.GenerationRequest{FocusKeyword: "k", ProductData: string(long)}
	prompt := BuildUserPrompt(domain.ResolveConfig(req), req, "")

	assert.Less(t, len([]rune(prompt)), maxProductDataChars+400)
}

func TestLengthBlockReflectsResolvedTargets(t *testing.T) {
	req := &domain.GenerationRequest{
		FocusKeyword:   "Trekkingrucksack",
		ContentLength:  "long",
		KeywordDensity: "high",
	}
	bundle := Compose("v9", domain.ResolveConfig(req), req, "")

	assert.Contains(t, bundle.SystemPrompt, "1200 Wörter")
	assert.Contains(t, bundle.SystemPrompt, "18- bis 30-mal")
}

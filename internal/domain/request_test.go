package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiresFocusKeyword(t *testing.T) {
	err := (&GenerationRequest{}).Validate()
	require.NotNil(t, err)
	assert.Contains(t, err.Details, "focusKeyword")
	assert.Contains(t, err.Error(), "focusKeyword")

	blank := (&GenerationRequest{FocusKeyword: "   "}).Validate()
	require.NotNil(t, blank)
	assert.Contains(t, blank.Details, "focusKeyword")
}

func TestValidateFocusKeywordLength(t *testing.T) {
	ok := (&GenerationRequest{FocusKeyword: strings.Repeat("ä", MaxFocusKeywordLen)}).Validate()
	assert.Nil(t, ok)

	tooLong := (&GenerationRequest{FocusKeyword: strings.Repeat("ä", MaxFocusKeywordLen+1)}).Validate()
	require.NotNil(t, tooLong)
	assert.Contains(t, tooLong.Details, "focusKeyword")
}

func TestValidateMode(t *testing.T) {
	assert.Nil(t, (&GenerationRequest{FocusKeyword: "k"}).Validate())
	assert.Nil(t, (&GenerationRequest{FocusKeyword: "k", Mode: ModeGenerate}).Validate())
	assert.Nil(t, (&GenerationRequest{FocusKeyword: "k", Mode: ModeAnalyzeKeyword}).Validate())

	bad := (&GenerationRequest{FocusKeyword: "k", Mode: "summarize"}).Validate()
	require.NotNil(t, bad)
	assert.Contains(t, bad.Details, "mode")
}

func TestValidateListLimits(t *testing.T) {
	req := &GenerationRequest{
		FocusKeyword:      "k",
		SecondaryKeywords: make([]string, MaxSecondaryKeywords+1),
		BriefingFiles:     make([]string, MaxBriefingFiles+1),
	}
	err := req.Validate()
	require.NotNil(t, err)
	assert.Contains(t, err.Details, "secondaryKeywords")
	assert.Contains(t, err.Details, "briefingFiles")
}

func TestValidateRefinementPromptLength(t *testing.T) {
	req := &GenerationRequest{
		FocusKeyword:     "k",
		RefinementPrompt: strings.Repeat("x", MaxRefinementPromptLen+1),
	}
	err := req.Validate()
	require.NotNil(t, err)
	assert.Contains(t, err.Details, "refinementPrompt")
}

// Unknown enum-like values pass validation; the resolver maps them to
// defaults instead.
func TestValidateAcceptsUnknownEnumValues(t *testing.T) {
	req := &GenerationRequest{
		FocusKeyword:   "k",
		Tone:           "dramatic",
		FormOfAddress:  "plural",
		KeywordDensity: "extreme",
		PromptVersion:  "v99",
	}
	assert.Nil(t, req.Validate())
}

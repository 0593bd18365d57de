package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Request modes.
const (
	ModeGenerate       = "generate"
	ModeAnalyzeKeyword = "analyze-keyword"
)

// Limits enforced at the request boundary.
const (
	MaxFocusKeywordLen     = 200
	MaxSecondaryKeywords   = 20
	MaxBriefingFiles       = 20
	MaxRefinementPromptLen = 5000
)

// ComplianceFlags carries the nested form of the compliance switches.
type ComplianceFlags struct {
	MDR     bool `json:"mdr"`
	HWG     bool `json:"hwg"`
	Studies bool `json:"studies"`
}

// ContentSettings is the form-state snapshot a piece of content was
// generated with. The quick-change path diffs the incoming request against
// it to build a minimal change instruction.
type ContentSettings struct {
	Tonality       string `json:"tonality"`
	FormOfAddress  string `json:"formOfAddress"`
	WordCount      int    `json:"wordCount"`
	KeywordDensity string `json:"keywordDensity"`
	IncludeFAQ     bool   `json:"includeFAQ"`
	AddExamples    bool   `json:"addExamples"`
}

// GenerationRequest is the inbound payload of the generation endpoint.
// Exactly one of fresh generation, quick change (quickChange +
// existingContent) or refinement (refinementPrompt + existingContent) is
// active per call; precedence is quickChange > refinementPrompt > fresh.
type GenerationRequest struct {
	Mode         string `json:"mode,omitempty"` // generate (default) | analyze-keyword
	FocusKeyword string `json:"focusKeyword"`

	Language       string `json:"language,omitempty"`
	PageType       string `json:"pageType,omitempty"` // product | category
	TargetAudience string `json:"targetAudience,omitempty"`
	FormOfAddress  string `json:"formOfAddress,omitempty"` // du | sie | neutral
	Tone           string `json:"tone,omitempty"`           // factual | advisory | sales (+ legacy German synonyms)
	Tonality       string `json:"tonality,omitempty"`       // free-form mix id, used when tone is absent
	ContentLength  string `json:"contentLength,omitempty"`  // short | medium | long
	WordCount      int    `json:"wordCount,omitempty"`
	KeywordDensity string `json:"keywordDensity,omitempty"` // minimal | normal | high

	SecondaryKeywords []string `json:"secondaryKeywords,omitempty"`
	BriefingFiles     []string `json:"briefingFiles,omitempty"`

	ComplianceCheck  bool             `json:"complianceCheck,omitempty"`
	ComplianceChecks *ComplianceFlags `json:"complianceChecks,omitempty"`
	CheckMDR         bool             `json:"checkMDR,omitempty"`
	CheckHWG         bool             `json:"checkHWG,omitempty"`
	CheckStudies     bool             `json:"checkStudies,omitempty"`

	PromptVersion string   `json:"promptVersion,omitempty"`
	PageGoal      string   `json:"pageGoal,omitempty"`
	SearchIntent  []string `json:"searchIntent,omitempty"`
	WQuestions    []string `json:"wQuestions,omitempty"`

	BrandName          string   `json:"brandName,omitempty"`
	MainTopic          string   `json:"mainTopic,omitempty"`
	ProductData        string   `json:"productData,omitempty"`
	AdditionalInfo     string   `json:"additionalInfo,omitempty"`
	InternalLinks      []string `json:"internalLinks,omitempty"`
	FAQQuestions       []string `json:"faqQuestions,omitempty"`
	IncludeFAQ         *bool    `json:"includeFAQ,omitempty"`
	AddExamples        *bool    `json:"addExamples,omitempty"`
	MaxParagraphLength int      `json:"maxParagraphLength,omitempty"`

	ExistingContent  *GeneratedContent `json:"existingContent,omitempty"`
	ExistingSettings *ContentSettings  `json:"existingSettings,omitempty"`
	RefinementPrompt string            `json:"refinementPrompt,omitempty"`
	QuickChange      bool              `json:"quickChange,omitempty"`

	AIModel     string `json:"aiModel,omitempty"`
	SERPContext string `json:"serpContext,omitempty"`
}

// ValidationError carries per-field validation details for the HTTP layer.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	return "invalid request: " + strings.Join(fields, ", ")
}

// Validate checks schema constraints. Enum-like fields (tone, formOfAddress,
// keywordDensity, promptVersion) are deliberately not validated here: the
// config resolver maps unrecognized values to documented defaults instead of
// rejecting the request.
func (r *GenerationRequest) Validate() *ValidationError {
	details := make(map[string]string)

	keyword := strings.TrimSpace(r.FocusKeyword)
	if keyword == "" {
		details["focusKeyword"] = "focusKeyword is required"
	} else if utf8.RuneCountInString(keyword) > MaxFocusKeywordLen {
		details["focusKeyword"] = fmt.Sprintf("focusKeyword must be at most %d characters", MaxFocusKeywordLen)
	}

	if r.Mode != "" && r.Mode != ModeGenerate && r.Mode != ModeAnalyzeKeyword {
		details["mode"] = "mode must be \"generate\" or \"analyze-keyword\""
	}

	if len(r.SecondaryKeywords) > MaxSecondaryKeywords {
		details["secondaryKeywords"] = fmt.Sprintf("at most %d secondary keywords are allowed", MaxSecondaryKeywords)
	}

	if len(r.BriefingFiles) > MaxBriefingFiles {
		details["briefingFiles"] = fmt.Sprintf("at most %d briefing files are allowed", MaxBriefingFiles)
	}

	if utf8.RuneCountInString(r.RefinementPrompt) > MaxRefinementPromptLen {
		details["refinementPrompt"] = fmt.Sprintf("refinementPrompt must be at most %d characters", MaxRefinementPromptLen)
	}

	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}

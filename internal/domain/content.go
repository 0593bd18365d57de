package domain

// Quality statuses used by the report and the E-E-A-T classification.
const (
	StatusOK     = "ok"
	StatusError  = "error"
	StatusGreen  = "green"
	StatusYellow = "yellow"
	StatusRed    = "red"
)

// FAQItem is one question/answer pair of the generated FAQ block.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EvidenceRow links a claim in the text to its supporting source.
type EvidenceRow struct {
	Claim  string `json:"claim"`
	Source string `json:"source"`
}

// QualityReport summarizes parse/validation outcome for one content object.
// Status is "error" when the raw model output could not be recovered.
type QualityReport struct {
	Status        string        `json:"status"`
	Flags         []string      `json:"flags"`
	EvidenceTable []EvidenceRow `json:"evidenceTable"`
}

// EEATScore is one 0-100 sub-score with its traffic-light status.
type EEATScore struct {
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// GoogleEEAT holds the four heuristic sub-scores. They are derived from
// HTML structure counts, not from semantic analysis, and exist for
// compatibility with previously stored scores.
type GoogleEEAT struct {
	Experience        EEATScore `json:"experience"`
	Expertise         EEATScore `json:"expertise"`
	Authoritativeness EEATScore `json:"authoritativeness"`
	Trustworthiness   EEATScore `json:"trustworthiness"`
}

// ContentMetrics are structural counts computed from the seoText HTML.
type ContentMetrics struct {
	WordCount   int `json:"wordCount"`
	H1Count     int `json:"h1Count"`
	H2Count     int `json:"h2Count"`
	H3Count     int `json:"h3Count"`
	ListCount   int `json:"listCount"`
	StrongCount int `json:"strongCount"`
	FAQCount    int `json:"faqCount"`
}

// GuidelineValidation aggregates the derived quality signals.
type GuidelineValidation struct {
	OverallScore int            `json:"overallScore"`
	GoogleEEAT   GoogleEEAT     `json:"googleEEAT"`
	Metrics      ContentMetrics `json:"metrics"`
}

// GeneratedContent is the structured output of the generation pipeline.
// Every field has a deterministic fallback so the object is well-formed
// even when the model response is malformed.
type GeneratedContent struct {
	Title               string              `json:"title"`
	MetaDescription     string              `json:"metaDescription"`
	SEOText             string              `json:"seoText"`
	FAQ                 []FAQItem           `json:"faq"`
	InternalLinks       []string            `json:"internalLinks"`
	TechnicalHints      string              `json:"technicalHints"`
	QualityReport       QualityReport       `json:"qualityReport"`
	GuidelineValidation GuidelineValidation `json:"guidelineValidation"`
}

// Search intents per the know/do/buy/go model.
const (
	IntentKnow = "know"
	IntentDo   = "do"
	IntentBuy  = "buy"
	IntentGo   = "go"
)

// KeywordAnalysis is the output of the analyze-keyword mode.
type KeywordAnalysis struct {
	SecondaryKeywords []string `json:"secondaryKeywords"`
	WQuestions        []string `json:"wQuestions"`
	SearchIntent      string   `json:"searchIntent"`
	SuggestedTopics   []string `json:"suggestedTopics"`
}

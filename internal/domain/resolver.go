package domain

import (
	"math"
	"strings"
)

// Compliance checklist entries.
const (
	ComplianceMDR     = "mdr"
	ComplianceHWG     = "hwg"
	ComplianceStudies = "studies"
)

// KeywordDensityRange is a fractional density window with its German label.
type KeywordDensityRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Label string  `json:"label"`
}

// ResolvedConfig holds the typed generation parameters derived from a raw
// request. It is created once per request and never mutated afterward.
type ResolvedConfig struct {
	AddressStyle      string
	TonalityLabel     string
	TargetWordCount   int
	KeywordDensity    KeywordDensityRange
	MinKeywords       int
	MaxKeywords       int
	Compliance        []string
	MaxParagraphWords int
}

// Word count targets per contentLength value.
const (
	wordCountShort   = 400
	wordCountMedium  = 800
	wordCountLong    = 1200
	defaultWordCount = wordCountMedium

	defaultMaxParagraphWords = 300
)

var addressStyles = map[string]string{
	"du":      "Sprich die Leserinnen und Leser direkt mit \"du\" an, locker und auf Augenhöhe.",
	"sie":     "Sprich die Leserinnen und Leser mit \"Sie\" an, höflich und professionell.",
	"neutral": "Vermeide jede direkte Anrede und formuliere neutral und unpersönlich.",
}

// toneLabels maps the canonical tone values (and their legacy German
// synonyms) to descriptive tonality labels.
var toneLabels = map[string]string{
	"factual":  "Sachlich-informativ: klare Fakten, keine Übertreibungen",
	"advisory": "Beratend-unterstützend: lösungsorientiert und nahbar",
	"sales":    "Verkaufsorientiert: nutzenbetont und aktivierend",
}

var legacyToneSynonyms = map[string]string{
	"sachlich":      "factual",
	"beratend":      "advisory",
	"verkaufsstark": "sales",
	"werblich":      "sales",
	"verkaufend":    "sales",
	"informativ":    "factual",
}

// tonalityMixes is the fallback table for the free-form tonality id.
var tonalityMixes = map[string]string{
	"expert":       "Experten-Mix: fachlich fundiert, präzise, mit Tiefgang",
	"consultant":   "Berater-Mix: empathisch, lösungsorientiert, vertrauensbildend",
	"storytelling": "Storytelling-Mix: bildhaft, erzählend, emotional",
	"conversion":   "Conversion-Mix: aktivierend, nutzenorientiert, mit klaren CTAs",
	"balanced":     "Balanced-Mix",
}

const defaultTonalityLabel = "Balanced-Mix"

var densityRanges = map[string]KeywordDensityRange{
	"minimal": {Min: 0.003, Max: 0.008, Label: "minimal (0,3-0,8%)"},
	"normal":  {Min: 0.005, Max: 0.015, Label: "normal (0,5-1,5%)"},
	"high":    {Min: 0.015, Max: 0.025, Label: "hoch (1,5-2,5%)"},
}

// ResolveConfig normalizes the raw request fields into typed parameters.
// It is a pure mapping and never fails: unrecognized enum values fall back
// to the documented defaults.
func ResolveConfig(req *GenerationRequest) ResolvedConfig {
	cfg := ResolvedConfig{
		AddressStyle:      resolveAddressStyle(req.FormOfAddress),
		TonalityLabel:     resolveTonality(req.Tone, req.Tonality),
		TargetWordCount:   resolveWordCount(req.ContentLength, req.WordCount),
		KeywordDensity:    resolveDensity(req.KeywordDensity),
		Compliance:        resolveCompliance(req),
		MaxParagraphWords: defaultMaxParagraphWords,
	}

	if req.MaxParagraphLength > 0 {
		cfg.MaxParagraphWords = req.MaxParagraphLength
	}

	cfg.MinKeywords = ceilFraction(cfg.TargetWordCount, cfg.KeywordDensity.Min)
	cfg.MaxKeywords = ceilFraction(cfg.TargetWordCount, cfg.KeywordDensity.Max)

	return cfg
}

func resolveAddressStyle(formOfAddress string) string {
	if style, ok := addressStyles[strings.ToLower(formOfAddress)]; ok {
		return style
	}
	return addressStyles["du"]
}

func resolveTonality(tone, tonality string) string {
	key := strings.ToLower(tone)
	if canonical, ok := legacyToneSynonyms[key]; ok {
		key = canonical
	}
	if label, ok := toneLabels[key]; ok {
		return label
	}
	if label, ok := tonalityMixes[strings.ToLower(tonality)]; ok {
		return label
	}
	return defaultTonalityLabel
}

func resolveWordCount(contentLength string, explicit int) int {
	if explicit > 0 {
		return explicit
	}
	if count, ok := WordCountFor(contentLength); ok {
		return count
	}
	return defaultWordCount
}

// WordCountFor returns the word target for a contentLength value and
// whether the value was recognized.
func WordCountFor(contentLength string) (int, bool) {
	switch strings.ToLower(contentLength) {
	case "short":
		return wordCountShort, true
	case "medium":
		return wordCountMedium, true
	case "long":
		return wordCountLong, true
	default:
		return 0, false
	}
}

func resolveDensity(keywordDensity string) KeywordDensityRange {
	if r, ok := densityRanges[strings.ToLower(keywordDensity)]; ok {
		return r
	}
	return densityRanges["normal"]
}

// resolveCompliance folds the nested and flat compliance flags into one
// checklist. The checklist is only populated when the overall compliance
// switch is on.
func resolveCompliance(req *GenerationRequest) []string {
	if !req.ComplianceCheck {
		return nil
	}

	mdr := req.CheckMDR
	hwg := req.CheckHWG
	studies := req.CheckStudies
	if req.ComplianceChecks != nil {
		mdr = mdr || req.ComplianceChecks.MDR
		hwg = hwg || req.ComplianceChecks.HWG
		studies = studies || req.ComplianceChecks.Studies
	}

	var checklist []string
	if mdr {
		checklist = append(checklist, ComplianceMDR)
	}
	if hwg {
		checklist = append(checklist, ComplianceHWG)
	}
	if studies {
		checklist = append(checklist, ComplianceStudies)
	}
	return checklist
}

// ceilFraction computes ceil(count*fraction) with a small epsilon so that
// binary float artifacts (800*0.015 = 12.000000000000002) do not bump an
// exact product to the next integer.
func ceilFraction(count int, fraction float64) int {
	return int(math.Ceil(float64(count)*fraction - 1e-9))
}

package prompts

import (
	"github.com/contentwerk/seo-engine/internal/domain"
)

// Bundle is the pair of prompt strings sent to the gateway for a fresh
// generation. It is purely derived from the resolved config and the request.
type Bundle struct {
	SystemPrompt string
	UserPrompt   string
}

// Strategy builds the system prompt of one prompt version. All versions
// share the same user prompt assembly; only the system instructions differ.
type Strategy struct {
	Version     string
	Description string
	System      func(cfg domain.ResolvedConfig, req *domain.GenerationRequest) string
}

// DefaultVersion is used when a request names no version or an unknown one.
const DefaultVersion = "v9"

var registry = map[string]Strategy{
	"v1":  {Version: "v1", Description: "first production template", System: systemV1},
	"v2":  {Version: "v2", Description: "adds structural requirements", System: systemV2},
	"v6":  {Version: "v6", Description: "E-E-A-T focused rewrite", System: systemV6},
	"v8":  {Version: "v8", Description: "compliance-first template", System: systemV8},
	"v9":  {Version: "v9", Description: "current default", System: systemV9},
	"v10": {Version: "v10", Description: "compact experimental template", System: systemV10},
}

// Lookup returns the strategy for the given version id, falling back to the
// default strategy instead of failing on unknown ids.
func Lookup(version string) Strategy {
	if s, ok := registry[version]; ok {
		return s
	}
	return registry[DefaultVersion]
}

// Versions lists the registered prompt version ids.
func Versions() []string {
	versions := make([]string, 0, len(registry))
	for v := range registry {
		versions = append(versions, v)
	}
	return versions
}

// Compose selects the strategy for the given version and produces the
// prompt bundle for a fresh generation.
func Compose(version string, cfg domain.ResolvedConfig, req *domain.GenerationRequest, briefing string) Bundle {
	strategy := Lookup(version)
	return Bundle{
		SystemPrompt: strategy.System(cfg, req),
		UserPrompt:   BuildUserPrompt(cfg, req, briefing),
	}
}

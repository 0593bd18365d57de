package llm

import "math"

// DefaultModelID is used when a request names no model or an unknown one.
const DefaultModelID = "google/gemini-2.5-flash"

// ModelConfig describes one model available through the AI gateway.
type ModelConfig struct {
	ID                string  // registry key, also accepted in requests
	Name              string  // wire name sent to the gateway
	Provider          string  // upstream provider behind the gateway
	Temperature       float64 //
	InputCostPerMTok  float64 // USD per million input tokens
	OutputCostPerMTok float64 // USD per million output tokens
}

// Models maps model ids to their gateway configuration. The gateway brokers
// several providers behind one chat-completions endpoint, so the provider
// field is informational only.
var Models = map[string]ModelConfig{
	"google/gemini-2.5-flash": {
		ID:                "google/gemini-2.5-flash",
		Name:              "google/gemini-2.5-flash",
		Provider:          "google",
		Temperature:       0.7,
		InputCostPerMTok:  0.30,
		OutputCostPerMTok: 2.50,
	},
	"google/gemini-2.5-flash-lite": {
		ID:                "google/gemini-2.5-flash-lite",
		Name:              "google/gemini-2.5-flash-lite",
		Provider:          "google",
		Temperature:       0.7,
		InputCostPerMTok:  0.10,
		OutputCostPerMTok: 0.40,
	},
	"google/gemini-2.5-pro": {
		ID:                "google/gemini-2.5-pro",
		Name:              "google/gemini-2.5-pro",
		Provider:          "google",
		Temperature:       0.7,
		InputCostPerMTok:  1.25,
		OutputCostPerMTok: 10.00,
	},
	"openai/gpt-5-mini": {
		ID:                "openai/gpt-5-mini",
		Name:              "openai/gpt-5-mini",
		Provider:          "openai",
		Temperature:       0.7,
		InputCostPerMTok:  0.25,
		OutputCostPerMTok: 2.00,
	},
}

// LookupModel returns the configuration for the given id, falling back to
// the default model when the id is empty or unknown.
func LookupModel(id string) ModelConfig {
	if model, ok := Models[id]; ok {
		return model
	}
	return Models[DefaultModelID]
}

// charsPerToken is a rough average across the gateway's models.
const charsPerToken = 3.5

// EstimateTokens estimates the token count of a text from its character
// length. The gateway does not report usage, so this feeds cost logging only.
func EstimateTokens(text string) int {
	return int(math.Ceil(float64(len([]rune(text))) / charsPerToken))
}

// Cost returns the estimated USD cost for a prompt/completion token pair.
func (m ModelConfig) Cost(promptTokens, completionTokens int) float64 {
	return float64(promptTokens)/1e6*m.InputCostPerMTok +
		float64(completionTokens)/1e6*m.OutputCostPerMTok
}

// Usage holds estimated token counts and cost for a single gateway call.
type Usage struct {
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	Cost             float64 `json:"cost"`
}

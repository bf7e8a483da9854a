// Package types provides type definitions for structured data used throughout the creation service.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AIModel describes one entry of the advertised model catalog.
// The model id is echoed back on creations but does not change generation.
type AIModel struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Type             string     `json:"type"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	Capabilities     []string   `json:"capabilities"`
	MaxTokens        int        `json:"max_tokens"`
	TemperatureRange [2]float64 `json:"temperature_range"`
}

// DefaultAIModel is echoed back when a request does not name a model.
const DefaultAIModel = "text-generator-v2"

package types

import (
	"encoding/json"
	"math"
)

// StatusCompleted is the only status a creation response ever carries.
const StatusCompleted = "COMPLETED"

// CreationRequest is the body of POST /api/ai/creations.
type CreationRequest struct {
	BrandID      int         `json:"brandId"`
	BrandName    string      `json:"brandName,omitempty"`
	CreationType ContentType `json:"creationType,omitempty"`
	AIModel      string      `json:"aiModel,omitempty"`
	Prompt       string      `json:"prompt,omitempty"`
}

// UnmarshalJSON accepts any JSON value for brandId. Integral numbers (1 and
// 1.0) select a brand; strings, booleans, fractions and null decode as 0,
// which no brand uses, so the lookup reports the brand as not found.
func (r *CreationRequest) UnmarshalJSON(data []byte) error {
	type plain CreationRequest
	aux := struct {
		*plain
		BrandID json.RawMessage `json:"brandId"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.BrandID = brandIDFromJSON(aux.BrandID)
	return nil
}

func brandIDFromJSON(raw json.RawMessage) int {
	var n float64
	if len(raw) == 0 || json.Unmarshal(raw, &n) != nil {
		return 0
	}
	if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
		return 0
	}
	return int(n)
}

// ApplyDefaults fills the optional fields that have documented defaults.
func (r *CreationRequest) ApplyDefaults() {
	if r.CreationType == "" {
		r.CreationType = DefaultContentType
	}
	if r.AIModel == "" {
		r.AIModel = DefaultAIModel
	}
}

// Characteristics is the qualitative profile of a piece of generated content.
type Characteristics struct {
	Style       string `json:"style"`
	Tone        string `json:"tone"`
	Complexity  string `json:"complexity"`
	Originality string `json:"originality"`
}

// CreationResult holds the generated text and every metric derived from it.
type CreationResult struct {
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	Summary         string          `json:"summary"`
	Type            ContentType     `json:"type"`
	AIModel         string          `json:"aiModel"`
	Confidence      float64         `json:"confidence"`
	Tags            []string        `json:"tags"`
	Keywords        []string        `json:"keywords"`
	ReadingTime     string          `json:"readingTime"`
	WordCount       int             `json:"wordCount"`
	Characteristics Characteristics `json:"characteristics"`
	Suggestions     []string        `json:"suggestions"`
	RelatedTopics   []string        `json:"relatedTopics"`
}

// CreationResponse is the full body returned for a successful creation.
type CreationResponse struct {
	TaskID         string         `json:"taskId"`
	Status         string         `json:"status"`
	ProcessingTime float64        `json:"processingTime"`
	Result         CreationResult `json:"result"`
	BrandInfo      BrandInfo      `json:"brandInfo"`
	CreateTime     string         `json:"createTime"`
	QualityScore   int            `json:"qualityScore"`
}

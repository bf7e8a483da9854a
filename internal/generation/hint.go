package generation

import "strings"

// HintSignals are the intents detected in a free-text hint.
// They are recorded with each generation but do not yet change the output.
type HintSignals struct {
	Detailed     bool `json:"detailed"`
	Simple       bool `json:"simple"`
	Professional bool `json:"professional"`
	Story        bool `json:"story"`
	History      bool `json:"history"`
	Culture      bool `json:"culture"`
	Craft        bool `json:"craft"`
	Modern       bool `json:"modern"`
}

var hintKeywords = struct {
	detailed, simple, professional, story, history, culture, craft, modern []string
}{
	detailed:     []string{"详细的", "详细", "detail"},
	simple:       []string{"简单", "简洁", "simple"},
	professional: []string{"专业", "深度", "professional"},
	story:        []string{"故事", "经历", "story"},
	history:      []string{"历史", "由来", "history"},
	culture:      []string{"文化", "内涵", "culture"},
	craft:        []string{"工艺", "制作", "craft"},
	modern:       []string{"现代", "发展", "modern"},
}

// AnalyzeHint detects intents in hint by case-insensitive substring matching.
func AnalyzeHint(hint string) HintSignals {
	lower := strings.ToLower(hint)
	return HintSignals{
		Detailed:     containsAny(lower, hintKeywords.detailed),
		Simple:       containsAny(lower, hintKeywords.simple),
		Professional: containsAny(lower, hintKeywords.professional),
		Story:        containsAny(lower, hintKeywords.story),
		History:      containsAny(lower, hintKeywords.history),
		Culture:      containsAny(lower, hintKeywords.culture),
		Craft:        containsAny(lower, hintKeywords.craft),
		Modern:       containsAny(lower, hintKeywords.modern),
	}
}

// Active returns the names of the signals that fired.
func (h HintSignals) Active() []string {
	var active []string
	for _, s := range []struct {
		name string
		on   bool
	}{
		{"detailed", h.Detailed},
		{"simple", h.Simple},
		{"professional", h.Professional},
		{"story", h.Story},
		{"history", h.History},
		{"culture", h.Culture},
		{"craft", h.Craft},
		{"modern", h.Modern},
	} {
		if s.on {
			active = append(active, s.name)
		}
	}
	return active
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

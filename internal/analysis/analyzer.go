// Package analysis derives the secondary fields of a creation from its text:
// title, summary, tags, keywords, scores and qualitative characteristics.
// Every measure is a length or substring heuristic; lengths count Unicode
// code points so Chinese text is measured per character.
package analysis

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jonathan/jinmai-creation/internal/catalog"
	"github.com/jonathan/jinmai-creation/internal/generation"
	"github.com/jonathan/jinmai-creation/internal/types"
)

// Metrics is everything derived from a piece of generated content.
type Metrics struct {
	Title           string
	Summary         string
	Confidence      float64
	Tags            []string
	Keywords        []string
	ReadingTime     string
	WordCount       int
	Characteristics types.Characteristics
	Suggestions     []string
	RelatedTopics   []string
	QualityScore    int
}

// Analyzer computes Metrics. Only title selection is random.
type Analyzer struct {
	catalog *catalog.Catalog
	rng     generation.Random
	now     func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock overrides the clock used for the brand-age slot in titles.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// New creates an Analyzer over cat drawing title choices from rng.
func New(cat *catalog.Catalog, rng generation.Random, opts ...Option) *Analyzer {
	a := &Analyzer{
		catalog: cat,
		rng:     rng,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze derives all metrics for content generated for brand as type ct.
func (a *Analyzer) Analyze(brand types.Brand, ct types.ContentType, content string) (Metrics, error) {
	title, err := a.Title(brand, ct)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{
		Title:           title,
		Summary:         Summary(content),
		Confidence:      Confidence(content, ct),
		Tags:            Tags(brand, ct),
		Keywords:        Keywords(content),
		ReadingTime:     ReadingTime(content),
		WordCount:       utf8.RuneCountInString(content),
		Characteristics: CharacteristicsOf(content, ct),
		Suggestions:     Suggestions(content, ct),
		RelatedTopics:   RelatedTopics(brand, ct),
		QualityScore:    QualityScore(content, ct),
	}, nil
}

// Title picks one of the title templates registered for ct and fills it from
// the brand. Unknown types get the generic fallback title.
func (a *Analyzer) Title(brand types.Brand, ct types.ContentType) (string, error) {
	template := a.catalog.Fallback().Title
	if templates, ok := a.catalog.TitleTemplates(ct); ok && len(templates) > 0 {
		template = generation.Pick(a.rng, templates)
	}

	title, err := generation.Fill(template, generation.BrandSlots(a.catalog, brand, a.now()))
	if err != nil {
		return "", fmt.Errorf("failed to render %s title: %w", ct, err)
	}
	return title, nil
}

// Package generation renders brand copy from the catalog templates.
//
// A generation picks one template for the requested content type, fills its
// {slot} placeholders from the brand record and from randomly drawn stock
// phrases, and then applies light post-processing. Content types without a
// template set fall back to a single generic sentence.
package generation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jonathan/jinmai-creation/internal/catalog"
	"github.com/jonathan/jinmai-creation/internal/types"
)

// Generation is the record of a single render.
type Generation struct {
	Type     types.ContentType `json:"type"`
	Content  string            `json:"content"`
	Template string            `json:"template,omitempty"` // empty when the fallback sentence was used
	Fallback bool              `json:"fallback"`
	Hint     *HintSignals      `json:"hint,omitempty"` // nil when no hint was supplied
}

// Generator renders content. It holds no mutable state beyond its random source.
type Generator struct {
	catalog *catalog.Catalog
	rng     Random
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the clock used to compute a brand's age.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator over cat drawing randomness from rng.
func New(cat *catalog.Catalog, rng Random, opts ...Option) *Generator {
	g := &Generator{
		catalog: cat,
		rng:     rng,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the body text for brand in the given content type.
func (g *Generator) Generate(brand types.Brand, ct types.ContentType, hint string) (string, error) {
	gen, err := g.Render(brand, ct, hint)
	if err != nil {
		return "", err
	}
	return gen.Content, nil
}

// Render is Generate with the full generation record.
func (g *Generator) Render(brand types.Brand, ct types.ContentType, hint string) (*Generation, error) {
	gen := &Generation{Type: ct}
	if hint != "" {
		signals := AnalyzeHint(hint)
		gen.Hint = &signals
	}

	templates, ok := g.catalog.ContentTemplates(ct)
	if !ok || len(templates) == 0 {
		content, err := g.fallback(brand, hint)
		if err != nil {
			return nil, err
		}
		gen.Content = content
		gen.Fallback = true
		return gen, nil
	}

	slots := g.slots(brand)
	gen.Template = templates[g.rng.Intn(len(templates))]

	content, err := Fill(gen.Template, slots)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", ct, err)
	}

	gen.Content = g.postProcess(content, ct)
	return gen, nil
}

// BrandSlots returns the slot values derived from the brand record alone.
// They are shared by content and title templates.
func BrandSlots(cat *catalog.Catalog, brand types.Brand, now time.Time) map[string]string {
	culturalValue := brand.CulturalValue
	if culturalValue == "" {
		culturalValue = cat.FieldDefault("cultural_value")
	}
	craftsmanship := brand.Craftsmanship
	if craftsmanship == "" {
		craftsmanship = cat.FieldDefault("craftsmanship")
	}

	return map[string]string{
		"brand_name":        brand.Name,
		"founder":           brand.Founder,
		"year":              strconv.Itoa(brand.EstablishmentYear),
		"category":          brand.Category,
		"specialty":         brand.Specialty,
		"region":            cat.Region(),
		"cultural_value":    culturalValue,
		"craftsmanship":     craftsmanship,
		"years":             strconv.Itoa(now.Year() - brand.EstablishmentYear),
		"historical_period": HistoricalPeriod(brand.EstablishmentYear),
	}
}

// slots builds the complete slot map for one render: brand values, fixed
// phrases, and one draw from every phrase pool.
func (g *Generator) slots(brand types.Brand) map[string]string {
	slots := g.catalog.FixedSlots()
	for k, v := range BrandSlots(g.catalog, brand, g.now()) {
		slots[k] = v
	}
	for _, name := range g.catalog.PoolNames() {
		slots[name] = Pick(g.rng, g.catalog.Pool(name))
	}
	return slots
}

func (g *Generator) fallback(brand types.Brand, hint string) (string, error) {
	fb := g.catalog.Fallback()
	if hint == "" {
		hint = fb.Hint
	}

	content, err := Fill(fb.Content, map[string]string{
		"brand_name": brand.Name,
		"category":   brand.Category,
		"year":       strconv.Itoa(brand.EstablishmentYear),
		"hint":       hint,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render fallback template: %w", err)
	}
	return content, nil
}

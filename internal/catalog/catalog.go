// Package catalog loads the static reference data the creation service runs on:
// the heritage brand list, the advertised AI models, and the content templates.
// The data is embedded at compile time, validated against the JSON Schemas in
// /schemas, and exposed read-only.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/jonathan/jinmai-creation/internal/schemas"
	"github.com/jonathan/jinmai-creation/internal/types"
)

//go:embed data/*.json
var dataFiles embed.FS

// Catalog is an immutable snapshot of the reference data.
type Catalog struct {
	brands    []types.Brand
	brandByID map[int]int
	models    []types.AIModel
	templates Templates
}

// Templates is the content template document.
type Templates struct {
	Region         string                         `json:"region"`
	Defaults       map[string]string              `json:"defaults"`
	Fixed          map[string]string              `json:"fixed"`
	Pools          map[string][]string            `json:"pools"`
	Content        map[types.ContentType][]string `json:"content"`
	Titles         map[types.ContentType][]string `json:"titles"`
	Fallback       Fallback                       `json:"fallback"`
	Embellishments Embellishments                 `json:"embellishments"`
}

// Fallback holds the templates used for content types with no template set.
type Fallback struct {
	Content string `json:"content"`
	Hint    string `json:"hint"`
	Title   string `json:"title"`
}

// Embellishments are the phrase pools used by post-processing.
type Embellishments struct {
	StoryOpenings  []string `json:"storyOpenings"`
	CraftDetails   []string `json:"craftDetails"`
	CulturalQuotes []string `json:"culturalQuotes"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the process-wide catalog, loading it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load()
	})
	return defaultCatalog, defaultErr
}

// MustDefault returns the process-wide catalog, panicking if it cannot be loaded.
// The embedded data is fixed at build time, so a failure here is a build defect.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("failed to load catalog: %v", err))
	}
	return c
}

// Load reads and validates the embedded catalog files.
func Load() (*Catalog, error) {
	c := &Catalog{}

	if err := loadFile("brands.json", "brands.schema.json", &c.brands); err != nil {
		return nil, err
	}
	if err := loadFile("models.json", "models.schema.json", &c.models); err != nil {
		return nil, err
	}
	if err := loadFile("templates.json", "templates.schema.json", &c.templates); err != nil {
		return nil, err
	}

	c.brandByID = make(map[int]int, len(c.brands))
	for i, brand := range c.brands {
		if _, dup := c.brandByID[brand.ID]; dup {
			return nil, fmt.Errorf("duplicate brand id %d in brands.json", brand.ID)
		}
		c.brandByID[brand.ID] = i
	}

	return c, nil
}

// loadFile validates an embedded data file against its schema and decodes it into v.
func loadFile(filename, schemaName string, v any) error {
	data, err := dataFiles.ReadFile("data/" + filename)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", filename, err)
	}

	if err := schemas.ValidateNamed(schemaName, data); err != nil {
		return fmt.Errorf("catalog file %s failed schema validation: %w", filename, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", filename, err)
	}

	return nil
}

// Brands returns a copy of every brand in catalog order.
func (c *Catalog) Brands() []types.Brand {
	return slices.Clone(c.brands)
}

// BrandByID looks up a brand. The returned value is a copy.
func (c *Catalog) BrandByID(id int) (types.Brand, bool) {
	i, ok := c.brandByID[id]
	if !ok {
		return types.Brand{}, false
	}
	return c.brands[i], true
}

// Models returns a copy of the advertised model catalog.
func (c *Catalog) Models() []types.AIModel {
	out := make([]types.AIModel, len(c.models))
	for i, m := range c.models {
		m.Capabilities = slices.Clone(m.Capabilities)
		out[i] = m
	}
	return out
}

// ModelByID looks up a model descriptor.
func (c *Catalog) ModelByID(id string) (types.AIModel, bool) {
	for _, m := range c.models {
		if m.ID == id {
			m.Capabilities = slices.Clone(m.Capabilities)
			return m, true
		}
	}
	return types.AIModel{}, false
}

// ContentTemplates returns the body templates registered for a content type.
func (c *Catalog) ContentTemplates(ct types.ContentType) ([]string, bool) {
	tpls, ok := c.templates.Content[ct]
	return slices.Clone(tpls), ok
}

// TitleTemplates returns the title templates registered for a content type.
func (c *Catalog) TitleTemplates(ct types.ContentType) ([]string, bool) {
	tpls, ok := c.templates.Titles[ct]
	return slices.Clone(tpls), ok
}

// Region is the fixed region label substituted into templates.
func (c *Catalog) Region() string {
	return c.templates.Region
}

// FieldDefault returns the fallback value for an optional brand field slot.
func (c *Catalog) FieldDefault(slot string) string {
	return c.templates.Defaults[slot]
}

// FixedSlots returns a copy of the constant slot values.
func (c *Catalog) FixedSlots() map[string]string {
	out := make(map[string]string, len(c.templates.Fixed))
	for k, v := range c.templates.Fixed {
		out[k] = v
	}
	return out
}

// PoolNames returns the phrase pool names in sorted order.
// Callers drawing from every pool must iterate in this order to stay
// reproducible under a seeded random source.
func (c *Catalog) PoolNames() []string {
	names := make([]string, 0, len(c.templates.Pools))
	for name := range c.templates.Pools {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Pool returns the phrases of a named pool.
func (c *Catalog) Pool(name string) []string {
	return slices.Clone(c.templates.Pools[name])
}

// Fallback returns the generic templates used for unknown content types.
func (c *Catalog) Fallback() Fallback {
	return c.templates.Fallback
}

// Embellishments returns the post-processing phrase pools.
func (c *Catalog) Embellishments() Embellishments {
	e := c.templates.Embellishments
	return Embellishments{
		StoryOpenings:  slices.Clone(e.StoryOpenings),
		CraftDetails:   slices.Clone(e.CraftDetails),
		CulturalQuotes: slices.Clone(e.CulturalQuotes),
	}
}

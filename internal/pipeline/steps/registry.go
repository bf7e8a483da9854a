// Package steps names the stages of a single creation and groups them for display.
package steps

// Step names reported in progress events.
const (
	LookupBrand = "lookup_brand"
	Simulate    = "simulate_processing"
	Generate    = "generate_content"
	Analyze     = "analyze_content"
	Assemble    = "assemble_response"
)

// Categories group steps for display.
const (
	CategoryInput    = "input"
	CategoryCreation = "creation"
	CategoryOutput   = "output"
)

// StepDefinition defines metadata for a creation step
type StepDefinition struct {
	Name     string
	Category string
}

// Order lists the steps in the order a creation runs them.
var Order = []string{LookupBrand, Simulate, Generate, Analyze, Assemble}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	LookupBrand: {Name: LookupBrand, Category: CategoryInput},
	Simulate:    {Name: Simulate, Category: CategoryCreation},
	Generate:    {Name: Generate, Category: CategoryCreation},
	Analyze:     {Name: Analyze, Category: CategoryCreation},
	Assemble:    {Name: Assemble, Category: CategoryOutput},
}

// CategoryOf returns the display category of a step, or "" for unknown names.
func CategoryOf(step string) string {
	return StepRegistry[step].Category
}

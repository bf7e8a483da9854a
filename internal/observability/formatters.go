// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/jinmai-creation/internal/pipeline"
	"github.com/jonathan/jinmai-creation/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes, in runes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines are
// truncated; width is counted in runes, so CJK text renders wider than the border.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s\n", title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s\n", truncateRunes(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncateRunes shortens s to at most n runes, marking the cut with "...".
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintCreation outputs a human-readable summary of a creation response,
// followed by the full generated text.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCreation(resp *types.CreationResponse) {
	if resp == nil {
		return
	}
	result := resp.Result

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Task:       %s\n", resp.TaskID))
	sb.WriteString(fmt.Sprintf("Brand:      %s (#%d, %s)\n", resp.BrandInfo.Name, resp.BrandInfo.ID, resp.BrandInfo.Category))
	sb.WriteString(fmt.Sprintf("Type:       %s via %s\n", result.Type, result.AIModel))
	sb.WriteString(fmt.Sprintf("Quality:    %d   Confidence: %.2f\n", resp.QualityScore, result.Confidence))
	sb.WriteString(fmt.Sprintf("Length:     %d chars, %s\n", result.WordCount, result.ReadingTime))
	sb.WriteString(fmt.Sprintf("Style:      %s / %s / %s / %s\n",
		result.Characteristics.Style, result.Characteristics.Tone,
		result.Characteristics.Complexity, result.Characteristics.Originality))
	sb.WriteString(fmt.Sprintf("Processing: %.2fs\n", resp.ProcessingTime))

	if len(result.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords:   %s\n", strings.Join(result.Keywords, "、")))
	}
	if len(result.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:       %s\n", strings.Join(result.Tags, "、")))
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(result.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Suggestions[i]))
		}
	}

	p.printBox(result.Title, strings.TrimSuffix(sb.String(), "\n"))
	fmt.Fprintf(p.out, "\n%s\n\n", result.Content)
}

// PrintBrands outputs the brand catalog as a table
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBrands(brands []types.Brand) {
	var sb strings.Builder
	for i, b := range brands {
		sb.WriteString(fmt.Sprintf("#%d  %s  [%s]  %d年\n", b.ID, b.Name, b.Category, b.EstablishmentYear))
		sb.WriteString(fmt.Sprintf("    %s · %s · ★%.1f", b.Founder, b.CulturalValue, b.Rating))
		if i < len(brands)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("BRANDS (%d)", len(brands)), sb.String())
}

// PrintModels outputs the model descriptors
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintModels(models []types.AIModel) {
	var sb strings.Builder
	for i, m := range models {
		sb.WriteString(fmt.Sprintf("%s  %s (%s, %s)\n", m.ID, m.Name, m.Type, m.Status))
		sb.WriteString(fmt.Sprintf("    max_tokens=%d temperature=%.1f-%.1f", m.MaxTokens, m.TemperatureRange[0], m.TemperatureRange[1]))
		if len(m.Capabilities) > 0 {
			sb.WriteString(fmt.Sprintf("\n    %s", strings.Join(m.Capabilities, ", ")))
		}
		if i < len(models)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("AI MODELS (%d)", len(models)), sb.String())
}

// PrintProgress outputs a single progress line
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(event pipeline.ProgressEvent) {
	fmt.Fprintf(p.out, "  [%-8s] %-20s %s\n", event.Category, event.Step, event.Message)
}

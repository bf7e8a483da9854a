// Package pipeline provides the high-level orchestration of a single creation:
// brand lookup, simulated processing, content generation and analysis.
package pipeline

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jinmai-creation/internal/analysis"
	"github.com/jonathan/jinmai-creation/internal/catalog"
	"github.com/jonathan/jinmai-creation/internal/generation"
	"github.com/jonathan/jinmai-creation/internal/pipeline/steps"
	"github.com/jonathan/jinmai-creation/internal/types"
)

// Default bounds of the simulated processing delay.
const (
	DefaultDelayMin = 1500 * time.Millisecond
	DefaultDelayMax = 3000 * time.Millisecond
)

// ProgressEvent represents a progress update during a creation
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	TaskID   string `json:"task_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// ContextSleep blocks for d, returning early with ctx.Err() on cancellation.
func ContextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay returns immediately. Used by tests and the CLI's --no-delay flag.
func NoDelay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Options configures a Creator. Zero values fall back to the defaults.
type Options struct {
	DelayMin   time.Duration
	DelayMax   time.Duration
	Sleep      Sleeper
	Now        func() time.Time
	OnProgress ProgressCallback
}

// Creator turns creation requests into creation responses.
type Creator struct {
	catalog   *catalog.Catalog
	rng       generation.Random
	generator *generation.Generator
	analyzer  *analysis.Analyzer
	opts      Options
}

// NewCreator builds a Creator over the given catalog and random source.
func NewCreator(cat *catalog.Catalog, rng generation.Random, opts Options) *Creator {
	if opts.DelayMin <= 0 && opts.DelayMax <= 0 {
		opts.DelayMin, opts.DelayMax = DefaultDelayMin, DefaultDelayMax
	}
	if opts.DelayMax < opts.DelayMin {
		opts.DelayMax = opts.DelayMin
	}
	if opts.Sleep == nil {
		opts.Sleep = ContextSleep
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Creator{
		catalog:   cat,
		rng:       rng,
		generator: generation.New(cat, rng, generation.WithClock(opts.Now)),
		analyzer:  analysis.New(cat, rng, analysis.WithClock(opts.Now)),
		opts:      opts,
	}
}

// WithProgress returns a Creator sharing c's generator and analyzer that
// reports progress to cb instead.
func (c *Creator) WithProgress(cb ProgressCallback) *Creator {
	clone := *c
	clone.opts.OnProgress = cb
	return &clone
}

// emitProgress calls the progress callback if configured
func (c *Creator) emitProgress(step, taskID, message string, content any) {
	if c.opts.OnProgress == nil {
		return
	}
	c.opts.OnProgress(ProgressEvent{
		Step:     step,
		Category: steps.CategoryOf(step),
		Message:  message,
		TaskID:   taskID,
		Content:  content,
	})
}

// Create runs one creation. The request is not mutated.
func (c *Creator) Create(ctx context.Context, req types.CreationRequest) (*types.CreationResponse, error) {
	req.ApplyDefaults()
	taskID := c.newTaskID()

	brand, ok := c.catalog.BrandByID(req.BrandID)
	if !ok {
		return nil, &BrandNotFoundError{BrandID: req.BrandID}
	}
	c.emitProgress(steps.LookupBrand, taskID, fmt.Sprintf("brand %d: %s", brand.ID, brand.Name), nil)

	delay := c.sampleDelay()
	c.emitProgress(steps.Simulate, taskID, fmt.Sprintf("processing for %s", delay), nil)
	if err := c.opts.Sleep(ctx, delay); err != nil {
		return nil, fmt.Errorf("creation interrupted: %w", err)
	}

	gen, err := c.generator.Render(brand, req.CreationType, req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s content: %w", req.CreationType, err)
	}
	c.emitProgress(steps.Generate, taskID, generateMessage(gen), gen)

	metrics, err := c.analyzer.Analyze(brand, req.CreationType, gen.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze content: %w", err)
	}
	c.emitProgress(steps.Analyze, taskID, fmt.Sprintf("quality score %d", metrics.QualityScore), nil)

	resp := &types.CreationResponse{
		TaskID:         taskID,
		Status:         types.StatusCompleted,
		ProcessingTime: roundSeconds(delay),
		Result: types.CreationResult{
			Title:           metrics.Title,
			Content:         gen.Content,
			Summary:         metrics.Summary,
			Type:            req.CreationType,
			AIModel:         req.AIModel,
			Confidence:      metrics.Confidence,
			Tags:            metrics.Tags,
			Keywords:        metrics.Keywords,
			ReadingTime:     metrics.ReadingTime,
			WordCount:       metrics.WordCount,
			Characteristics: metrics.Characteristics,
			Suggestions:     metrics.Suggestions,
			RelatedTopics:   metrics.RelatedTopics,
		},
		BrandInfo:    brand.Info(),
		CreateTime:   c.opts.Now().Format(time.RFC3339),
		QualityScore: metrics.QualityScore,
	}
	c.emitProgress(steps.Assemble, taskID, "creation completed", nil)
	return resp, nil
}

// generateMessage describes a render, naming the hint intents that fired.
func generateMessage(gen *generation.Generation) string {
	msg := fmt.Sprintf("generated %s content", gen.Type)
	if gen.Fallback {
		msg += " (fallback)"
	}
	if gen.Hint != nil {
		if active := gen.Hint.Active(); len(active) > 0 {
			msg += " hints: " + strings.Join(active, ", ")
		}
	}
	return msg
}

// CreateBatch runs several creations concurrently, at most limit at a time
// (no limit when limit <= 0). Results keep the order of reqs. The first
// failure cancels the remaining creations.
func (c *Creator) CreateBatch(ctx context.Context, reqs []types.CreationRequest, limit int) ([]*types.CreationResponse, error) {
	results := make([]*types.CreationResponse, len(reqs))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, req := range reqs {
		g.Go(func() error {
			resp, err := c.Create(gCtx, req)
			if err != nil {
				return fmt.Errorf("creation %d (brand %d): %w", i, req.BrandID, err)
			}
			mu.Lock()
			results[i] = resp
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// sampleDelay draws uniformly from [DelayMin, DelayMax].
func (c *Creator) sampleDelay() time.Duration {
	span := c.opts.DelayMax - c.opts.DelayMin
	if span <= 0 {
		return c.opts.DelayMin
	}
	return c.opts.DelayMin + time.Duration(c.rng.Float64()*float64(span))
}

func (c *Creator) newTaskID() string {
	return fmt.Sprintf("task_%d_%s", c.opts.Now().Unix(), uuid.NewString()[:8])
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/jinmai-creation/internal/catalog"
	"github.com/jonathan/jinmai-creation/internal/observability"
	"github.com/jonathan/jinmai-creation/internal/pipeline"
	"github.com/jonathan/jinmai-creation/internal/types"
)

type generateOptions struct {
	brandID      int
	creationType string
	prompt       string
	model        string
	seed         int64
	noDelay      bool
	all          bool
	jsonOutput   bool
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create content for a brand without starting the server",
		Long: `Run a single creation (or one per brand with --all) and print the result.

Example:
  jinmai_ai generate --brand 1 --type STORY --prompt "讲讲历史" --no-delay`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, global, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.brandID, "brand", "b", 1, "Brand ID to create content for")
	cmd.Flags().StringVarP(&opts.creationType, "type", "t", string(types.DefaultContentType), "Content type: STORY, INTRODUCTION, CRAFT, CULTURE, HISTORY, MODERN")
	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "", "Free-text hint that steers the content")
	cmd.Flags().StringVar(&opts.model, "model", "", "AI model identifier echoed in the result")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed for reproducible output (0 uses RANDOM_SEED or the clock)")
	cmd.Flags().BoolVar(&opts.noDelay, "no-delay", false, "Skip the simulated processing delay")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Create content for every brand in the catalog")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the creation response as JSON")
	return cmd
}

func runGenerate(cmd *cobra.Command, global *globalOptions, opts *generateOptions) error {
	cfg, err := loadSettings(global)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.noDelay {
		cfg.NoDelay = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	var onProgress pipeline.ProgressCallback
	if cfg.Verbose {
		onProgress = progressPrinter(cmd.ErrOrStderr())
	}
	creator := newCreator(cat, cfg, onProgress)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reqs []types.CreationRequest
	if opts.all {
		for _, b := range cat.Brands() {
			reqs = append(reqs, opts.request(b.ID))
		}
	} else {
		reqs = append(reqs, opts.request(opts.brandID))
	}

	logger.Debug("starting creation",
		zap.Int("requests", len(reqs)),
		zap.String("type", opts.creationType),
		zap.Int("batch_limit", cfg.BatchLimit),
	)

	responses, err := creator.CreateBatch(ctx, reqs, cfg.BatchLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		var v any = responses
		if !opts.all {
			v = responses[0]
		}
		return writeJSON(out, v)
	}

	printer := observability.NewPrinter(out)
	for _, resp := range responses {
		printer.PrintCreation(resp)
	}
	return nil
}

func (o *generateOptions) request(brandID int) types.CreationRequest {
	req := types.CreationRequest{
		BrandID:      brandID,
		CreationType: types.ContentType(o.creationType),
		Prompt:       o.prompt,
		AIModel:      o.model,
	}
	req.ApplyDefaults()
	return req
}

// progressPrinter serializes progress lines from concurrent creations.
func progressPrinter(w io.Writer) pipeline.ProgressCallback {
	printer := observability.NewPrinter(w)
	var mu sync.Mutex
	return func(event pipeline.ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		printer.PrintProgress(event)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

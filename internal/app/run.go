package app

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"github.com/vk/treegridgo/internal/ctxlog"
	"github.com/vk/treegridgo/internal/render"
	"github.com/vk/treegridgo/tree"
)

// Run executes the load -> build -> render lifecycle.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.")

	records, opts, err := a.loader.Load(ctx, a.cfg.RecordsPath)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	// Layer the configuration: flags already sit in cfg, file options fill
	// what flags left empty, built-in defaults fill the rest.
	if opts != nil {
		fileCfg := &Config{RootID: opts.RootID, MaxDepth: opts.MaxDepth}
		if err := mergo.Merge(a.cfg, fileCfg); err != nil {
			return fmt.Errorf("failed to merge file options: %w", err)
		}
	}
	if err := mergo.Merge(a.cfg, defaultConfig()); err != nil {
		return fmt.Errorf("failed to merge default configuration: %w", err)
	}
	a.logger.Debug("Effective configuration resolved.", "root_id", a.cfg.RootID, "format", a.cfg.Format, "max_depth", a.cfg.MaxDepth)

	cfg := tree.DefaultConfig[string]()
	cfg.MaxDepth = a.cfg.MaxDepth
	cfg.StrictCycles = a.cfg.StrictCycles
	cfg.Lenient = a.cfg.Lenient

	builder := tree.NewBuilder[map[string]any](a.cfg.RootID, cfg)
	if err := builder.Append(ctx, records, tree.NewMapAdapter(cfg)); err != nil {
		return fmt.Errorf("failed to index records: %w", err)
	}
	forest, err := builder.BuildForest(ctx)
	if err != nil {
		return fmt.Errorf("failed to assemble tree: %w", err)
	}
	if skipped := builder.Skipped(); skipped != nil {
		a.logger.Warn("Some records were skipped.", "error", skipped)
	}
	a.logger.Info("Forest assembled.", "records", len(records), "roots", len(forest))

	return render.Forest(a.outW, forest, a.cfg.Format)
}

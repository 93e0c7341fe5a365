// Package app implements the application layer for k2build.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/k2build/internal/core/domain"
	"go.trai.ch/k2build/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic: resolve the configuration,
// validate it, derive the seed template, export the configuration to the
// environment and hand control to exactly one external program.
type App struct {
	resolver   ports.ConfigResolver
	exporter   ports.ConfigExporter
	dispatcher ports.Dispatcher
	logger     ports.Logger
	out        io.Writer
}

// New creates a new App instance.
func New(
	resolver ports.ConfigResolver,
	exporter ports.ConfigExporter,
	dispatcher ports.Dispatcher,
	log ports.Logger,
) *App {
	return &App{
		resolver:   resolver,
		exporter:   exporter,
		dispatcher: dispatcher,
		logger:     log,
		out:        os.Stdout,
	}
}

// WithOutput redirects plan output. This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Components holds the application components resolved by the wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// DryRun resolves and validates the full configuration and prints the
	// dispatch plan instead of exporting and dispatching.
	DryRun bool
}

// Run executes the pre-flight pipeline for one invocation. On a successful
// dispatch it does not return: the process image is replaced by the task's
// external program.
func (a *App) Run(ctx context.Context, ov domain.Overrides, flags domain.TaskFlags, opts RunOptions) error {
	// 1. Resolve flag > environment > default into one record
	cfg, err := a.resolver.Resolve(ov)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve configuration")
	}

	// 2. Validate before anything becomes observable
	if err := domain.Validate(cfg); err != nil {
		return err
	}

	// 3. Derive the spaced-seed template
	cfg.SeedTemplate, err = domain.BuildSeedTemplate(cfg.MinimizerLen, cfg.MinimizerSpaces)
	if err != nil {
		return err
	}

	// 4. Exactly one task
	task, err := domain.SelectTask(flags)
	if err != nil {
		return err
	}
	if err := checkTaskCompat(cfg, task); err != nil {
		return err
	}

	if opts.DryRun {
		return a.renderPlan(cfg, task)
	}

	// 5. Preflight the masker before dispatching sequence processing
	if cfg.Masking && needsMasking(task.Kind) {
		if err := a.dispatcher.VerifyMasker(cfg.Protein); err != nil {
			return err
		}
	}

	// 6. Export then transfer control; no code path follows a successful
	// dispatch
	if err := a.exporter.Export(cfg); err != nil {
		return zerr.Wrap(err, "failed to export configuration")
	}
	return a.dispatcher.Dispatch(ctx, task)
}

// checkTaskCompat rejects task/configuration combinations the external
// programs cannot serve.
func checkTaskCompat(cfg domain.BuildConfiguration, task domain.Task) error {
	if cfg.Protein && (task.Kind == domain.TaskStandard || task.Kind == domain.TaskSpecial) {
		return domain.Detail(domain.ErrProteinIncompatibleTask, "task", task.Kind.String())
	}
	if task.Kind == domain.TaskAddToLibrary {
		if _, err := os.Stat(task.File); err != nil {
			return domain.Detail(domain.ErrLibraryFileNotFound, "file", task.File)
		}
	}
	return nil
}

// needsMasking reports whether the task runs sequence processing that
// applies low-complexity masking.
func needsMasking(kind domain.TaskKind) bool {
	switch kind {
	case domain.TaskAddToLibrary, domain.TaskBuild, domain.TaskStandard, domain.TaskSpecial:
		return true
	default:
		return false
	}
}

// plan is the dry-run view of one invocation.
type plan struct {
	Task    string                    `yaml:"task"`
	Program string                    `yaml:"program"`
	Args    []string                  `yaml:"args,omitempty"`
	Config  domain.BuildConfiguration `yaml:"config"`
}

func (a *App) renderPlan(cfg domain.BuildConfiguration, task domain.Task) error {
	prog, args, err := a.dispatcher.Program(task)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(plan{
		Task:    task.Kind.String(),
		Program: prog,
		Args:    args,
		Config:  cfg,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to render dispatch plan")
	}

	_, err = a.out.Write(data)
	return err
}

// Package app implements the application layer for mars.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/core/ports"
	"go.trai.ch/mars/internal/engine/assembler"
	"go.trai.ch/mars/internal/engine/invocation"
	"go.trai.ch/mars/internal/engine/planner"
	"go.trai.ch/mars/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// notifyThreshold is the build duration above which the notify command runs.
const notifyThreshold = 30 * time.Second

// notifyTitle is the first argument passed to the notify command.
const notifyTitle = "Servo build"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	host         ports.HostInspector
	planner      *planner.Planner
	assembler    *assembler.Assembler
	invocations  *invocation.Planner
	executor     ports.Executor
	logger       ports.Logger
	environ      func() []string
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	host ports.HostInspector,
	targets *planner.Planner,
	asm *assembler.Assembler,
	invocations *invocation.Planner,
	executor ports.Executor,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		host:         host,
		planner:      targets,
		assembler:    asm,
		invocations:  invocations,
		executor:     executor,
		logger:       log,
		environ:      os.Environ,
		now:          time.Now,
	}
}

// WithEnviron replaces the source of the inherited environment.
// This is primarily used for testing.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}

// WithClock replaces the clock used to time the build.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// prepared is a plan together with the configuration it was derived from.
type prepared struct {
	plan   *domain.BuildPlan
	config domain.ResolvedConfig
}

// Plan resolves the request into a BuildPlan without running anything.
func (a *App) Plan(cwd string, req domain.BuildRequest) (*domain.BuildPlan, error) {
	p, err := a.prepare(cwd, req)
	if err != nil {
		return nil, err
	}
	return p.plan, nil
}

func (a *App) prepare(cwd string, req domain.BuildRequest) (prepared, error) {
	if req.Release && req.Dev {
		return prepared{}, domain.ErrModeConflict
	}

	// 1. Locate the checkout and read its configuration
	root, err := a.configLoader.DiscoverRoot(cwd)
	if err != nil {
		return prepared{}, err
	}
	env := domain.EnvironFromList(a.environ())
	cfg := resolver.Resolve(root, a.configLoader.Load(root), env)
	host := a.host.Inspect()

	// 2. Target and mode
	target, err := planner.PlanTarget(req, cfg, host, root, env)
	if err != nil {
		return prepared{}, zerr.Wrap(err, "failed to plan target")
	}
	mode, err := a.planner.ResolveMode(req, cfg, target)
	if err != nil {
		// Ambiguity is reported as is: the message tells the user what to do.
		return prepared{}, err
	}

	// 3. Features and environment
	asm, err := a.assembler.Assemble(assembler.Input{
		Root:    root,
		Request: req,
		Config:  cfg,
		Target:  target,
		Host:    host,
		Env:     env,
	})
	if err != nil {
		return prepared{}, zerr.Wrap(err, "failed to assemble build environment")
	}

	// 4. Command line
	inv, err := a.invocations.Plan(invocation.Input{
		Root:      root,
		Request:   req,
		Config:    cfg,
		Target:    target,
		Host:      host,
		Mode:      mode,
		Features:  asm.Features,
		Env:       asm.Env,
		CargoArgs: asm.CargoArgs,
	})
	if err != nil {
		return prepared{}, zerr.Wrap(err, "failed to plan build command")
	}

	return prepared{
		plan: &domain.BuildPlan{
			Root:        root,
			Host:        host.Triple,
			Target:      target.Target,
			Platform:    target.Platform,
			Mode:        mode,
			OutputPath:  target.OutputPath(mode),
			Features:    asm.Features,
			Env:         asm.Env,
			Invocation:  inv,
			VeryVerbose: req.VeryVerbose,
			Package:     !req.NoPackage,
		},
		config: cfg,
	}, nil
}

// Build plans the request and runs the build command, blocking until it exits.
func (a *App) Build(ctx context.Context, cwd string, req domain.BuildRequest) error {
	p, err := a.prepare(cwd, req)
	if err != nil {
		return err
	}
	plan := p.plan

	if plan.Invocation.Verbose {
		a.logger.Info(fmt.Sprintf("build plan %s: %s %s build, output %s",
			plan.Digest(), plan.Platform, plan.Mode, plan.OutputPath))
	}
	if plan.VeryVerbose {
		for _, entry := range plan.Env.List() {
			a.logger.Info(entry)
		}
	}

	start := a.now()
	runErr := a.executor.Run(ctx, plan.Invocation)
	elapsed := a.now().Sub(start)

	status := "Completed"
	if runErr != nil {
		status = "FAILED"
	}
	summary := fmt.Sprintf("%s in %s", status, FormatDuration(elapsed))
	a.logger.Info("Build " + summary)

	if elapsed > notifyThreshold {
		a.notify(ctx, p.config.Tools.NotifyCommand, summary)
	}

	if runErr != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, runErr)
	}
	return nil
}

// notify runs the configured notify command. Failures are only reported.
func (a *App) notify(ctx context.Context, command, message string) {
	if command == "" {
		return
	}
	err := a.executor.Run(ctx, domain.Invocation{
		Binary: command,
		Args:   []string{notifyTitle, message},
		Env:    domain.EnvironFromList(a.environ()),
	})
	if err != nil {
		a.logger.Warn("notify command failed: " + err.Error())
	}
}

// FormatDuration renders d as H:MM:SS, truncated to whole seconds.
func FormatDuration(d time.Duration) string {
	s := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, (s/60)%60, s%60)
}

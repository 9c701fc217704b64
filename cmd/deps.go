package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wasabi0522/flowkit/internal/config"
	flowcontext "github.com/wasabi0522/flowkit/internal/context"
	flowexec "github.com/wasabi0522/flowkit/internal/exec"
	"github.com/wasabi0522/flowkit/internal/flow"
	"github.com/wasabi0522/flowkit/internal/git"
)

// App holds the dependency resolution functions and builds the CLI command tree.
type App struct {
	resolveDeps    func() (*deps, error)
	resolveGitDeps func() (*gitDeps, error)
	verbose        bool
}

// NewApp creates an App with default dependency resolvers.
func NewApp() *App {
	return &App{
		resolveDeps:    defaultResolveDeps,
		resolveGitDeps: defaultResolveGitDeps,
	}
}

type deps struct {
	exec flowexec.Executor
	git  git.Client
	ctx  *flowcontext.Context
	cfg  *config.Config
}

func defaultResolveDeps() (*deps, error) {
	return resolveDepsWithExec(flowexec.NewDefaultExecutor())
}

func buildGitContext(e flowexec.Executor) (git.Client, *flowcontext.Context, error) {
	if err := e.LookPath("git"); err != nil {
		return nil, nil, fmt.Errorf("required command 'git' not found")
	}
	g := git.NewClient(e)
	ctx, err := flowcontext.NewResolver(g).Resolve()
	if err != nil {
		return nil, nil, err
	}
	return g, ctx, nil
}

func resolveDepsWithExec(e flowexec.Executor) (*deps, error) {
	g, ctx, err := buildGitContext(e)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(filepath.Join(ctx.RepoRoot, config.FileName))
	if err != nil {
		return nil, err
	}
	return &deps{exec: e, git: g, ctx: ctx, cfg: cfg}, nil
}

// withService resolves dependencies and calls fn with the constructed Service.
func (a *App) withService(fn func(svc *flow.Service) error) error {
	return a.withConfiguredService(nil, fn)
}

// withConfiguredService is withService with a hook to adjust the loaded
// configuration, e.g. from command-line flags, before the Service is built.
func (a *App) withConfiguredService(adjust func(cfg *config.Config), fn func(svc *flow.Service) error) error {
	d, err := a.resolveDeps()
	if err != nil {
		return err
	}
	if adjust != nil {
		adjust(d.cfg)
		if err := d.cfg.Validate(); err != nil {
			return err
		}
	}
	return fn(d.service(a.serviceOpts()...))
}

func (a *App) serviceOpts() []flow.Option {
	if a.verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		return []flow.Option{flow.WithLogger(slog.New(h))}
	}
	return nil
}

func (d *deps) service(opts ...flow.Option) *flow.Service {
	allOpts := []flow.Option{
		flow.WithParams(flow.Params{
			RepoRoot: d.ctx.RepoRoot,
			Remote:   d.cfg.Remote,
			Finish: flow.FinishOptions{
				Fetch:   d.cfg.Finish.Fetch,
				Keep:    d.cfg.Finish.KeepBranch,
				Message: d.cfg.Finish.Message,
			},
			PostStartHooks:  d.cfg.Hooks.PostStart,
			PostFinishHooks: d.cfg.Hooks.PostFinish,
		}),
	}
	allOpts = append(allOpts, opts...)
	return flow.NewService(d.exec, d.git, allOpts...)
}

type gitDeps struct {
	git git.Client
	ctx *flowcontext.Context
}

func defaultResolveGitDeps() (*gitDeps, error) {
	return resolveGitDepsWithExec(flowexec.NewDefaultExecutor())
}

func resolveGitDepsWithExec(e flowexec.Executor) (*gitDeps, error) {
	g, ctx, err := buildGitContext(e)
	if err != nil {
		return nil, err
	}
	return &gitDeps{git: g, ctx: ctx}, nil
}

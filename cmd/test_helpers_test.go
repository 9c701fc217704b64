package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/wasabi0522/flowkit/internal/config"
	flowcontext "github.com/wasabi0522/flowkit/internal/context"
	flowexec "github.com/wasabi0522/flowkit/internal/exec"
	"github.com/wasabi0522/flowkit/internal/git"
)

// appWithDeps creates an App that resolves to the given deps.
func appWithDeps(d *deps) *App {
	return &App{
		resolveDeps: func() (*deps, error) { return d, nil },
		resolveGitDeps: func() (*gitDeps, error) {
			return &gitDeps{git: d.git, ctx: d.ctx}, nil
		},
	}
}

// appWithDepsError creates an App whose resolvers return an error.
func appWithDepsError(err error) *App {
	return &App{
		resolveDeps:    func() (*deps, error) { return nil, err },
		resolveGitDeps: func() (*gitDeps, error) { return nil, err },
	}
}

// newFlowDeps returns deps for an initialized repository on ref, with flow
// listings from branches keyed by type name.
func newFlowDeps(ref string, branches map[string][]string) (*deps, *git.ClientMock, *flowexec.ExecutorMock) {
	g := &git.ClientMock{
		CurrentRefFunc: func() (string, error) { return ref, nil },
		ConfigGetFunc: func(key string) (string, error) {
			if key == "gitflow.branch.develop" {
				return "develop", nil
			}
			return "", nil
		},
		RemotesFunc:     func() ([]string, error) { return []string{"origin", "upstream", "fork"}, nil },
		FlowVersionFunc: func() (string, error) { return "1.12.3", nil },
		FlowListFunc: func(args ...string) ([]string, error) {
			return branches[args[0]], nil
		},
		FlowFunc: func(args ...string) (string, error) { return "", nil },
	}
	e := &flowexec.ExecutorMock{
		RunShellContextFunc: func(ctx context.Context, command string, dir string) error { return nil },
	}
	d := &deps{
		exec: e,
		git:  g,
		ctx: &flowcontext.Context{
			RepoRoot:      "/repo",
			CurrentRef:    ref,
			MasterBranch:  "main",
			DevelopBranch: "develop",
			Initialized:   true,
		},
		cfg: &config.Config{Remote: "origin"},
	}
	return d, g, e
}

// executeCommand runs the CLI command tree with the given args and returns the output.
func executeCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := app.BuildRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

package flow

import (
	"context"
	"fmt"

	flowexec "github.com/wasabi0522/flowkit/internal/exec"
	"github.com/wasabi0522/flowkit/internal/git"
)

// defaultParams returns Params with sensible defaults for testing.
func defaultParams() Params {
	return Params{
		RepoRoot: "/repo",
		Remote:   "origin",
	}
}

// stubGit returns a git.ClientMock for an initialized repository on ref whose
// flow listings come from branches.
func stubGit(ref string, branches map[BranchType][]string) *git.ClientMock {
	return &git.ClientMock{
		CurrentRefFunc: func() (string, error) { return ref, nil },
		ConfigGetFunc: func(key string) (string, error) {
			if key == "gitflow.branch.develop" {
				return "develop", nil
			}
			return "", nil
		},
		RemotesFunc:     func() ([]string, error) { return []string{"origin", "upstream"}, nil },
		FlowVersionFunc: func() (string, error) { return "1.12.3 (AVH Edition)", nil },
		FlowListFunc: func(args ...string) ([]string, error) {
			if len(args) != 2 || args[1] != "list" {
				return nil, fmt.Errorf("unexpected listing %q", args)
			}
			t, err := ParseBranchType(args[0])
			if err != nil {
				return nil, fmt.Errorf("unexpected kind %q", args[0])
			}
			return branches[t], nil
		},
		FlowFunc: func(args ...string) (string, error) { return "ok", nil },
	}
}

// stubExec returns an ExecutorMock whose shell hooks succeed.
func stubExec() *flowexec.ExecutorMock {
	return &flowexec.ExecutorMock{
		RunShellContextFunc: func(ctx context.Context, command string, dir string) error { return nil },
	}
}

// recordingLogger captures warnings for assertions.
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string, ...any) {}

func (l *recordingLogger) Warn(msg string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprint(append([]any{msg}, args...)...))
}

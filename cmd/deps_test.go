package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/flowkit/internal/config"
	flowexec "github.com/wasabi0522/flowkit/internal/exec"
)

// repoExec returns an ExecutorMock that answers the context-resolution git
// queries for a repository rooted at repoRoot.
func repoExec(repoRoot string) *flowexec.ExecutorMock {
	return &flowexec.ExecutorMock{
		LookPathFunc: func(name string) error {
			return nil
		},
		OutputFunc: func(name string, args ...string) (string, error) {
			if len(args) > 0 {
				switch args[0] {
				case "rev-parse":
					return filepath.Join(repoRoot, ".git"), nil
				case "symbolic-ref":
					return "refs/heads/feature/login", nil
				case "config":
					if args[len(args)-1] == "gitflow.branch.develop" {
						return "develop", nil
					}
					return "main", nil
				}
			}
			return "", nil
		},
	}
}

func TestResolveDepsWithExec(t *testing.T) {
	t.Run("git not found", func(t *testing.T) {
		e := &flowexec.ExecutorMock{
			LookPathFunc: func(name string) error {
				return fmt.Errorf("not found: %s", name)
			},
		}
		_, err := resolveDepsWithExec(e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "git")
	})

	t.Run("context resolve error", func(t *testing.T) {
		e := &flowexec.ExecutorMock{
			LookPathFunc: func(name string) error {
				return nil
			},
			OutputFunc: func(name string, args ...string) (string, error) {
				return "", fmt.Errorf("not a git repo")
			},
		}
		_, err := resolveDepsWithExec(e)
		require.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		repoRoot := t.TempDir()
		d, err := resolveDepsWithExec(repoExec(repoRoot))
		require.NoError(t, err)
		assert.NotNil(t, d.git)
		assert.Equal(t, repoRoot, d.ctx.RepoRoot)
		assert.Equal(t, "feature/login", d.ctx.CurrentRef)
		assert.True(t, d.ctx.Initialized)
		assert.Equal(t, "origin", d.cfg.Remote)
	})

	t.Run("reads repo config", func(t *testing.T) {
		repoRoot := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(repoRoot, config.FileName), []byte("remote: upstream\n"), 0644))
		d, err := resolveDepsWithExec(repoExec(repoRoot))
		require.NoError(t, err)
		assert.Equal(t, "upstream", d.cfg.Remote)
	})

	t.Run("invalid repo config", func(t *testing.T) {
		repoRoot := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(repoRoot, config.FileName), []byte("remote: \"\"\n"), 0644))
		_, err := resolveDepsWithExec(repoExec(repoRoot))
		assert.Error(t, err)
	})
}

func TestResolveGitDepsWithExec(t *testing.T) {
	t.Run("git not found", func(t *testing.T) {
		e := &flowexec.ExecutorMock{
			LookPathFunc: func(name string) error {
				return fmt.Errorf("not found")
			},
		}
		_, err := resolveGitDepsWithExec(e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "git")
	})

	t.Run("success", func(t *testing.T) {
		repoRoot := t.TempDir()
		d, err := resolveGitDepsWithExec(repoExec(repoRoot))
		require.NoError(t, err)
		assert.NotNil(t, d.git)
		assert.Equal(t, repoRoot, d.ctx.RepoRoot)
	})
}

func TestServiceOpts(t *testing.T) {
	assert.Nil(t, (&App{}).serviceOpts())
	assert.Len(t, (&App{verbose: true}).serviceOpts(), 1)
}

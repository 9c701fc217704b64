package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	flowexec "github.com/wasabi0522/flowkit/internal/exec"
)

var allTypeNames = []string{"feature", "bugfix", "hotfix", "release", "support"}

func TestCompletionCommand(t *testing.T) {
	app := NewApp()
	rootCmd := app.BuildRootCmd()
	// Find the completion subcommand
	var compCmd *cobra.Command
	for _, c := range rootCmd.Commands() {
		if c.Use == "completion <bash|zsh|fish>" {
			compCmd = c
			break
		}
	}
	require.NotNil(t, compCmd, "completion command not found")

	for _, shell := range []string{"bash", "zsh", "fish"} {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			compCmd.SetOut(&buf)
			err := compCmd.RunE(compCmd, []string{shell})
			require.NoError(t, err)
			assert.NotEmpty(t, buf.String())
		})
	}

	t.Run("unsupported shell", func(t *testing.T) {
		err := compCmd.RunE(compCmd, []string{"powershell"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported shell")
	})
}

func TestCompleteTypes(t *testing.T) {
	names, directive := completeTypes(nil, nil, "")
	assert.Equal(t, allTypeNames, names)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	names, _ = completeTypes(nil, []string{"feature"}, "")
	assert.Nil(t, names)
}

func TestCompleteFlowArgsWithExec(t *testing.T) {
	t.Run("types first", func(t *testing.T) {
		names, directive := completeFlowArgsWithExec(&flowexec.ExecutorMock{}, nil)
		assert.Equal(t, allTypeNames, names)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})

	t.Run("unknown type", func(t *testing.T) {
		names, _ := completeFlowArgsWithExec(&flowexec.ExecutorMock{}, []string{"trunk"})
		assert.Nil(t, names)
	})

	t.Run("git not found", func(t *testing.T) {
		e := &flowexec.ExecutorMock{
			LookPathFunc: func(name string) error {
				return fmt.Errorf("not found")
			},
		}
		names, directive := completeFlowArgsWithExec(e, []string{"feature"})
		assert.Nil(t, names)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})

	t.Run("listing error", func(t *testing.T) {
		e := &flowexec.ExecutorMock{
			LookPathFunc: func(name string) error { return nil },
			CaptureFunc: func(name string, args ...string) (flowexec.Result, error) {
				return flowexec.Result{}, fmt.Errorf("exec error")
			},
		}
		names, _ := completeFlowArgsWithExec(e, []string{"feature"})
		assert.Nil(t, names)
	})

	t.Run("branch names of type", func(t *testing.T) {
		e := &flowexec.ExecutorMock{
			LookPathFunc: func(name string) error { return nil },
			CaptureFunc: func(name string, args ...string) (flowexec.Result, error) {
				assert.Equal(t, []string{"flow", "hotfix", "list"}, args)
				return flowexec.Result{StandardOutput: "* 1.0.1\n  1.0.2\n"}, nil
			},
		}
		names, directive := completeFlowArgsWithExec(e, []string{"hotfix"})
		assert.Equal(t, []string{"1.0.1", "1.0.2"}, names)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})

	t.Run("nothing after name", func(t *testing.T) {
		names, _ := completeFlowArgsWithExec(&flowexec.ExecutorMock{}, []string{"hotfix", "1.0.1"})
		assert.Nil(t, names)
	})
}

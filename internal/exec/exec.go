package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"strings"
)

// IsExitCode reports whether err wraps an *exec.ExitError with the given exit code.
func IsExitCode(err error, code int) bool {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode() == code
	}
	return false
}

// Result is the captured outcome of a finished process.
type Result struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// ExitedSuccessfully reports whether the process exited with code 0.
func (r Result) ExitedSuccessfully() bool {
	return r.ExitCode == 0
}

//go:generate moq -out exec_mock.go . Executor

// Executor abstracts command execution for testing.
type Executor interface {
	LookPath(name string) error
	Output(name string, args ...string) (string, error)
	Run(name string, args ...string) error
	Capture(name string, args ...string) (Result, error)
	RunShellContext(ctx context.Context, command, dir string) error
}

var _ Executor = (*DefaultExecutor)(nil)

// DefaultExecutor implements Executor using os/exec.
type DefaultExecutor struct{}

func NewDefaultExecutor() *DefaultExecutor {
	return &DefaultExecutor{}
}

func (e *DefaultExecutor) LookPath(name string) error {
	_, err := osexec.LookPath(name)
	if err != nil {
		return fmt.Errorf("command not found: %s", name)
	}
	return nil
}

func wrapExecError(err error, stderr string) error {
	errMsg := strings.TrimSpace(stderr)
	if errMsg != "" {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	return err
}

func (e *DefaultExecutor) Output(name string, args ...string) (string, error) {
	cmd := osexec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", wrapExecError(err, stderr.String())
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}

func (e *DefaultExecutor) Run(name string, args ...string) error {
	cmd := osexec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return wrapExecError(err, stderr.String())
	}
	return nil
}

// Capture runs the command and returns its raw output and exit code.
// A non-zero exit is not an error; only a failure to start the process is.
func (e *DefaultExecutor) Capture(name string, args ...string) (Result, error) {
	cmd := osexec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{
		StandardOutput: stdout.String(),
		StandardError:  stderr.String(),
	}
	if err != nil {
		var exitErr *osexec.ExitError
		if !errors.As(err, &exitErr) {
			return res, err
		}
		res.ExitCode = exitErr.ExitCode()
	}
	return res, nil
}

func (e *DefaultExecutor) RunShellContext(ctx context.Context, command, dir string) error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "sh"
	}
	cmd := osexec.CommandContext(ctx, shell, "-c", command)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

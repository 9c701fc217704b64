package git

import (
	"strings"

	"github.com/wasabi0522/flowkit/internal/exec"
)

const headsPrefix = "refs/heads/"

var _ Client = (*client)(nil)

type client struct {
	exec exec.Executor
}

// NewClient creates a git Client backed by the given Executor.
func NewClient(exec exec.Executor) Client {
	return &client{exec: exec}
}

func (c *client) GitCommonDir() (string, error) {
	return c.exec.Output("git", "rev-parse", "--path-format=absolute", "--git-common-dir")
}

func (c *client) CurrentRef() (string, error) {
	out, err := c.exec.Output("git", "symbolic-ref", "-q", "HEAD")
	if err != nil {
		// -q makes symbolic-ref exit 1 silently on a detached HEAD.
		if exec.IsExitCode(err, 1) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimPrefix(strings.TrimSpace(out), headsPrefix), nil
}

func (c *client) ConfigGet(key string) (string, error) {
	out, err := c.exec.Output("git", "config", "--get", key)
	if err != nil {
		if exec.IsExitCode(err, 1) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *client) ListBranches() ([]string, error) {
	out, err := c.exec.Output("git", "branch", "--no-color")
	if err != nil {
		return nil, err
	}
	return ParseBranchNames(out), nil
}

func (c *client) Remotes() ([]string, error) {
	out, err := c.exec.Output("git", "remote")
	if err != nil {
		return nil, err
	}
	return ParseBranchNames(out), nil
}

func (c *client) FlowVersion() (string, error) {
	out, err := c.exec.Output("git", "flow", "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *client) FlowList(args ...string) ([]string, error) {
	res, err := c.exec.Capture("git", append([]string{"flow"}, args...)...)
	if err != nil {
		return nil, err
	}
	if !res.ExitedSuccessfully() {
		return nil, nil
	}
	return ParseBranchNames(res.StandardOutput), nil
}

func (c *client) Flow(args ...string) (string, error) {
	return c.exec.Output("git", append([]string{"flow"}, args...)...)
}

package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/flowkit/internal/flow"
	"github.com/wasabi0522/flowkit/internal/ui"
)

func init() {
	ui.SetNoColor(true)
}

func TestStartCommand(t *testing.T) {
	t.Run("start feature", func(t *testing.T) {
		d, g, _ := newFlowDeps("develop", nil)
		out, err := executeCommand(t, appWithDeps(d), "start", "feature", "login")
		require.NoError(t, err)
		assert.Contains(t, out, "Started feature/login")
		require.Len(t, g.FlowCalls(), 1)
		assert.Equal(t, []string{"feature", "start", "login"}, g.FlowCalls()[0].Args)
	})

	t.Run("start with base", func(t *testing.T) {
		d, g, _ := newFlowDeps("develop", nil)
		_, err := executeCommand(t, appWithDeps(d), "start", "support", "1.x", "v1.0")
		require.NoError(t, err)
		assert.Equal(t, []string{"support", "start", "1.x", "v1.0"}, g.FlowCalls()[0].Args)
	})

	t.Run("unknown type", func(t *testing.T) {
		d, g, _ := newFlowDeps("develop", nil)
		_, err := executeCommand(t, appWithDeps(d), "start", "trunk", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown branch type")
		assert.Empty(t, g.FlowCalls())
	})

	t.Run("missing name", func(t *testing.T) {
		d, _, _ := newFlowDeps("develop", nil)
		_, err := executeCommand(t, appWithDeps(d), "start", "feature")
		assert.Error(t, err)
	})

	t.Run("deps error", func(t *testing.T) {
		_, err := executeCommand(t, appWithDepsError(fmt.Errorf("no git")), "start", "feature", "x")
		assert.Error(t, err)
	})
}

func TestFinishCommand(t *testing.T) {
	branches := map[string][]string{"feature": {"login"}, "release": {"2.0"}}

	t.Run("current branch", func(t *testing.T) {
		d, g, _ := newFlowDeps("feature/login", branches)
		out, err := executeCommand(t, appWithDeps(d), "finish", "feature")
		require.NoError(t, err)
		assert.Contains(t, out, "Finished feature/login")
		assert.Equal(t, []string{"feature", "finish", "login"}, g.FlowCalls()[0].Args)
	})

	t.Run("flags override config", func(t *testing.T) {
		d, g, _ := newFlowDeps("develop", branches)
		d.cfg.Finish.KeepBranch = true
		_, err := executeCommand(t, appWithDeps(d), "finish", "release", "2.0", "--fetch", "--keep=false")
		require.NoError(t, err)
		assert.Equal(t, []string{"release", "finish", "-F", "-m", "release 2.0", "2.0"}, g.FlowCalls()[0].Args)
	})

	t.Run("config applies without flags", func(t *testing.T) {
		d, g, _ := newFlowDeps("develop", branches)
		d.cfg.Finish.KeepBranch = true
		_, err := executeCommand(t, appWithDeps(d), "finish", "release", "2.0")
		require.NoError(t, err)
		assert.Equal(t, []string{"release", "finish", "-k", "-m", "release 2.0", "2.0"}, g.FlowCalls()[0].Args)
	})

	t.Run("tag message", func(t *testing.T) {
		d, g, _ := newFlowDeps("develop", branches)
		d.cfg.Finish.Message = "from config"
		_, err := executeCommand(t, appWithDeps(d), "finish", "release", "2.0", "-m", "Release 2.0")
		require.NoError(t, err)
		assert.Equal(t, []string{"release", "finish", "-m", "Release 2.0", "2.0"}, g.FlowCalls()[0].Args)
	})

	t.Run("tag message from config", func(t *testing.T) {
		d, g, _ := newFlowDeps("develop", branches)
		d.cfg.Finish.Message = "from config"
		_, err := executeCommand(t, appWithDeps(d), "finish", "release", "2.0")
		require.NoError(t, err)
		assert.Equal(t, []string{"release", "finish", "-m", "from config", "2.0"}, g.FlowCalls()[0].Args)
	})

	t.Run("not a flow branch", func(t *testing.T) {
		d, _, _ := newFlowDeps("develop", branches)
		_, err := executeCommand(t, appWithDeps(d), "finish", "feature")
		var nfErr *flow.NotFlowBranchError
		assert.ErrorAs(t, err, &nfErr)
	})

	t.Run("support refused", func(t *testing.T) {
		d, _, _ := newFlowDeps("support/1.x", branches)
		_, err := executeCommand(t, appWithDeps(d), "finish", "support")
		var uaErr *flow.UnsupportedActionError
		assert.ErrorAs(t, err, &uaErr)
	})
}

func TestPublishCommand(t *testing.T) {
	d, g, _ := newFlowDeps("develop", map[string][]string{"hotfix": {"1.0.1"}})
	out, err := executeCommand(t, appWithDeps(d), "publish", "hotfix", "1.0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "Published hotfix/1.0.1")
	assert.Equal(t, []string{"hotfix", "publish", "1.0.1"}, g.FlowCalls()[0].Args)
}

func TestPullCommand(t *testing.T) {
	t.Run("remote flag", func(t *testing.T) {
		d, g, _ := newFlowDeps("develop", nil)
		_, err := executeCommand(t, appWithDeps(d), "pull", "feature", "login", "--remote", "upstream")
		require.NoError(t, err)
		assert.Equal(t, []string{"feature", "pull", "upstream", "login"}, g.FlowCalls()[0].Args)
	})

	t.Run("config remote", func(t *testing.T) {
		d, g, _ := newFlowDeps("develop", nil)
		d.cfg.Remote = "fork"
		out, err := executeCommand(t, appWithDeps(d), "pull", "bugfix", "crash")
		require.NoError(t, err)
		assert.Contains(t, out, "Pulled bugfix/crash")
		assert.Equal(t, []string{"bugfix", "pull", "fork", "crash"}, g.FlowCalls()[0].Args)
	})

	t.Run("remote flag validated like config", func(t *testing.T) {
		for _, remote := range []string{"--remote=-oProxyCommand=x", "--remote=", "--remote=my remote"} {
			d, g, _ := newFlowDeps("develop", nil)
			_, err := executeCommand(t, appWithDeps(d), "pull", "feature", "login", remote)
			assert.Error(t, err, remote)
			assert.Empty(t, g.FlowCalls(), remote)
		}
	})

	t.Run("unknown remote", func(t *testing.T) {
		d, g, _ := newFlowDeps("develop", nil)
		_, err := executeCommand(t, appWithDeps(d), "pull", "feature", "login", "-r", "nope")
		var urErr *flow.UnknownRemoteError
		assert.ErrorAs(t, err, &urErr)
		assert.Empty(t, g.FlowCalls())
	})
}

func TestSetupCommand(t *testing.T) {
	t.Run("runs git flow init", func(t *testing.T) {
		d, g, _ := newFlowDeps("main", nil)
		g.FlowFunc = func(args ...string) (string, error) { return "Initialized\n", nil }
		out, err := executeCommand(t, appWithDeps(d), "setup", "--force")
		require.NoError(t, err)
		assert.Contains(t, out, "Initialized")
		assert.Equal(t, []string{"init", "-d", "-f"}, g.FlowCalls()[0].Args)
	})

	t.Run("git-flow missing", func(t *testing.T) {
		d, g, _ := newFlowDeps("main", nil)
		g.FlowVersionFunc = func() (string, error) { return "", fmt.Errorf("not a git command") }
		_, err := executeCommand(t, appWithDeps(d), "setup")
		assert.ErrorIs(t, err, flow.ErrNotInstalled)
	})
}

package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// RepoBuilder constructs temporary git repositories for testing.
type RepoBuilder struct {
	t             *testing.T
	initialBranch string
	noCommit      bool
	remote        string
	branches      []string
	checkout      string
	config        [][2]string
}

// NewRepo creates a RepoBuilder for the given test.
func NewRepo(t *testing.T) *RepoBuilder {
	t.Helper()
	return &RepoBuilder{t: t, initialBranch: "main"}
}

// WithInitialBranch sets the branch `git init` starts on. Defaults to main.
func (b *RepoBuilder) WithInitialBranch(name string) *RepoBuilder {
	b.initialBranch = name
	return b
}

// WithoutCommit leaves the repository without any commit, so no branch
// exists yet. Branches and checkout are ignored.
func (b *RepoBuilder) WithoutCommit() *RepoBuilder {
	b.noCommit = true
	return b
}

// WithRemote sets the origin remote URL.
func (b *RepoBuilder) WithRemote(url string) *RepoBuilder {
	b.remote = url
	return b
}

// WithBranch adds a branch to be created.
func (b *RepoBuilder) WithBranch(name string) *RepoBuilder {
	b.branches = append(b.branches, name)
	return b
}

// WithCheckout checks out the given branch once all branches exist.
func (b *RepoBuilder) WithCheckout(branch string) *RepoBuilder {
	b.checkout = branch
	return b
}

// WithConfig sets a local git config value.
func (b *RepoBuilder) WithConfig(key, value string) *RepoBuilder {
	b.config = append(b.config, [2]string{key, value})
	return b
}

// WithFlowConfig writes the git-flow branch settings `git flow init -d` would.
func (b *RepoBuilder) WithFlowConfig() *RepoBuilder {
	return b.WithBranch("develop").
		WithConfig("gitflow.branch.master", "main").
		WithConfig("gitflow.branch.develop", "develop").
		WithConfig("gitflow.prefix.feature", "feature/").
		WithConfig("gitflow.prefix.bugfix", "bugfix/").
		WithConfig("gitflow.prefix.release", "release/").
		WithConfig("gitflow.prefix.hotfix", "hotfix/").
		WithConfig("gitflow.prefix.support", "support/")
}

// Build creates the repository and returns the root directory path.
func (b *RepoBuilder) Build() string {
	b.t.Helper()

	dir := b.t.TempDir()

	run(b.t, dir, "git", "init", "-b", b.initialBranch)
	run(b.t, dir, "git", "config", "user.email", "test@example.com")
	run(b.t, dir, "git", "config", "user.name", "Test")
	if b.noCommit {
		for _, kv := range b.config {
			run(b.t, dir, "git", "config", kv[0], kv[1])
		}
		return dir
	}

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		b.t.Fatal(err)
	}
	run(b.t, dir, "git", "add", ".")
	run(b.t, dir, "git", "commit", "-m", "initial commit")

	if b.remote != "" {
		run(b.t, dir, "git", "remote", "add", "origin", b.remote)
	}

	for _, kv := range b.config {
		run(b.t, dir, "git", "config", kv[0], kv[1])
	}

	created := make(map[string]bool)
	for _, branch := range b.branches {
		if !created[branch] {
			run(b.t, dir, "git", "branch", branch)
			created[branch] = true
		}
	}

	if b.checkout != "" {
		run(b.t, dir, "git", "checkout", "-q", b.checkout)
	}

	return dir
}

// GitRepo creates a temporary git repository with an initial commit.
// The directory is cleaned up when the test finishes.
func GitRepo(t *testing.T) string {
	t.Helper()
	return NewRepo(t).Build()
}

// GitRepoWithRemote creates a temporary git repository with a configured remote URL.
func GitRepoWithRemote(t *testing.T, remoteURL string) string {
	t.Helper()
	return NewRepo(t).WithRemote(remoteURL).Build()
}

// GitRepoWithBranch creates a temporary git repository with an additional branch.
func GitRepoWithBranch(t *testing.T, branch string) string {
	t.Helper()
	return NewRepo(t).WithBranch(branch).Build()
}

// Git runs a git command in dir and fails the test on error.
func Git(t *testing.T, dir string, args ...string) {
	t.Helper()
	run(t, dir, "git", args...)
}

func run(t *testing.T, dir, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %v: %s: %v", name, args, out, err)
	}
}

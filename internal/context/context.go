package context

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/wasabi0522/flowkit/internal/git"
)

// Context holds resolved repository information.
type Context struct {
	RepoRoot      string
	CurrentRef    string
	MasterBranch  string
	DevelopBranch string
	// Initialized is true when git-flow has been set up in the repository.
	Initialized bool
}

// Resolver resolves repository context from git metadata.
type Resolver struct {
	git git.Client
}

// NewResolver creates a Resolver backed by the given git client.
func NewResolver(git git.Client) *Resolver {
	return &Resolver{git: git}
}

// Resolve resolves the full repository context.
func (r *Resolver) Resolve() (*Context, error) {
	repoRoot, err := r.resolveRepoRoot()
	if err != nil {
		return nil, err
	}

	ref, err := r.git.CurrentRef()
	if err != nil {
		return nil, fmt.Errorf("resolving current branch: %w", err)
	}

	develop, err := r.git.ConfigGet("gitflow.branch.develop")
	if err != nil {
		return nil, fmt.Errorf("reading git-flow config: %w", err)
	}
	initialized := develop != ""
	if !initialized {
		develop = "develop"
	}

	master, err := r.resolveMasterBranch()
	if err != nil {
		return nil, err
	}

	return &Context{
		RepoRoot:      repoRoot,
		CurrentRef:    ref,
		MasterBranch:  master,
		DevelopBranch: develop,
		Initialized:   initialized,
	}, nil
}

func (r *Resolver) resolveRepoRoot() (string, error) {
	gitDir, err := r.git.GitCommonDir()
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return filepath.Dir(gitDir), nil
}

// defaultMasterBranch is what `git flow init -d` proposes when neither
// main nor master exists yet.
const defaultMasterBranch = "master"

// resolveMasterBranch prefers the git-flow setting, then an existing main or
// master branch, then defaultMasterBranch. An empty repository or one on an
// unrelated default branch is not an error.
func (r *Resolver) resolveMasterBranch() (string, error) {
	name, err := r.git.ConfigGet("gitflow.branch.master")
	if err != nil {
		return "", fmt.Errorf("reading git-flow config: %w", err)
	}
	if name != "" {
		return name, nil
	}

	branches, err := r.git.ListBranches()
	if err != nil {
		return "", fmt.Errorf("listing branches: %w", err)
	}
	for _, name := range []string{"main", "master"} {
		if slices.Contains(branches, name) {
			return name, nil
		}
	}
	return defaultMasterBranch, nil
}

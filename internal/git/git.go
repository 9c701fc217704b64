package git

//go:generate moq -out git_mock.go . Client

// Querier abstracts read-only repository queries.
type Querier interface {
	GitCommonDir() (string, error)
	// CurrentRef returns the checked-out branch with refs/heads/ removed,
	// or "" when HEAD is detached.
	CurrentRef() (string, error)
	// ConfigGet returns the value of a git config key, or "" when unset.
	ConfigGet(key string) (string, error)
}

// BranchReader abstracts read-only branch operations.
type BranchReader interface {
	// ListBranches returns local branch names in `git branch` order.
	ListBranches() ([]string, error)
	Remotes() ([]string, error)
}

// FlowRunner abstracts the git-flow extension.
type FlowRunner interface {
	FlowVersion() (string, error)
	// FlowList runs a `git flow <args...>` listing and parses its branch
	// names. A failing listing yields an empty result rather than an error.
	FlowList(args ...string) ([]string, error)
	// Flow runs `git flow <args...>` and returns its trimmed stdout.
	Flow(args ...string) (string, error)
}

// Client abstracts git operations for testing.
type Client interface {
	Querier
	BranchReader
	FlowRunner
}

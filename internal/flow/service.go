package flow

import (
	"sync"

	flowexec "github.com/wasabi0522/flowkit/internal/exec"
	"github.com/wasabi0522/flowkit/internal/git"
)

// Logger defines the logging surface used by Service.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for command tracing and best-effort warnings.
func WithLogger(l Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithParams sets the repository and configuration parameters.
func WithParams(p Params) Option {
	return func(s *Service) { s.p = p }
}

const (
	defaultRemote         = "origin"
	defaultMaxSuggestions = 3
)

// Params holds repository and configuration values shared by all operations.
type Params struct {
	RepoRoot        string
	Remote          string
	Finish          FinishOptions
	PostStartHooks  []string
	PostFinishHooks []string
	MaxSuggestions  int
}

// Service drives git-flow operations through a git client.
// Branch listings are memoized per branch type for the Service's lifetime;
// operations that create or remove branches invalidate the memo.
type Service struct {
	exec   flowexec.Executor
	git    git.Client
	p      Params
	logger Logger

	mu   sync.Mutex
	memo map[BranchType][]string
}

// nopLogger discards all log messages.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// NewService creates a Service. Zero-valued Params fields fall back to defaults.
func NewService(exec flowexec.Executor, g git.Client, opts ...Option) *Service {
	s := &Service{
		exec:   exec,
		git:    g,
		logger: nopLogger{},
		memo:   make(map[BranchType][]string),
	}
	for _, o := range opts {
		o(s)
	}
	if s.p.Remote == "" {
		s.p.Remote = defaultRemote
	}
	if s.p.MaxSuggestions <= 0 {
		s.p.MaxSuggestions = defaultMaxSuggestions
	}
	return s
}

// Branches returns the branch names of type t, without the type prefix.
func (s *Service) Branches(t BranchType) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if names, ok := s.memo[t]; ok {
		return names, nil
	}
	s.logger.Debug("listing flow branches", "type", t)
	names, err := s.git.FlowList(ListArgs(t)...)
	if err != nil {
		return nil, err
	}
	s.memo[t] = names
	return names, nil
}

// Invalidate drops memoized listings for the given types, or all when none are given.
func (s *Service) Invalidate(types ...BranchType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(types) == 0 {
		clear(s.memo)
		return
	}
	for _, t := range types {
		delete(s.memo, t)
	}
}

// Installed reports whether the git-flow extension is available.
func (s *Service) Installed() bool {
	v, err := s.git.FlowVersion()
	if err != nil {
		s.logger.Debug("git flow version failed", "error", err)
		return false
	}
	s.logger.Debug("git-flow detected", "version", v)
	return true
}

// Initialized reports whether git-flow has been set up in the repository.
func (s *Service) Initialized() (bool, error) {
	v, err := s.git.ConfigGet("gitflow.branch.develop")
	if err != nil {
		return false, err
	}
	return v != "", nil
}

// Current classifies the checked-out branch. ok is false on a detached HEAD
// or when the branch is outside every flow namespace.
func (s *Service) Current() (ref string, c ClassifiedRef, ok bool, err error) {
	ref, err = s.git.CurrentRef()
	if err != nil {
		return "", ClassifiedRef{}, false, err
	}
	c, ok = Classify(ref)
	return ref, c, ok, nil
}

package flow

import (
	"context"
	"fmt"
	"slices"

	"github.com/sahilm/fuzzy"
)

// Result holds the outcome of a flow operation.
type Result struct {
	Action Action
	Ref    ClassifiedRef
	Output string
}

// StartParams holds parameters for Start.
type StartParams struct {
	Type BranchType
	Name string
	Base string
}

// BranchParams identifies an existing flow branch. An empty Name means the
// current branch, which must then be of the same Type.
type BranchParams struct {
	Type BranchType
	Name string
}

// Init runs `git flow init` with default branch names.
func (s *Service) Init(force bool) (string, error) {
	if !s.Installed() {
		return "", ErrNotInstalled
	}
	out, err := s.run(InitArgs(force))
	if err != nil {
		return "", fmt.Errorf("git flow init: %w", err)
	}
	s.Invalidate()
	return out, nil
}

// Start creates a new flow branch.
func (s *Service) Start(ctx context.Context, p StartParams) (*Result, error) {
	if err := requireAllowed(p.Type, ActionStart); err != nil {
		return nil, err
	}
	if err := ValidateName(p.Type, p.Name); err != nil {
		return nil, err
	}
	if p.Base == "" && requiresBase(p.Type) {
		return nil, &BaseRequiredError{Type: p.Type}
	}
	if err := s.requireInitialized(); err != nil {
		return nil, err
	}

	out, err := s.run(StartArgs(p.Type, p.Name, p.Base))
	if err != nil {
		return nil, fmt.Errorf("starting %s%s: %w", p.Type.Prefix(), p.Name, err)
	}
	s.Invalidate(p.Type)
	s.runHooks(ctx, "post_start", s.p.PostStartHooks)

	return &Result{Action: ActionStart, Ref: ClassifiedRef{Type: p.Type, Name: p.Name}, Output: out}, nil
}

// Finish merges a flow branch back according to git-flow rules.
func (s *Service) Finish(ctx context.Context, p BranchParams) (*Result, error) {
	c, err := s.prepare(ActionFinish, p)
	if err != nil {
		return nil, err
	}

	out, err := s.run(FinishArgs(c.Type, c.Name, s.p.Finish))
	if err != nil {
		return nil, fmt.Errorf("finishing %s: %w", c.Ref(), err)
	}
	s.Invalidate(c.Type)
	s.runHooks(ctx, "post_finish", s.p.PostFinishHooks)

	return &Result{Action: ActionFinish, Ref: c, Output: out}, nil
}

// Publish pushes a flow branch to the remote.
func (s *Service) Publish(p BranchParams) (*Result, error) {
	c, err := s.prepare(ActionPublish, p)
	if err != nil {
		return nil, err
	}

	out, err := s.run(PublishArgs(c.Type, c.Name))
	if err != nil {
		return nil, fmt.Errorf("publishing %s: %w", c.Ref(), err)
	}
	return &Result{Action: ActionPublish, Ref: c, Output: out}, nil
}

// Pull fetches a flow branch from the configured remote.
// The branch need not exist locally.
func (s *Service) Pull(p BranchParams) (*Result, error) {
	if err := requireAllowed(p.Type, ActionPull); err != nil {
		return nil, err
	}
	c, err := s.resolve(p)
	if err != nil {
		return nil, err
	}
	if err := s.requireInitialized(); err != nil {
		return nil, err
	}
	if err := s.requireRemote(s.p.Remote); err != nil {
		return nil, err
	}

	out, err := s.run(PullArgs(c.Type, s.p.Remote, c.Name))
	if err != nil {
		return nil, fmt.Errorf("pulling %s from %s: %w", c.Ref(), s.p.Remote, err)
	}
	s.Invalidate(c.Type)
	return &Result{Action: ActionPull, Ref: c, Output: out}, nil
}

// prepare runs the shared checks for actions on an existing local branch.
func (s *Service) prepare(a Action, p BranchParams) (ClassifiedRef, error) {
	if err := requireAllowed(p.Type, a); err != nil {
		return ClassifiedRef{}, err
	}
	c, err := s.resolve(p)
	if err != nil {
		return ClassifiedRef{}, err
	}
	if err := s.requireInitialized(); err != nil {
		return ClassifiedRef{}, err
	}
	if err := s.requireExists(c); err != nil {
		return ClassifiedRef{}, err
	}
	return c, nil
}

// resolve fills in an omitted name from the current branch.
func (s *Service) resolve(p BranchParams) (ClassifiedRef, error) {
	if p.Name != "" {
		if err := ValidateName(p.Type, p.Name); err != nil {
			return ClassifiedRef{}, err
		}
		return ClassifiedRef{Type: p.Type, Name: p.Name}, nil
	}

	ref, c, ok, err := s.Current()
	if err != nil {
		return ClassifiedRef{}, fmt.Errorf("reading current branch: %w", err)
	}
	if !ok || c.Type != p.Type || c.Name == "" {
		return ClassifiedRef{}, &NotFlowBranchError{Type: p.Type, Ref: ref}
	}
	return c, nil
}

func (s *Service) requireInitialized() error {
	ok, err := s.Initialized()
	if err != nil {
		return fmt.Errorf("checking git-flow config: %w", err)
	}
	if !ok {
		return ErrNotInitialized
	}
	return nil
}

func (s *Service) requireRemote(name string) error {
	remotes, err := s.git.Remotes()
	if err != nil {
		return fmt.Errorf("listing remotes: %w", err)
	}
	if !slices.Contains(remotes, name) {
		return &UnknownRemoteError{Remote: name, Known: remotes}
	}
	return nil
}

// requireExists returns a BranchNotFoundError, with close matches as
// suggestions, if c is not among the listed branches of its type.
func (s *Service) requireExists(c ClassifiedRef) error {
	names, err := s.Branches(c.Type)
	if err != nil {
		return fmt.Errorf("listing %s branches: %w", c.Type, err)
	}
	for _, n := range names {
		if n == c.Name {
			return nil
		}
	}
	return &BranchNotFoundError{Type: c.Type, Name: c.Name, Suggestions: s.suggest(c.Name, names)}
}

func (s *Service) suggest(name string, names []string) []string {
	var out []string
	for _, m := range fuzzy.Find(name, names) {
		if len(out) == s.p.MaxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

func (s *Service) run(args []string) (string, error) {
	s.logger.Debug("running git flow", "args", args)
	return s.git.Flow(args...)
}

// runHooks runs shell hooks in the repository root. Failures are logged
// and do not fail the operation.
func (s *Service) runHooks(ctx context.Context, stage string, hooks []string) {
	for _, h := range hooks {
		if err := s.exec.RunShellContext(ctx, h, s.p.RepoRoot); err != nil {
			s.logger.Warn("hook failed", "stage", stage, "command", h, "error", err)
		}
	}
}

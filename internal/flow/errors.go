package flow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotInitialized indicates git-flow has not been set up in the repository.
var ErrNotInitialized = errors.New("git-flow is not initialized; run 'flowkit setup'")

// ErrNotInstalled indicates the git-flow extension is not available.
var ErrNotInstalled = errors.New("git-flow is not installed")

// BranchNotFoundError indicates the named flow branch does not exist.
type BranchNotFoundError struct {
	Type        BranchType
	Name        string
	Suggestions []string
}

func (e *BranchNotFoundError) Error() string {
	msg := fmt.Sprintf("%s branch '%s' does not exist", e.Type, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// UnsupportedActionError indicates the action is not allowed for the branch type.
type UnsupportedActionError struct {
	Type   BranchType
	Action Action
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("cannot %s %s branches", e.Action, e.Type)
}

// NotFlowBranchError indicates the current branch is not a flow branch of the requested type.
type NotFlowBranchError struct {
	Type BranchType
	Ref  string
}

func (e *NotFlowBranchError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("HEAD is detached; specify the %s branch name", e.Type)
	}
	return fmt.Sprintf("current branch '%s' is not a %s branch; specify the name", e.Ref, e.Type)
}

// BaseRequiredError indicates a start operation needs an explicit base.
type BaseRequiredError struct {
	Type BranchType
}

func (e *BaseRequiredError) Error() string {
	return fmt.Sprintf("starting a %s branch requires a base", e.Type)
}

// UnknownRemoteError indicates the remote is not configured in the repository.
type UnknownRemoteError struct {
	Remote string
	Known  []string
}

func (e *UnknownRemoteError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("remote '%s' does not exist; the repository has no remotes", e.Remote)
	}
	return fmt.Sprintf("remote '%s' does not exist (known: %s)", e.Remote, strings.Join(e.Known, ", "))
}

package flow

import (
	"fmt"
	"strings"
)

// BranchType is a git-flow branch category.
type BranchType int

const (
	Feature BranchType = iota
	Bugfix
	Hotfix
	Release
	Support
)

var branchTypeStrings = [...]string{
	Feature: "feature",
	Bugfix:  "bugfix",
	Hotfix:  "hotfix",
	Release: "release",
	Support: "support",
}

// Types returns every branch type in declaration order, which is also the
// order Classify tries them in.
func Types() []BranchType {
	return []BranchType{Feature, Bugfix, Hotfix, Release, Support}
}

// String returns the string representation of the BranchType.
func (t BranchType) String() string {
	if t >= 0 && int(t) < len(branchTypeStrings) {
		return branchTypeStrings[t]
	}
	return "unknown"
}

// Prefix returns the ref prefix for the type, e.g. "feature/".
func (t BranchType) Prefix() string {
	return t.String() + "/"
}

// ParseBranchType parses a type name such as "hotfix".
func ParseBranchType(s string) (BranchType, error) {
	for _, t := range Types() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown branch type: %s", s)
}

// MarshalJSON returns the JSON encoding of the BranchType.
func (t BranchType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string into a BranchType.
func (t *BranchType) UnmarshalJSON(data []byte) error {
	v, err := ParseBranchType(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ClassifiedRef is a ref split into its flow type and the name after the prefix.
type ClassifiedRef struct {
	Type BranchType `json:"type"`
	Name string     `json:"name"`
}

// Ref returns the full branch name, e.g. "feature/login".
func (c ClassifiedRef) Ref() string {
	return c.Type.Prefix() + c.Name
}

// Classify splits ref into (type, name) by exact, case-sensitive prefix match.
// ref must already have any refs/heads/ prefix removed. The name may be empty
// when ref is exactly "<type>/". A ref outside every flow namespace reports false.
func Classify(ref string) (ClassifiedRef, bool) {
	for _, t := range Types() {
		if name, ok := strings.CutPrefix(ref, t.Prefix()); ok {
			return ClassifiedRef{Type: t, Name: name}, true
		}
	}
	return ClassifiedRef{}, false
}

package flow

import (
	"fmt"
	"strings"
)

// InvalidNameError reports why a flow branch name was rejected.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid branch name %q: %s", e.Name, e.Reason)
}

type nameRule struct {
	bad    func(string) bool
	reason string
}

// refRules follow git check-ref-format for the full "<type>/<name>" ref.
var refRules = []nameRule{
	{func(r string) bool { return strings.ContainsAny(r, " \t") }, "contains whitespace"},
	{func(r string) bool {
		return strings.ContainsFunc(r, func(c rune) bool { return c < 0x20 || c == 0x7f })
	}, "contains control character"},
	{func(r string) bool { return strings.ContainsAny(r, "~^*?[\\:") }, "contains invalid character"},
	{func(r string) bool { return strings.Contains(r, "..") }, "contains '..'"},
	{func(r string) bool { return strings.Contains(r, "@{") }, "contains '@{'"},
	{func(r string) bool { return strings.Contains(r, "//") }, "contains '//'"},
	{func(r string) bool { return strings.Contains(r, "/.") }, "has a component starting with '.'"},
	{func(r string) bool { return strings.HasSuffix(r, ".") }, "ends with '.'"},
	{func(r string) bool { return strings.HasSuffix(r, "/") }, "ends with '/'"},
	{func(r string) bool { return strings.HasSuffix(r, ".lock") }, "ends with '.lock'"},
}

// ValidateName checks that name, prefixed by t, forms a valid branch ref.
// name is the part after "<type>/", as git flow expects it.
func ValidateName(t BranchType, name string) error {
	if name == "" {
		return &InvalidNameError{Name: name, Reason: "must not be empty"}
	}
	if strings.HasPrefix(name, "-") {
		return &InvalidNameError{Name: name, Reason: "must not start with '-'"}
	}
	if strings.HasPrefix(name, t.Prefix()) {
		return &InvalidNameError{Name: name, Reason: fmt.Sprintf("must not repeat the %q prefix", t.Prefix())}
	}
	ref := t.Prefix() + name
	for _, r := range refRules {
		if r.bad(ref) {
			return &InvalidNameError{Name: name, Reason: r.reason}
		}
	}
	return nil
}

package git

import "strings"

// branchMarkers are stripped from both ends of every line of branch-listing
// output. '*' marks the checked-out branch in native `git branch` output.
const branchMarkers = "* \r\n"

// ParseBranchNames extracts branch names from line-oriented branch-listing
// output such as `git branch` or `git flow feature list`.
//
// Blank output yields nil. Lines are split on '\n' only and trimmed of
// branchMarkers; lines that trim to nothing are skipped. Order is kept and
// duplicates pass through. It never fails.
func ParseBranchNames(output string) []string {
	if strings.TrimSpace(output) == "" {
		return nil
	}

	var names []string
	for line := range strings.SplitSeq(output, "\n") {
		if line == "" {
			continue
		}
		name := strings.Trim(line, branchMarkers)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wasabi0522/flowkit/internal/flow"
)

// validateTypeArg checks that the first argument names a git-flow branch type.
func validateTypeArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	_, err := flow.ParseBranchType(args[0])
	return err
}

// parseBranchArgs splits "<type> [name]" positional arguments.
func parseBranchArgs(args []string) (flow.BranchParams, error) {
	t, err := flow.ParseBranchType(args[0])
	if err != nil {
		return flow.BranchParams{}, err
	}
	p := flow.BranchParams{Type: t}
	if len(args) >= 2 {
		p.Name = args[1]
	}
	return p, nil
}

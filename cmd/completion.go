package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	flowexec "github.com/wasabi0522/flowkit/internal/exec"
	"github.com/wasabi0522/flowkit/internal/flow"
	"github.com/wasabi0522/flowkit/internal/git"
)

// completionFunc is the type for cobra shell completion functions.
type completionFunc = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

func completionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion <bash|zsh|fish>",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

func typeNames() []string {
	var names []string
	for _, t := range flow.Types() {
		names = append(names, t.String())
	}
	return names
}

// completeTypes completes the branch type in the first position only.
func completeTypes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return typeNames(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// completeFlowArgsWithExec completes "<type> <name>": branch types first,
// then existing branch names of the chosen type.
func completeFlowArgsWithExec(e flowexec.Executor, args []string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return typeNames(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		t, err := flow.ParseBranchType(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if err := e.LookPath("git"); err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		names, err := git.NewClient(e).FlowList(flow.ListArgs(t)...)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

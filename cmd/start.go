package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wasabi0522/flowkit/internal/flow"
)

func (a *App) startCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "start <type> <name> [base]",
		Aliases:           []string{"s"},
		Short:             "Start a new feature, bugfix, hotfix, release or support branch",
		Args:              cobra.MatchAll(cobra.RangeArgs(2, 3), validateTypeArg),
		RunE:              a.runStart,
		ValidArgsFunction: completeTypes,
	}
}

func (a *App) runStart(cmd *cobra.Command, args []string) error {
	t, err := flow.ParseBranchType(args[0])
	if err != nil {
		return err
	}
	p := flow.StartParams{Type: t, Name: args[1]}
	if len(args) == 3 {
		p.Base = args[2]
	}

	return a.withService(func(svc *flow.Service) error {
		res, err := svc.Start(cmd.Context(), p)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	})
}

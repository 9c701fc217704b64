package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wasabi0522/flowkit/internal/flow"
)

func (a *App) publishCmd(completeFlowArgs completionFunc) *cobra.Command {
	return &cobra.Command{
		Use:               "publish <type> [name]",
		Aliases:           []string{"pub"},
		Short:             "Push a flow branch to the remote (defaults to the current branch)",
		Args:              cobra.MatchAll(cobra.RangeArgs(1, 2), validateTypeArg),
		RunE:              a.runPublish,
		ValidArgsFunction: completeFlowArgs,
	}
}

func (a *App) runPublish(cmd *cobra.Command, args []string) error {
	p, err := parseBranchArgs(args)
	if err != nil {
		return err
	}

	return a.withService(func(svc *flow.Service) error {
		res, err := svc.Publish(p)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	})
}

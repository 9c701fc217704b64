package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wasabi0522/flowkit/internal/config"
	"github.com/wasabi0522/flowkit/internal/flow"
)

func (a *App) finishCmd(completeFlowArgs completionFunc) *cobra.Command {
	var fetch, keep bool
	var message string
	cmd := &cobra.Command{
		Use:   "finish <type> [name]",
		Short: "Finish a flow branch (defaults to the current branch)",
		Args:  cobra.MatchAll(cobra.RangeArgs(1, 2), validateTypeArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFinish(cmd, args, func(cfg *config.Config) {
				if cmd.Flags().Changed("fetch") {
					cfg.Finish.Fetch = fetch
				}
				if cmd.Flags().Changed("keep") {
					cfg.Finish.KeepBranch = keep
				}
				if cmd.Flags().Changed("message") {
					cfg.Finish.Message = message
				}
			})
		},
		ValidArgsFunction: completeFlowArgs,
	}
	cmd.Flags().BoolVarP(&fetch, "fetch", "F", false, "Fetch from the remote before finishing")
	cmd.Flags().BoolVarP(&keep, "keep", "k", false, "Keep the branch after finishing")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Tag message for release and hotfix branches")
	return cmd
}

func (a *App) runFinish(cmd *cobra.Command, args []string, adjust func(cfg *config.Config)) error {
	p, err := parseBranchArgs(args)
	if err != nil {
		return err
	}

	return a.withConfiguredService(adjust, func(svc *flow.Service) error {
		res, err := svc.Finish(cmd.Context(), p)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	})
}

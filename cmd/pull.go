package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wasabi0522/flowkit/internal/config"
	"github.com/wasabi0522/flowkit/internal/flow"
)

func (a *App) pullCmd() *cobra.Command {
	var remote string
	cmd := &cobra.Command{
		Use:   "pull <type> [name]",
		Short: "Pull a flow branch from the remote (defaults to the current branch)",
		Args:  cobra.MatchAll(cobra.RangeArgs(1, 2), validateTypeArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseBranchArgs(args)
			if err != nil {
				return err
			}
			adjust := func(cfg *config.Config) {
				if cmd.Flags().Changed("remote") {
					cfg.Remote = remote
				}
			}
			return a.withConfiguredService(adjust, func(svc *flow.Service) error {
				res, err := svc.Pull(p)
				if err != nil {
					return err
				}
				printResult(cmd.OutOrStdout(), res)
				return nil
			})
		},
		ValidArgsFunction: completeTypes,
	}
	cmd.Flags().StringVarP(&remote, "remote", "r", "", "Remote to pull from (default from config)")
	return cmd
}

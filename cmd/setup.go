package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/flowkit/internal/flow"
)

func (a *App) setupCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Initialize git-flow in the repository with default branch names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(svc *flow.Service) error {
				out, err := svc.Init(force)
				if err != nil {
					return err
				}
				// best-effort: stdout write failure is non-actionable
				if out = strings.TrimSpace(out); out != "" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reinitialize even if git-flow is already set up")
	return cmd
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	flowexec "github.com/wasabi0522/flowkit/internal/exec"
)

var version = "dev"

// BuildRootCmd builds the complete CLI command tree.
func (a *App) BuildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "flowkit",
		Short:        "git-flow branch helper",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("flowkit version %s\n", version))
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	defaultExec := flowexec.NewDefaultExecutor()
	completeFlowArgs := func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		return completeFlowArgsWithExec(defaultExec, args)
	}

	// Register subcommands
	rootCmd.AddCommand(a.startCmd())
	rootCmd.AddCommand(a.finishCmd(completeFlowArgs))
	rootCmd.AddCommand(a.publishCmd(completeFlowArgs))
	rootCmd.AddCommand(a.pullCmd())
	rootCmd.AddCommand(a.listCmd())
	rootCmd.AddCommand(a.statusCmd())
	rootCmd.AddCommand(a.setupCmd())
	rootCmd.AddCommand(a.initCmd())
	rootCmd.AddCommand(completionCmd(rootCmd))

	return rootCmd
}

// Execute creates an App and runs the CLI.
func Execute() {
	app := NewApp()
	cmd := app.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

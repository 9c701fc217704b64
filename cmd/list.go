package cmd

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wasabi0522/flowkit/internal/flow"
	"github.com/wasabi0522/flowkit/internal/ui"
)

func (a *App) listCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:               "list [type...]",
		Aliases:           []string{"ls"},
		Short:             "List flow branches",
		Args:              validateTypeArgs,
		ValidArgsFunction: completeAllTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, args, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

// validateTypeArgs checks that every argument names a branch type.
func validateTypeArgs(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if _, err := flow.ParseBranchType(arg); err != nil {
			return err
		}
	}
	return nil
}

func completeAllTypes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return typeNames(), cobra.ShellCompDirectiveNoFileComp
}

func (a *App) runList(cmd *cobra.Command, args []string, jsonOutput bool) error {
	var types []flow.BranchType
	for _, arg := range args {
		t, err := flow.ParseBranchType(arg)
		if err != nil {
			return err
		}
		types = append(types, t)
	}

	return a.withService(func(svc *flow.Service) error {
		entries, err := svc.Collect(types...)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), entries)
		}
		printTable(cmd.OutOrStdout(), entries)
		return nil
	})
}

func printJSON(w io.Writer, entries []flow.Entry) error {
	if entries == nil {
		entries = []flow.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

var flowTableStyle = table.Style{
	Name: "flowkit",
	Box: table.BoxStyle{
		PaddingLeft:  "",
		PaddingRight: "  ",
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateHeader:  false,
		SeparateRows:    false,
		SeparateColumns: false,
	},
}

func printTable(w io.Writer, entries []flow.Entry) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	tw.AppendHeader(table.Row{"", "TYPE", "BRANCH"})

	for _, e := range entries {
		marker := " "
		if e.Current {
			marker = ui.Green("*")
		}
		tw.AppendRow(table.Row{marker, ui.BranchType(e.Type.String()), e.Name})
	}

	tw.SetStyle(flowTableStyle)

	tw.Render()
}

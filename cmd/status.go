package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/flowkit/internal/flow"
	"github.com/wasabi0522/flowkit/internal/ui"
)

// Status is the machine-readable form of `flowkit status`.
type Status struct {
	Ref           string              `json:"ref"`
	Flow          *flow.ClassifiedRef `json:"flow,omitempty"`
	Allowed       []string            `json:"allowed,omitempty"`
	Initialized   bool                `json:"initialized"`
	MasterBranch  string              `json:"master_branch"`
	DevelopBranch string              `json:"develop_branch"`
}

func (a *App) statusCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show the flow type of the current branch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func (a *App) runStatus(cmd *cobra.Command, jsonOutput bool) error {
	d, err := a.resolveGitDeps()
	if err != nil {
		return err
	}

	st := Status{
		Ref:           d.ctx.CurrentRef,
		Initialized:   d.ctx.Initialized,
		MasterBranch:  d.ctx.MasterBranch,
		DevelopBranch: d.ctx.DevelopBranch,
	}
	if c, ok := flow.Classify(d.ctx.CurrentRef); ok {
		st.Flow = &c
		for _, act := range []flow.Action{flow.ActionFinish, flow.ActionPublish, flow.ActionPull} {
			if flow.Allowed(c.Type, act) {
				st.Allowed = append(st.Allowed, act.String())
			}
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}
	printStatus(cmd.OutOrStdout(), st)
	return nil
}

// best-effort: stdout write failure is non-actionable
func printStatus(w io.Writer, st Status) {
	switch {
	case st.Ref == "":
		_, _ = fmt.Fprintln(w, "HEAD is detached")
	case st.Flow != nil:
		_, _ = fmt.Fprintf(w, "On %s branch %s\n", ui.BranchType(st.Flow.Type.String()), ui.Green(st.Flow.Name))
		if len(st.Allowed) > 0 {
			_, _ = fmt.Fprintf(w, "Available: %v\n", st.Allowed)
		}
	default:
		_, _ = fmt.Fprintf(w, "On %s (not a flow branch)\n", st.Ref)
	}
	if !st.Initialized {
		_, _ = fmt.Fprintln(w, ui.Yellow("⚠ git-flow is not initialized; run 'flowkit setup'"))
	}
}

package cmd

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/flowkit/internal/config"
)

//go:embed templates/flowkit.yaml.tmpl
var configTemplate string

func (a *App) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate " + config.FileName + " template",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *App) runInit(cmd *cobra.Command, args []string) error {
	d, err := a.resolveGitDeps()
	if err != nil {
		return err
	}

	path := filepath.Join(d.ctx.RepoRoot, config.FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s already exists", config.FileName)
		}
		return err
	}
	defer f.Close() //nolint:errcheck // best-effort close on a just-written file
	if _, err := f.WriteString(configTemplate); err != nil {
		return err
	}

	// best-effort: stdout write failure is non-actionable
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Created %s\n", path)
	if d.ctx.Initialized {
		_, _ = fmt.Fprintf(w, "git-flow uses %s for production and %s for development\n", d.ctx.MasterBranch, d.ctx.DevelopBranch)
	} else {
		_, _ = fmt.Fprintf(w, "git-flow is not initialized; run 'flowkit setup' to use %s and %s\n", d.ctx.MasterBranch, d.ctx.DevelopBranch)
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/wasabi0522/flowkit/internal/flow"
	"github.com/wasabi0522/flowkit/internal/ui"
)

var actionVerbs = map[flow.Action]string{
	flow.ActionStart:   "Started",
	flow.ActionFinish:  "Finished",
	flow.ActionPublish: "Published",
	flow.ActionPull:    "Pulled",
}

// printResult writes the git-flow output followed by a one-line summary.
// best-effort: stdout write failure is non-actionable
func printResult(w io.Writer, res *flow.Result) {
	if out := strings.TrimSpace(res.Output); out != "" {
		_, _ = fmt.Fprintln(w, ui.Faint(out))
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", actionVerbs[res.Action], ui.Green(res.Ref.Ref()))
}

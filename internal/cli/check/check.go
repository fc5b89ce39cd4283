// Package check provides the test command for rebuild.
package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/coregx/rebuild/engine"
	"github.com/coregx/rebuild/internal/config"
	"github.com/coregx/rebuild/internal/logger"
	"github.com/coregx/rebuild/internal/recipe"
)

// Cmd is the test cobra command.
var Cmd = &cobra.Command{
	Use:   "test <recipe> <text>...",
	Short: "Test texts against a recipe's pattern",
	Long: `Test builds the pattern described by a recipe and reports, for each
text, whether it matches. The first line names the pattern and the engine
that answers existence checks for it.`,
	Args: cobra.MinimumNArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("exec", "e", false, "Print the first match and its groups")
	Cmd.Flags().Bool("nfc", false, "Normalize texts to Unicode NFC before matching")
}

func run(cmd *cobra.Command, args []string) error {
	exec, _ := cmd.Flags().GetBool("exec")
	nfc, _ := cmd.Flags().GetBool("nfc")

	cfg, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}

	r, err := recipe.Open(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	p, err := r.Compile(cfg.Engine())
	if err != nil {
		return err
	}
	e, err := p.Engine()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\t%s\n", p, e.Strategy())

	misses := 0
	for _, text := range args[1:] {
		if nfc {
			text = norm.NFC.String(text)
		}
		ok, err := e.Test(text)
		if err != nil {
			return err
		}
		if !ok {
			misses++
			fmt.Fprintf(out, "no match\t%q\n", text)
			continue
		}
		if !exec {
			fmt.Fprintf(out, "match\t%q\n", text)
			continue
		}
		m, err := e.Exec(text)
		if err != nil {
			return err
		}
		if m == nil {
			// the fast path and the backtracker disagree
			logger.Warn("%s: %q passed Test but Exec found no match", p, text)
			fmt.Fprintf(out, "match\t%q\n", text)
			continue
		}
		printMatch(out, text, m)
	}
	logger.Debug("%d of %d texts matched", len(args)-1-misses, len(args)-1)
	return nil
}

// printMatch writes the match offset and every group, with undefined for
// groups that did not participate.
func printMatch(w io.Writer, text string, m *engine.Match) {
	groups := make([]string, len(m.Groups))
	for i, g := range m.Groups {
		if g.Matched {
			groups[i] = fmt.Sprintf("%q", g.Text)
		} else {
			groups[i] = "undefined"
		}
	}
	fmt.Fprintf(w, "match\t%q\tindex=%d\t[%s]\n", text, m.Index, strings.Join(groups, ", "))
}

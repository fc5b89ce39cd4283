// Package ops provides the ops command for rebuild.
package ops

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/rebuild"
	"github.com/coregx/rebuild/internal/recipe"
)

// Cmd is the ops cobra command.
var Cmd = &cobra.Command{
	Use:   "ops [recipe]",
	Short: "List the operations legal after a recipe",
	Long: `Ops runs a chain recipe, which may stop anywhere, and lists the
operations that may follow its last step. Without a recipe it lists the
operations that may start a chain.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	var c rebuild.Context = rebuild.WithFlags("")
	if len(args) == 1 {
		r, err := recipe.Open(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		if c, err = r.Build(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", c.Kind())
	for _, name := range rebuild.Legal(c) {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}

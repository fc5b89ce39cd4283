// Package build provides the build command for rebuild.
package build

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coregx/rebuild"
	"github.com/coregx/rebuild/engine"
	"github.com/coregx/rebuild/internal/config"
	"github.com/coregx/rebuild/internal/logger"
	"github.com/coregx/rebuild/internal/recipe"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build <recipe>...",
	Short: "Build patterns from recipes",
	Long: `Build runs chain recipes and prints the resulting patterns in literal
notation, e.g. /\d{2,4}-\w+/gi. Recipes may be given as glob patterns such as
'recipes/**/*.yaml'; with more than one recipe every line starts with the
recipe path. Use - to read a recipe from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("source", "s", false, "Print only the pattern source")
}

func run(cmd *cobra.Command, args []string) error {
	sourceOnly, _ := cmd.Flags().GetBool("source")

	cfg, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}

	paths, err := recipe.Expand(args)
	if err != nil {
		return err
	}

	patterns := make([]*rebuild.Pattern, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			p, err := compile(cmd, path, cfg.Engine())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			patterns[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, p := range patterns {
		text := p.String()
		if sourceOnly {
			text = p.Source()
		}
		if len(paths) > 1 {
			text = paths[i] + "\t" + text
		}
		if _, err := fmt.Fprintln(out, text); err != nil {
			return err
		}
	}
	return nil
}

// compile loads one recipe and compiles its pattern, so that sources the
// matcher rejects are reported here.
func compile(cmd *cobra.Command, path string, config engine.Config) (*rebuild.Pattern, error) {
	r, err := recipe.Open(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	p, err := r.Compile(config)
	if err != nil {
		return nil, err
	}
	e, err := p.Engine()
	if err != nil {
		return nil, err
	}
	logger.Debug("compiled %s with %s", p, e.Strategy())
	return p, nil
}

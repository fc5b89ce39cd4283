// Command rebuild builds regular expressions from chain recipes.
package main

import (
	"os"

	"github.com/coregx/rebuild/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command contrast reports WCAG contrast ratios for stylesheet color variables.
package main

import (
	"os"

	"github.com/opencode-ai/contrast/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

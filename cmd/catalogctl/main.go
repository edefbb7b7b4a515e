// Command catalogctl is the CLI entrypoint for the product-catalog batch
// tools: CSV summary generation (report) and short-id reconciliation (rename).
package main

import (
	"os"

	"github.com/openxpd/catalogctl/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

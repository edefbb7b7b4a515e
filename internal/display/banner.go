package display

import (
	"fmt"
	"os"

	"github.com/openxpd/catalogctl/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `  ___      _        _              _   _
 / __|__ _| |_ __ _| |___  __ _ __| |_| |
| (__/ _`+"`"+` |  _/ _`+"`"+` | / _ \/ _`+"`"+` / _|  _| |
 \___\__,_|\__\__,_|_\___/\__, \__|\__|_|
                          |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}

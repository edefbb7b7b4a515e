package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/openxpd/catalogctl/internal/term"
)

// confirmRename prints the destructive-operation warning and reads one
// line from stdin. Only "yes" or "y" (case-insensitive) proceeds; EOF or
// anything else declines.
func confirmRename() bool {
	log.Warn("==============================")
	log.Warn("WARNING: this will rename YAML files in place")
	log.Warn("Files whose short-id target already exists will be DELETED")
	log.Warn("==============================")
	if !term.IsTerminal(os.Stdin) {
		log.Warn("stdin is not a terminal; reading confirmation from piped input")
	}

	fmt.Fprint(os.Stdout, "\nDo you want to continue? (yes/no): ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y":
		return true
	default:
		return false
	}
}

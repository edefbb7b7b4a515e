// Package rename reconciles catalog filenames with the short identifier
// inside each document: files named by a long identifier are renamed to
// <open_xpd_uuid>.yaml, and long-named duplicates of an already
// short-named file are deleted.
package rename

import (
	"github.com/openxpd/catalogctl/internal/catalog"
)

// Action is the terminal decision for one catalog file.
type Action int

const (
	// ActionRename moves the file to <ShortID>.yaml.
	ActionRename Action = iota
	// ActionDelete removes the file because <ShortID>.yaml already
	// exists. The pre-existing short-named file always wins; this is a
	// destructive, non-recoverable resolution of duplicates.
	ActionDelete
	// ActionSkipNoop leaves the file alone: its stem already equals the id.
	ActionSkipNoop
	// ActionSkipMissingID leaves the file alone: no top-level open_xpd_uuid.
	ActionSkipMissingID
	// ActionSkipInvalidID leaves the file alone: open_xpd_uuid present
	// but empty or not a string.
	ActionSkipInvalidID
)

func (a Action) String() string {
	switch a {
	case ActionRename:
		return "rename"
	case ActionDelete:
		return "delete"
	case ActionSkipNoop:
		return "skip (already short)"
	case ActionSkipMissingID:
		return "skip (missing id)"
	case ActionSkipInvalidID:
		return "skip (invalid id)"
	default:
		return "unknown"
	}
}

// Decision is the outcome of the pure decision step for one file.
type Decision struct {
	Action  Action
	ShortID string // Set for rename, delete, and noop decisions.
	NewName string // Target filename; set for rename and delete decisions.
}

// Decide applies the rename state machine to one loaded document.
// targetExists reports whether a file with the candidate name is already
// present in the category directory; it is consulted only after the noop
// check, so it never sees the file's own name. Load failures never reach
// Decide; the runner accounts for those separately.
func Decide(doc catalog.Document, filename string, targetExists func(name string) bool) Decision {
	v, ok := doc["open_xpd_uuid"]
	if !ok {
		return Decision{Action: ActionSkipMissingID}
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return Decision{Action: ActionSkipInvalidID}
	}
	if catalog.StemOf(filename) == id {
		return Decision{Action: ActionSkipNoop, ShortID: id}
	}
	newName := id + ".yaml"
	if targetExists(newName) {
		return Decision{Action: ActionDelete, ShortID: id, NewName: newName}
	}
	return Decision{Action: ActionRename, ShortID: id, NewName: newName}
}

// Package host defines the narrow interface through which the engine talks
// to the embedding text widget, plus an in-memory implementation used by
// tests and the demo binary.
//
// The engine never owns a buffer, a renderer, or an event loop; everything
// it needs from the widget goes through Editor. Commands are triggered by
// name so the implementation can forward them to whatever command registry
// the widget exposes.
package host

import "github.com/dshills/vimbridge/internal/position"

// Command names understood by the host widget's command registry.
const (
	CmdCursorDown    = "cursorDown"
	CmdCursorUp      = "cursorUp"
	CmdCursorHome    = "cursorHome"
	CmdCursorEnd     = "cursorEnd"
	CmdCursorLeft    = "cursorLeft"
	CmdJumpToBracket = "editor.action.jumpToBracket"
)

// TriggerSource tags commands triggered by this engine so the host can
// distinguish them from user-initiated ones.
const TriggerSource = "vimbridge"

// Editor is the view of the host widget the engine depends on.
// All positions cross this boundary in the host's one-based coordinates.
type Editor interface {
	// LineContent returns the text of the given one-based line.
	// Out-of-range lines yield the empty string.
	LineContent(lineNumber int) string

	// LineCount returns the number of logical lines in the buffer.
	LineCount() int

	// SetPosition moves the host cursor.
	SetPosition(p position.Host)

	// Position reports the host cursor. The second result is false when
	// the host cannot report a position.
	Position() (position.Host, bool)

	// Trigger invokes a named host command. Unknown commands are ignored
	// by the host; Trigger never fails.
	Trigger(source, command string, args any)

	// Selection returns the currently selected text, or "" when there is
	// no selection.
	Selection() string
}

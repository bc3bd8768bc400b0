// Package position defines the two coordinate systems the engine moves
// between and the translation functions connecting them.
//
// The motion engine works in zero-based {line, ch} coordinates; the host
// widget works in one-based {lineNumber, column} coordinates. Both describe
// the same semantic point. All origin arithmetic in the module lives in
// ToHost and ToBuffer; no other package may add or subtract 1 to convert
// between the two systems.
package position

import "fmt"

// Buffer is a zero-based position in the motion engine's coordinate system.
// Buffer is an immutable value type.
type Buffer struct {
	// Line is the zero-based line index.
	Line int

	// Ch is the zero-based character offset within the line.
	Ch int
}

// Host is a one-based position in the host widget's coordinate system.
// Host is an immutable value type.
type Host struct {
	// LineNumber is the one-based line number.
	LineNumber int

	// Column is the one-based column.
	Column int
}

// ToHost translates an engine position to the host widget's coordinates.
func ToHost(p Buffer) Host {
	return Host{LineNumber: p.Line + 1, Column: p.Ch + 1}
}

// ToBuffer translates a host widget position to the engine's coordinates.
func ToBuffer(p Host) Buffer {
	return Buffer{Line: p.LineNumber - 1, Ch: p.Column - 1}
}

// String returns a string representation of the position.
func (p Buffer) String() string {
	return fmt.Sprintf("Buffer(%d,%d)", p.Line, p.Ch)
}

// String returns a string representation of the position.
func (p Host) String() string {
	return fmt.Sprintf("Host(%d,%d)", p.LineNumber, p.Column)
}

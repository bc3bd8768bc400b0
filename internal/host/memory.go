package host

import (
	"strings"

	"github.com/dshills/vimbridge/internal/position"
)

// Memory is an in-memory Editor implementation. It models the host widget
// behaviors the engine relies on: display-line (soft wrap) cursor commands,
// end-of-line landing one column past the last character, and a native
// bracket jump. Tests and the demo binary drive it directly.
type Memory struct {
	lines     []string
	cursor    position.Host
	wrapWidth int
	selection string
	noCursor  bool
	triggered []string
}

// NewMemory creates a memory editor over the given logical lines.
func NewMemory(lines ...string) *Memory {
	return &Memory{
		lines:  append([]string(nil), lines...),
		cursor: position.Host{LineNumber: 1, Column: 1},
	}
}

// SetWrapWidth enables soft wrapping at the given rune width.
// A width of 0 disables wrapping.
func (m *Memory) SetWrapWidth(w int) { m.wrapWidth = w }

// SetSelection sets the text reported by Selection.
func (m *Memory) SetSelection(text string) { m.selection = text }

// SetCursorUnavailable makes Position report no cursor, simulating a host
// that cannot answer.
func (m *Memory) SetCursorUnavailable(unavailable bool) { m.noCursor = unavailable }

// Triggered returns the commands triggered so far, in order.
func (m *Memory) Triggered() []string { return m.triggered }

// Lines returns a copy of the buffer's logical lines.
func (m *Memory) Lines() []string { return append([]string(nil), m.lines...) }

// LineContent implements Editor.
func (m *Memory) LineContent(lineNumber int) string {
	if lineNumber < 1 || lineNumber > len(m.lines) {
		return ""
	}
	return m.lines[lineNumber-1]
}

// LineCount implements Editor.
func (m *Memory) LineCount() int { return len(m.lines) }

// SetPosition implements Editor. Positions are clamped to the buffer.
func (m *Memory) SetPosition(p position.Host) {
	m.cursor = m.clamp(p)
}

// Position implements Editor.
func (m *Memory) Position() (position.Host, bool) {
	if m.noCursor {
		return position.Host{}, false
	}
	return m.cursor, true
}

// Selection implements Editor.
func (m *Memory) Selection() string { return m.selection }

// Trigger implements Editor.
func (m *Memory) Trigger(source, command string, args any) {
	m.triggered = append(m.triggered, command)

	switch command {
	case CmdCursorDown:
		m.moveDisplay(1)
	case CmdCursorUp:
		m.moveDisplay(-1)
	case CmdCursorHome:
		seg := m.currentSegment()
		m.cursor.Column = seg.startCh + 1
	case CmdCursorEnd:
		seg := m.currentSegment()
		m.cursor.Column = seg.endCh + 1
	case CmdCursorLeft:
		if m.cursor.Column > 1 {
			m.cursor.Column--
		}
	case CmdJumpToBracket:
		m.jumpToBracket()
	}
}

// Insert splices text at the given position, splitting on newlines.
// Used by the demo's paste handling.
func (m *Memory) Insert(p position.Host, text string) {
	p = m.clamp(p)
	line := []rune(m.lines[p.LineNumber-1])
	at := p.Column - 1
	if at > len(line) {
		at = len(line)
	}
	head, tail := string(line[:at]), string(line[at:])

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		m.lines[p.LineNumber-1] = head + text + tail
		return
	}

	rebuilt := make([]string, 0, len(m.lines)+len(parts)-1)
	rebuilt = append(rebuilt, m.lines[:p.LineNumber-1]...)
	rebuilt = append(rebuilt, head+parts[0])
	rebuilt = append(rebuilt, parts[1:len(parts)-1]...)
	rebuilt = append(rebuilt, parts[len(parts)-1]+tail)
	rebuilt = append(rebuilt, m.lines[p.LineNumber:]...)
	m.lines = rebuilt
}

func (m *Memory) clamp(p position.Host) position.Host {
	if len(m.lines) == 0 {
		return position.Host{LineNumber: 1, Column: 1}
	}
	if p.LineNumber < 1 {
		p.LineNumber = 1
	}
	if p.LineNumber > len(m.lines) {
		p.LineNumber = len(m.lines)
	}
	if p.Column < 1 {
		p.Column = 1
	}
	maxCol := len([]rune(m.lines[p.LineNumber-1])) + 1
	if p.Column > maxCol {
		p.Column = maxCol
	}
	return p
}

// segment is one display line: a slice [startCh, endCh) of a logical line,
// in rune offsets.
type segment struct {
	line    int // one-based logical line
	startCh int
	endCh   int
}

// segments returns the display lines of the whole buffer in order.
func (m *Memory) segments() []segment {
	var segs []segment
	for i, l := range m.lines {
		runes := len([]rune(l))
		if m.wrapWidth <= 0 || runes <= m.wrapWidth {
			segs = append(segs, segment{line: i + 1, startCh: 0, endCh: runes})
			continue
		}
		for start := 0; start < runes; start += m.wrapWidth {
			end := start + m.wrapWidth
			if end > runes {
				end = runes
			}
			segs = append(segs, segment{line: i + 1, startCh: start, endCh: end})
		}
	}
	if len(segs) == 0 {
		segs = append(segs, segment{line: 1})
	}
	return segs
}

func (m *Memory) currentSegment() segment {
	segs := m.segments()
	return segs[m.segmentIndex(segs)]
}

func (m *Memory) segmentIndex(segs []segment) int {
	for i, s := range segs {
		if s.line != m.cursor.LineNumber {
			continue
		}
		ch := m.cursor.Column - 1
		if ch >= s.startCh && (ch < s.endCh || i == len(segs)-1 || segs[i+1].line != s.line) {
			return i
		}
	}
	return 0
}

// moveDisplay moves the cursor by one display line, keeping the offset
// within the segment where possible.
func (m *Memory) moveDisplay(delta int) {
	segs := m.segments()
	idx := m.segmentIndex(segs)
	cur := segs[idx]
	within := m.cursor.Column - 1 - cur.startCh

	next := idx + delta
	if next < 0 || next >= len(segs) {
		return
	}
	target := segs[next]
	width := target.endCh - target.startCh
	if within > width {
		within = width
	}
	m.cursor = position.Host{LineNumber: target.line, Column: target.startCh + within + 1}
}

var bracketPairs = map[rune]struct {
	match   rune
	forward bool
}{
	'(': {')', true},
	'[': {']', true},
	'{': {'}', true},
	')': {'(', false},
	']': {'[', false},
	'}': {'{', false},
}

// jumpToBracket moves the cursor to the bracket matching the one under it,
// scanning across lines with nesting. No bracket under the cursor, or no
// match, leaves the cursor alone.
func (m *Memory) jumpToBracket() {
	line := []rune(m.LineContent(m.cursor.LineNumber))
	ch := m.cursor.Column - 1
	if ch >= len(line) {
		return
	}
	open := line[ch]
	pair, ok := bracketPairs[open]
	if !ok {
		return
	}

	depth := 0
	ln, col := m.cursor.LineNumber, ch
	for {
		runes := []rune(m.LineContent(ln))
		for col >= 0 && col < len(runes) {
			switch runes[col] {
			case open:
				depth++
			case pair.match:
				depth--
				if depth == 0 {
					m.cursor = position.Host{LineNumber: ln, Column: col + 1}
					return
				}
			}
			if pair.forward {
				col++
			} else {
				col--
			}
		}
		if pair.forward {
			ln++
			if ln > len(m.lines) {
				return
			}
			col = 0
		} else {
			ln--
			if ln < 1 {
				return
			}
			col = len([]rune(m.LineContent(ln))) - 1
		}
	}
}

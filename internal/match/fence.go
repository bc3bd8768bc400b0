package match

import (
	"regexp"

	"github.com/dshills/vimbridge/internal/host"
	"github.com/dshills/vimbridge/internal/position"
)

// fencePattern matches a markdown code fence: optional leading whitespace
// followed by a run of three or more backticks or tildes.
var fencePattern = regexp.MustCompile("^[ \t]*(`{3,}|~{3,})")

// IsFenceLine reports whether a line opens or closes a fenced code block.
func IsFenceLine(line string) bool {
	return fencePattern.MatchString(line)
}

// lineText returns the zero-based line's content, routing the origin
// conversion through the coordinate translator.
func lineText(ed host.Editor, line int) string {
	return ed.LineContent(position.ToHost(position.Buffer{Line: line}).LineNumber)
}

// resolveFence matches the fence line at p against its partner.
//
// Whether the line is an opener or a closer is decided by parity: an odd
// count of fence lines from the buffer start through p's line inclusive
// means this fence opened a block, an even count means it closed one. The
// partner scan accepts any fence line, regardless of fence rune or run
// length; parity is recomputed on every call so intervening edits cannot
// desynchronize a cached index.
//
// Returns false when p's line is not a fence, or when no partner exists in
// the scan direction, letting the caller fall through to the next strategy.
func resolveFence(ed host.Editor, p position.Buffer) (position.Buffer, bool) {
	if !IsFenceLine(lineText(ed, p.Line)) {
		return position.Buffer{}, false
	}

	fences := 0
	for i := 0; i <= p.Line; i++ {
		if IsFenceLine(lineText(ed, i)) {
			fences++
		}
	}

	if fences%2 == 1 {
		// Opening fence: the partner is the next fence line below.
		for i := p.Line + 1; i < ed.LineCount(); i++ {
			if IsFenceLine(lineText(ed, i)) {
				return position.Buffer{Line: i, Ch: 0}, true
			}
		}
		return position.Buffer{}, false
	}

	// Closing fence: the partner is the nearest fence line above.
	for i := p.Line - 1; i >= 0; i-- {
		if IsFenceLine(lineText(ed, i)) {
			return position.Buffer{Line: i, Ch: 0}, true
		}
	}
	return position.Buffer{}, false
}

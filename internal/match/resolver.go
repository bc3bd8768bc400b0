package match

import (
	"github.com/dshills/vimbridge/internal/host"
	"github.com/dshills/vimbridge/internal/position"
)

// Resolve finds the position pairing with the delimiter at p.
//
// Strategies run in strict order, first success wins: fence lines, then
// same-line quotes, then the host's native bracket jump. The first two
// never touch the host cursor; the bracket fallback repositions it as its
// way of asking the host. When nothing matches, the input position comes
// back unchanged.
func Resolve(ed host.Editor, p position.Buffer) position.Buffer {
	if target, ok := resolveFence(ed, p); ok {
		return target
	}

	if ch, ok := resolveQuote(lineText(ed, p.Line), p.Ch); ok {
		return position.Buffer{Line: p.Line, Ch: ch}
	}

	return bracketFallback(ed, p)
}

// bracketFallback delegates to the host's jump-to-bracket command: place
// the cursor, trigger, read back. A host that cannot report a position
// afterwards yields the input unchanged; so does a jump that had no
// effect.
func bracketFallback(ed host.Editor, p position.Buffer) position.Buffer {
	ed.SetPosition(position.ToHost(p))
	ed.Trigger(host.TriggerSource, host.CmdJumpToBracket, nil)

	hp, ok := ed.Position()
	if !ok {
		return p
	}
	return position.ToBuffer(hp)
}

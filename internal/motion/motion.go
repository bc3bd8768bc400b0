// Package motion translates display-line motion intents into host-native
// cursor commands. The modal emulation only understands logical lines; the
// host widget knows how those lines wrap on screen, so each motion places
// the host cursor, triggers the equivalent native command, and reads the
// result back. A host that cannot answer leaves the position untouched.
package motion

import (
	"github.com/dshills/vimbridge/internal/host"
	"github.com/dshills/vimbridge/internal/position"
)

// Adapter runs display-line motions against a host editor.
type Adapter struct {
	ed host.Editor
}

// NewAdapter creates an adapter over the given host editor.
func NewAdapter(ed host.Editor) *Adapter {
	return &Adapter{ed: ed}
}

// ByDisplayLines moves repeat display lines down (or up when down is
// false). A repeat below 1 moves one line.
func (a *Adapter) ByDisplayLines(p position.Buffer, repeat int, down bool) position.Buffer {
	if repeat < 1 {
		repeat = 1
	}
	command := host.CmdCursorUp
	if down {
		command = host.CmdCursorDown
	}

	a.ed.SetPosition(position.ToHost(p))
	for i := 0; i < repeat; i++ {
		a.ed.Trigger(host.TriggerSource, command, nil)
	}
	return a.readBack(p)
}

// ToStartOfDisplayLine moves to the first column of the current display
// line.
func (a *Adapter) ToStartOfDisplayLine(p position.Buffer) position.Buffer {
	a.ed.SetPosition(position.ToHost(p))
	a.ed.Trigger(host.TriggerSource, host.CmdCursorHome, nil)
	return a.readBack(p)
}

// ToEndOfDisplayLine moves onto the last character of the current display
// line. The host's end-of-line command lands one column past the last
// character, so a trailing cursor-left step pulls the position back onto
// it, matching the modal convention for end-of-line motions.
func (a *Adapter) ToEndOfDisplayLine(p position.Buffer) position.Buffer {
	a.ed.SetPosition(position.ToHost(p))
	a.ed.Trigger(host.TriggerSource, host.CmdCursorEnd, nil)

	hp, ok := a.ed.Position()
	if !ok {
		return p
	}
	if hp.Column <= 1 {
		return position.ToBuffer(hp)
	}

	a.ed.Trigger(host.TriggerSource, host.CmdCursorLeft, nil)
	if adjusted, ok := a.ed.Position(); ok {
		return position.ToBuffer(adjusted)
	}
	return position.ToBuffer(position.Host{LineNumber: hp.LineNumber, Column: hp.Column - 1})
}

// readBack returns the host cursor translated to engine coordinates, or
// fallback when the host cannot report one.
func (a *Adapter) readBack(fallback position.Buffer) position.Buffer {
	hp, ok := a.ed.Position()
	if !ok {
		return fallback
	}
	return position.ToBuffer(hp)
}

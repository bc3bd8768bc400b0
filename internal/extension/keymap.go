package extension

import "github.com/dshills/vimbridge/internal/modal"

// mapKeys installs the key mappings.
//
// Display-line motions take over the g-prefixed screen-line keys. The
// ordinary paste keys are remapped to the emulation's register paste so a
// plain p never triggers a clipboard permission prompt; reading the OS
// clipboard happens only through the explicit keys from the configuration,
// whose action redirects back into the emulation's paste handling via the
// reserved internal sequences.
func (e *Extension) mapKeys() {
	eng := e.engine

	eng.MapCommand("gj", modal.KindMotion, MotionMoveByDisplayLines, nil,
		map[string]any{"forward": true})
	eng.MapCommand("gk", modal.KindMotion, MotionMoveByDisplayLines, nil,
		map[string]any{"forward": false})
	eng.MapCommand("g0", modal.KindMotion, MotionStartOfDisplayLine, nil, nil)
	eng.MapCommand("g$", modal.KindMotion, MotionEndOfDisplayLine, nil, nil)
	eng.MapCommand("%", modal.KindMotion, MotionMatchDelimiter, nil, nil)

	eng.MapCommand("y", modal.KindOperator, OperatorYankClipboard, nil, nil)

	// Ordinary paste stays register-only.
	eng.MapCommand("p", modal.KindAction, ActionPaste, map[string]any{"after": true}, nil)
	eng.MapCommand("P", modal.KindAction, ActionPaste, map[string]any{"after": false}, nil)

	// The reserved sequences reach the same register paste; the
	// clipboard action replays them after seeding the unnamed register.
	eng.MapCommand(KeyInternalPasteAfter, modal.KindAction, ActionPaste,
		map[string]any{"after": true}, nil)
	eng.MapCommand(KeyInternalPasteBefore, modal.KindAction, ActionPaste,
		map[string]any{"after": false}, nil)

	if e.cfg.Clipboard.Enabled {
		eng.MapCommand(e.cfg.Clipboard.PasteAfterKey, modal.KindAction,
			ActionPasteClipboard, map[string]any{"after": true}, nil)
		eng.MapCommand(e.cfg.Clipboard.PasteBeforeKey, modal.KindAction,
			ActionPasteClipboard, map[string]any{"after": false}, nil)
	}
}

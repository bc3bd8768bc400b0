// Package clipreg bridges the OS clipboard and the modal emulation's
// register table.
//
// Yank pushes the selection into the requested register synchronously and
// mirrors it to the OS clipboard on a detached goroutine, so register
// consumers keep working even when clipboard access is denied. Paste reads
// the clipboard, seeds the unnamed register, and replays a reserved key
// sequence so the emulation's own paste handling performs the insertion.
// Neither path lets an error escape into the emulation's dispatch loop.
package clipreg

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/dshills/vimbridge/internal/log"
	"github.com/dshills/vimbridge/internal/modal"
	"github.com/dshills/vimbridge/internal/notify"
	"github.com/dshills/vimbridge/internal/position"
)

// Provider abstracts the OS clipboard.
type Provider interface {
	// Read returns the clipboard's plain-text content.
	Read() (string, error)

	// Write replaces the clipboard's content.
	Write(text string) error
}

// SystemProvider is the real OS clipboard.
type SystemProvider struct{}

// Read implements Provider.
func (SystemProvider) Read() (string, error) { return clipboard.ReadAll() }

// Write implements Provider.
func (SystemProvider) Write(text string) error { return clipboard.WriteAll(text) }

// Bridge wires yank and paste between a clipboard provider and a register
// controller.
type Bridge struct {
	provider  Provider
	registers modal.RegisterController
	dispatch  modal.KeyDispatcher
	notifier  *notify.Notifier
	logger    *log.Logger

	// pasteAfterKey and pasteBeforeKey are the reserved internal key
	// sequences the paste action redirects through.
	pasteAfterKey  string
	pasteBeforeKey string

	writes sync.WaitGroup
}

// Options configures a Bridge.
type Options struct {
	// Provider is the clipboard backend. Defaults to SystemProvider.
	Provider Provider

	// Registers receives pushed text. Required.
	Registers modal.RegisterController

	// Dispatch replays the internal paste key sequences. Required for
	// Paste; Yank works without it.
	Dispatch modal.KeyDispatcher

	// Notifier receives user-facing clipboard failure notices. Optional.
	Notifier *notify.Notifier

	// Logger records failures. Optional.
	Logger *log.Logger

	// PasteAfterKey and PasteBeforeKey are the reserved key sequences
	// pre-mapped to the emulation's paste handling.
	PasteAfterKey  string
	PasteBeforeKey string
}

// NewBridge creates a bridge.
func NewBridge(opts Options) *Bridge {
	if opts.Provider == nil {
		opts.Provider = SystemProvider{}
	}
	return &Bridge{
		provider:       opts.Provider,
		registers:      opts.Registers,
		dispatch:       opts.Dispatch,
		notifier:       opts.Notifier,
		logger:         opts.Logger,
		pasteAfterKey:  opts.PasteAfterKey,
		pasteBeforeKey: opts.PasteBeforeKey,
	}
}

// Yank copies the selection to the OS clipboard and the requested
// register. The register push is synchronous; the clipboard write runs
// detached and reports failure only through the notifier. An empty
// selection is a complete no-op. The cursor anchor always comes back
// unchanged: yanking never moves the cursor.
func (b *Bridge) Yank(selection string, anchor position.Buffer, args modal.OperatorArgs) position.Buffer {
	if selection == "" || b.registers == nil {
		return anchor
	}

	b.registers.PushText(args.Registername, "yank", selection, args.Linewise, args.Blockwise)

	b.writes.Add(1)
	go func() {
		defer b.writes.Done()
		if err := b.provider.Write(selection); err != nil {
			b.logger.Warnf("clipboard write failed: %v", err)
			b.notifier.Publish(notify.Warn, "could not copy to system clipboard")
		}
	}()

	return anchor
}

// Paste reads the OS clipboard, seeds the unnamed register, and replays
// the reserved paste-after or paste-before key sequence. Empty clipboard
// text is a complete no-op; a read failure notifies and changes nothing.
func (b *Bridge) Paste(after bool) {
	if b.registers == nil || b.dispatch == nil {
		return
	}

	text, err := b.provider.Read()
	if err != nil {
		b.logger.Warnf("clipboard read failed: %v", err)
		b.notifier.Publish(notify.Warn, "could not read system clipboard")
		return
	}
	if text == "" {
		return
	}

	b.registers.PushText(0, "yank", text, Linewise(text), false)

	key := b.pasteBeforeKey
	if after {
		key = b.pasteAfterKey
	}
	b.dispatch.HandleKey(key)
}

// Wait blocks until all detached clipboard writes have finished. Intended
// for shutdown and tests.
func (b *Bridge) Wait() { b.writes.Wait() }

// Linewise classifies pasted text: it is line-oriented when it contains a
// newline and ends with a line terminator ("\n" or "\r\n").
func Linewise(text string) bool {
	return strings.Contains(text, "\n") && strings.HasSuffix(text, "\n")
}

// Package extension wires the engine into a host widget and its modal
// emulation: it registers the display-line motions, the delimiter-match
// motion, the clipboard yank operator and paste actions, and installs the
// key mappings. An Extension is created once by the embedding application;
// Register is idempotent, so repeated calls register nothing twice.
package extension

import (
	"errors"
	"sync"

	"github.com/dshills/vimbridge/internal/clipreg"
	"github.com/dshills/vimbridge/internal/config"
	"github.com/dshills/vimbridge/internal/host"
	"github.com/dshills/vimbridge/internal/log"
	"github.com/dshills/vimbridge/internal/match"
	"github.com/dshills/vimbridge/internal/modal"
	"github.com/dshills/vimbridge/internal/motion"
	"github.com/dshills/vimbridge/internal/notify"
	"github.com/dshills/vimbridge/internal/position"
)

// Names under which the engine registers its commands with the emulation.
const (
	MotionMoveByDisplayLines = "moveByDisplayLines"
	MotionStartOfDisplayLine = "moveToStartOfDisplayLine"
	MotionEndOfDisplayLine   = "moveToEndOfDisplayLine"
	MotionMatchDelimiter     = "matchDelimiter"
	OperatorYankClipboard    = "yankToSystemClipboard"
	ActionPasteClipboard     = "pasteFromSystemClipboard"
)

// ActionPaste is the emulation's own register paste; the engine remaps the
// ordinary paste keys to it so they never touch the OS clipboard.
const ActionPaste = "paste"

// Reserved key sequences the clipboard paste redirects through. They are
// never bound to anything else and are not user-mappable.
const (
	KeyInternalPasteAfter  = "<vb-paste-after>"
	KeyInternalPasteBefore = "<vb-paste-before>"
)

// Construction errors.
var (
	ErrNilHost   = errors.New("extension: host editor is required")
	ErrNilEngine = errors.New("extension: modal engine is required")
)

// Options configures an Extension.
type Options struct {
	// Host is the editor widget. Required.
	Host host.Editor

	// Engine is the modal emulation. Required.
	Engine modal.Engine

	// Config tunes clipboard keys, logging, and notifications. The zero
	// value is replaced by config.Default().
	Config config.Config

	// Clipboard overrides the OS clipboard backend. Defaults to the real
	// system clipboard.
	Clipboard clipreg.Provider

	// Notifier receives clipboard failure notices. When nil the
	// extension creates and owns one sized by Config.Notify.Buffer.
	Notifier *notify.Notifier

	// Logger records engine activity. Nil is silent.
	Logger *log.Logger
}

// Extension owns the engine's one-time registration state.
type Extension struct {
	host     host.Editor
	engine   modal.Engine
	cfg      config.Config
	adapter  *motion.Adapter
	bridge   *clipreg.Bridge
	notifier *notify.Notifier
	ownsNote bool
	logger   *log.Logger

	once sync.Once
}

// New creates an Extension. The emulation tables are not touched until
// Register is called.
func New(opts Options) (*Extension, error) {
	if opts.Host == nil {
		return nil, ErrNilHost
	}
	if opts.Engine == nil {
		return nil, ErrNilEngine
	}

	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}

	notifier := opts.Notifier
	ownsNote := false
	if notifier == nil {
		notifier = notify.New(notify.WithAsync(cfg.Notify.Buffer))
		ownsNote = true
	}

	ext := &Extension{
		host:     opts.Host,
		engine:   opts.Engine,
		cfg:      cfg,
		adapter:  motion.NewAdapter(opts.Host),
		notifier: notifier,
		ownsNote: ownsNote,
		logger:   opts.Logger,
	}

	ext.bridge = clipreg.NewBridge(clipreg.Options{
		Provider:       opts.Clipboard,
		Registers:      opts.Engine.Registers(),
		Dispatch:       opts.Engine,
		Notifier:       notifier,
		Logger:         opts.Logger,
		PasteAfterKey:  KeyInternalPasteAfter,
		PasteBeforeKey: KeyInternalPasteBefore,
	})

	return ext, nil
}

// Notifier returns the notifier clipboard failures are published to.
func (e *Extension) Notifier() *notify.Notifier { return e.notifier }

// Register installs all motions, operators, actions, and key mappings into
// the emulation. Only the first call does anything.
func (e *Extension) Register() {
	e.once.Do(e.register)
}

func (e *Extension) register() {
	eng := e.engine

	eng.DefineMotion(MotionMoveByDisplayLines, func(cur position.Buffer, args modal.MotionArgs) position.Buffer {
		return e.adapter.ByDisplayLines(cur, args.Repeat, args.Forward)
	})
	eng.DefineMotion(MotionStartOfDisplayLine, func(cur position.Buffer, _ modal.MotionArgs) position.Buffer {
		return e.adapter.ToStartOfDisplayLine(cur)
	})
	eng.DefineMotion(MotionEndOfDisplayLine, func(cur position.Buffer, _ modal.MotionArgs) position.Buffer {
		return e.adapter.ToEndOfDisplayLine(cur)
	})
	eng.DefineMotion(MotionMatchDelimiter, func(cur position.Buffer, _ modal.MotionArgs) position.Buffer {
		return match.Resolve(e.host, cur)
	})

	eng.DefineOperator(OperatorYankClipboard, e.bridge.Yank)

	eng.DefineAction(ActionPasteClipboard, func(args modal.ActionArgs) {
		e.bridge.Paste(args.After)
	})

	e.mapKeys()
	e.logger.Infof("extension registered")
}

// Wait blocks until detached clipboard writes finish. Call on shutdown.
func (e *Extension) Wait() { e.bridge.Wait() }

// Close waits for pending clipboard writes and shuts down the notifier if
// this extension created it.
func (e *Extension) Close() {
	e.bridge.Wait()
	if e.ownsNote {
		e.notifier.Close()
	}
}

// Package modal defines the surface this engine consumes from the host's
// modal-emulation library: motion/operator/action registration, key mapping,
// register access, and key dispatch. It also provides an in-memory Engine
// and register store used by tests and the demo binary.
package modal

import "github.com/dshills/vimbridge/internal/position"

// MotionArgs carries the arguments the emulation passes to a motion.
type MotionArgs struct {
	// Repeat is the count prefix; 0 means no count was given.
	Repeat int

	// Forward distinguishes the down/up variants of a paired motion.
	Forward bool
}

// OperatorArgs carries the arguments the emulation passes to an operator.
type OperatorArgs struct {
	// Registername is the register the operator targets. The zero rune
	// means the unnamed register.
	Registername rune

	// Linewise marks the operated range as whole lines.
	Linewise bool

	// Blockwise marks the operated range as a rectangular block.
	Blockwise bool
}

// ActionArgs carries the arguments the emulation passes to an action.
type ActionArgs struct {
	// After selects paste-after (true) versus paste-before (false).
	After bool
}

// MotionFunc computes a new cursor position. It must never panic; failure
// is expressed by returning cur unchanged.
type MotionFunc func(cur position.Buffer, args MotionArgs) position.Buffer

// OperatorFunc acts on the selected text and returns the position the
// cursor should end at.
type OperatorFunc func(selection string, anchor position.Buffer, args OperatorArgs) position.Buffer

// ActionFunc performs a self-contained command.
type ActionFunc func(args ActionArgs)

// Mapping kinds accepted by MapCommand.
const (
	KindMotion   = "motion"
	KindOperator = "operator"
	KindAction   = "action"
)

// Engine is the registration and dispatch surface of the modal-emulation
// library.
type Engine interface {
	// DefineMotion registers a named motion, replacing any previous
	// definition of the same name.
	DefineMotion(name string, fn MotionFunc)

	// DefineOperator registers a named operator.
	DefineOperator(name string, fn OperatorFunc)

	// DefineAction registers a named action.
	DefineAction(name string, fn ActionFunc)

	// MapCommand binds a key sequence to a named motion, operator, or
	// action. args are passed to the target on dispatch; extra is merged
	// into motion arguments for motion mappings.
	MapCommand(keys, kind, name string, args, extra map[string]any)

	// Registers returns the emulation's register controller.
	Registers() RegisterController

	// HandleKey feeds a key sequence into the emulation's dispatch loop
	// as if typed.
	HandleKey(keys string)
}

// KeyDispatcher is the slice of Engine needed to replay key sequences.
type KeyDispatcher interface {
	HandleKey(keys string)
}

// RegisterController is the write surface of the emulation's register
// table. The engine only ever pushes text; it never reads registers back.
type RegisterController interface {
	// PushText stores text into the named register. regType is the
	// operation that produced the text (currently always "yank").
	PushText(name rune, regType, text string, linewise, blockwise bool)
}

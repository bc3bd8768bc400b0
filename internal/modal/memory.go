package modal

import (
	"github.com/dshills/vimbridge/internal/position"
)

// Mapping is one key binding held by a MemoryEngine.
type Mapping struct {
	Keys  string
	Kind  string
	Name  string
	Args  map[string]any
	Extra map[string]any
}

// MemoryEngine is an in-memory Engine implementation. It keeps real
// definition and mapping tables and dispatches HandleKey through them, so
// tests and the demo can exercise the full registration path without the
// host's emulation library. It also counts registration calls for
// idempotency checks.
type MemoryEngine struct {
	motions   map[string]MotionFunc
	operators map[string]OperatorFunc
	actions   map[string]ActionFunc
	mappings  map[string]Mapping
	registers *RegisterStore

	// CursorFn, MoveToFn, and SelectionFn connect dispatch to the
	// embedder's cursor and selection. Nil hooks dispatch from the zero
	// position and discard movement.
	CursorFn    func() position.Buffer
	MoveToFn    func(position.Buffer)
	SelectionFn func() string

	// DefineCalls counts DefineMotion/DefineOperator/DefineAction calls.
	DefineCalls int

	// MapCalls counts MapCommand calls.
	MapCalls int

	// KeysHandled records every HandleKey sequence in order.
	KeysHandled []string
}

// NewMemoryEngine creates an empty in-memory engine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{
		motions:   make(map[string]MotionFunc),
		operators: make(map[string]OperatorFunc),
		actions:   make(map[string]ActionFunc),
		mappings:  make(map[string]Mapping),
		registers: NewRegisterStore(),
	}
}

// DefineMotion implements Engine.
func (e *MemoryEngine) DefineMotion(name string, fn MotionFunc) {
	e.DefineCalls++
	e.motions[name] = fn
}

// DefineOperator implements Engine.
func (e *MemoryEngine) DefineOperator(name string, fn OperatorFunc) {
	e.DefineCalls++
	e.operators[name] = fn
}

// DefineAction implements Engine.
func (e *MemoryEngine) DefineAction(name string, fn ActionFunc) {
	e.DefineCalls++
	e.actions[name] = fn
}

// MapCommand implements Engine.
func (e *MemoryEngine) MapCommand(keys, kind, name string, args, extra map[string]any) {
	e.MapCalls++
	e.mappings[keys] = Mapping{Keys: keys, Kind: kind, Name: name, Args: args, Extra: extra}
}

// Registers implements Engine.
func (e *MemoryEngine) Registers() RegisterController { return e.registers }

// Store returns the underlying register store for inspection.
func (e *MemoryEngine) Store() *RegisterStore { return e.registers }

// MappingFor returns the mapping bound to a key sequence.
func (e *MemoryEngine) MappingFor(keys string) (Mapping, bool) {
	m, ok := e.mappings[keys]
	return m, ok
}

// HandleKey implements Engine. The sequence is matched against the mapping
// table as a whole; unmapped sequences are recorded and dropped.
func (e *MemoryEngine) HandleKey(keys string) {
	e.KeysHandled = append(e.KeysHandled, keys)

	m, ok := e.mappings[keys]
	if !ok {
		return
	}

	switch m.Kind {
	case KindMotion:
		fn, ok := e.motions[m.Name]
		if !ok {
			return
		}
		args := MotionArgs{
			Repeat:  argInt(m.Args, "repeat", argInt(m.Extra, "repeat", 0)),
			Forward: argBool(m.Args, "forward") || argBool(m.Extra, "forward"),
		}
		cur := e.cursor()
		e.moveTo(fn(cur, args))

	case KindOperator:
		fn, ok := e.operators[m.Name]
		if !ok {
			return
		}
		args := OperatorArgs{
			Linewise:  argBool(m.Args, "linewise"),
			Blockwise: argBool(m.Args, "blockwise"),
		}
		if name, ok := m.Args["registername"].(rune); ok {
			args.Registername = name
		}
		sel := ""
		if e.SelectionFn != nil {
			sel = e.SelectionFn()
		}
		cur := e.cursor()
		e.moveTo(fn(sel, cur, args))

	case KindAction:
		fn, ok := e.actions[m.Name]
		if !ok {
			return
		}
		fn(ActionArgs{After: argBool(m.Args, "after")})
	}
}

func (e *MemoryEngine) cursor() position.Buffer {
	if e.CursorFn == nil {
		return position.Buffer{}
	}
	return e.CursorFn()
}

func (e *MemoryEngine) moveTo(p position.Buffer) {
	if e.MoveToFn != nil {
		e.MoveToFn(p)
	}
}

func argBool(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	v, _ := m[key].(bool)
	return v
}

func argInt(m map[string]any, key string, fallback int) int {
	if m == nil {
		return fallback
	}
	if v, ok := m[key].(int); ok {
		return v
	}
	return fallback
}

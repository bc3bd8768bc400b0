package modal

import (
	"sync"
	"unicode"
)

// Register is a named storage slot for yanked text.
type Register struct {
	// Name is the register character.
	Name rune

	// Content holds the register's text.
	Content string

	// Linewise indicates line-oriented content.
	Linewise bool

	// Blockwise indicates block-oriented content.
	Blockwise bool
}

// Unnamed is the default register name.
const Unnamed = '"'

// RegisterStore is an in-memory register table implementing
// RegisterController. It models the slice of the emulation's register
// behavior this engine interacts with: the unnamed register, named
// registers a-z with uppercase append, the yank register 0, and the black
// hole register.
type RegisterStore struct {
	mu        sync.RWMutex
	registers map[rune]*Register
}

// NewRegisterStore creates a register store with the default registers.
func NewRegisterStore() *RegisterStore {
	rs := &RegisterStore{registers: make(map[rune]*Register)}
	rs.registers[Unnamed] = &Register{Name: Unnamed}
	rs.registers['0'] = &Register{Name: '0'}
	for r := 'a'; r <= 'z'; r++ {
		rs.registers[r] = &Register{Name: r}
	}
	return rs
}

// PushText implements RegisterController.
//
// A zero name targets the unnamed register; yanks to it are mirrored into
// register 0. Uppercase names append to their lowercase register. The
// black hole register discards everything.
func (rs *RegisterStore) PushText(name rune, regType, text string, linewise, blockwise bool) {
	if name == '_' {
		return
	}
	if name == 0 {
		name = Unnamed
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	appendMode := false
	if unicode.IsUpper(name) {
		name = unicode.ToLower(name)
		appendMode = true
	}

	reg, ok := rs.registers[name]
	if !ok {
		return
	}

	if appendMode {
		if reg.Linewise {
			reg.Content += "\n" + text
		} else {
			reg.Content += text
		}
	} else {
		reg.Content = text
		reg.Linewise = linewise
		reg.Blockwise = blockwise
	}

	if name == Unnamed && regType == "yank" {
		if zero, ok := rs.registers['0']; ok {
			zero.Content = text
			zero.Linewise = linewise
			zero.Blockwise = blockwise
		}
	}
}

// Get returns the content of a register along with its linewise and
// blockwise flags. Uppercase names read their lowercase register.
func (rs *RegisterStore) Get(name rune) (string, bool, bool) {
	if name == 0 {
		name = Unnamed
	}
	if unicode.IsUpper(name) {
		name = unicode.ToLower(name)
	}

	rs.mu.RLock()
	defer rs.mu.RUnlock()

	reg, ok := rs.registers[name]
	if !ok {
		return "", false, false
	}
	return reg.Content, reg.Linewise, reg.Blockwise
}

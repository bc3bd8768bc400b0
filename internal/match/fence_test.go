package match

import (
	"testing"

	"github.com/dshills/vimbridge/internal/host"
	"github.com/dshills/vimbridge/internal/position"
)

func TestIsFenceLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"three backticks", "```", true},
		{"backticks with info string", "```ts", true},
		{"four backticks", "````", true},
		{"three tildes", "~~~", true},
		{"tildes with info string", "~~~python", true},
		{"indented fence", "  ```", true},
		{"tab indented fence", "\t```", true},
		{"two backticks", "``", false},
		{"inline code", "say `hi` now", false},
		{"plain text", "const value = 1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFenceLine(tt.line); got != tt.want {
				t.Errorf("IsFenceLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestResolveFenceBlock(t *testing.T) {
	ed := host.NewMemory("```ts", "const value = 1", "```")

	got := Resolve(ed, position.Buffer{Line: 0, Ch: 3})
	if want := (position.Buffer{Line: 2, Ch: 0}); got != want {
		t.Errorf("from opener: got %v, want %v", got, want)
	}

	got = Resolve(ed, position.Buffer{Line: 2, Ch: 1})
	if want := (position.Buffer{Line: 0, Ch: 0}); got != want {
		t.Errorf("from closer: got %v, want %v", got, want)
	}
}

func TestResolveFenceSymmetry(t *testing.T) {
	ed := host.NewMemory(
		"intro",
		"  ~~~",
		"code",
		"  ~~~",
		"middle",
		"```go",
		"more code",
		"```",
	)

	tests := []struct {
		name string
		from int
		want int
	}{
		{"first opener to first closer", 1, 3},
		{"first closer to first opener", 3, 1},
		{"second opener to second closer", 5, 7},
		{"second closer to second opener", 7, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(ed, position.Buffer{Line: tt.from, Ch: 2})
			if want := (position.Buffer{Line: tt.want, Ch: 0}); got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

// Parity counts any fence line regardless of rune or run length, so a
// tilde fence closes a backtick opener. Preserved source behavior.
func TestResolveFenceMixedRunes(t *testing.T) {
	ed := host.NewMemory("```", "body", "~~~~")

	got := Resolve(ed, position.Buffer{Line: 0, Ch: 0})
	if want := (position.Buffer{Line: 2, Ch: 0}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// An opener with no closer below falls through to the quote strategy,
// which pairs the backticks on the fence line itself.
func TestResolveFenceUnclosedFallsThrough(t *testing.T) {
	ed := host.NewMemory("```", "no closer here")

	got := Resolve(ed, position.Buffer{Line: 0, Ch: 0})
	if want := (position.Buffer{Line: 0, Ch: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Fence resolution must not move the host cursor.
func TestResolveFencePure(t *testing.T) {
	ed := host.NewMemory("```", "x", "```")
	Resolve(ed, position.Buffer{Line: 0, Ch: 0})

	if n := len(ed.Triggered()); n != 0 {
		t.Errorf("fence resolution triggered %d host commands", n)
	}
}

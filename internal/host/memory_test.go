package host

import (
	"testing"

	"github.com/dshills/vimbridge/internal/position"
)

func TestLineAccess(t *testing.T) {
	ed := NewMemory("first", "second")

	if got := ed.LineCount(); got != 2 {
		t.Errorf("LineCount = %d, want 2", got)
	}
	if got := ed.LineContent(1); got != "first" {
		t.Errorf("LineContent(1) = %q", got)
	}
	if got := ed.LineContent(0); got != "" {
		t.Errorf("LineContent(0) = %q, want empty", got)
	}
	if got := ed.LineContent(3); got != "" {
		t.Errorf("LineContent(3) = %q, want empty", got)
	}
}

func TestSetPositionClamps(t *testing.T) {
	ed := NewMemory("abc")

	ed.SetPosition(position.Host{LineNumber: 9, Column: 9})
	got, ok := ed.Position()
	if !ok {
		t.Fatal("position unavailable")
	}
	if want := (position.Host{LineNumber: 1, Column: 4}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCursorUnavailable(t *testing.T) {
	ed := NewMemory("abc")
	ed.SetCursorUnavailable(true)

	if _, ok := ed.Position(); ok {
		t.Error("expected no position")
	}
}

func TestCursorEndOneBeyondLastChar(t *testing.T) {
	ed := NewMemory("hello")
	ed.SetPosition(position.Host{LineNumber: 1, Column: 1})

	ed.Trigger(TriggerSource, CmdCursorEnd, nil)

	got, _ := ed.Position()
	if want := (position.Host{LineNumber: 1, Column: 6}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWrappedCursorDown(t *testing.T) {
	ed := NewMemory("abcdefghijklmno")
	ed.SetWrapWidth(5)
	ed.SetPosition(position.Host{LineNumber: 1, Column: 2})

	ed.Trigger(TriggerSource, CmdCursorDown, nil)

	got, _ := ed.Position()
	if want := (position.Host{LineNumber: 1, Column: 7}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWrappedCursorHome(t *testing.T) {
	ed := NewMemory("abcdefghijklmno")
	ed.SetWrapWidth(5)
	ed.SetPosition(position.Host{LineNumber: 1, Column: 8})

	ed.Trigger(TriggerSource, CmdCursorHome, nil)

	got, _ := ed.Position()
	if want := (position.Host{LineNumber: 1, Column: 6}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestJumpToBracketAcrossLines(t *testing.T) {
	ed := NewMemory("if ok {", "\tdo(x)", "}")
	ed.SetPosition(position.Host{LineNumber: 1, Column: 7})

	ed.Trigger(TriggerSource, CmdJumpToBracket, nil)

	got, _ := ed.Position()
	if want := (position.Host{LineNumber: 3, Column: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestJumpToBracketNested(t *testing.T) {
	ed := NewMemory("f(g(x), y)")
	ed.SetPosition(position.Host{LineNumber: 1, Column: 2})

	ed.Trigger(TriggerSource, CmdJumpToBracket, nil)

	got, _ := ed.Position()
	if want := (position.Host{LineNumber: 1, Column: 10}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestJumpToBracketNoBracket(t *testing.T) {
	ed := NewMemory("plain")
	ed.SetPosition(position.Host{LineNumber: 1, Column: 2})

	ed.Trigger(TriggerSource, CmdJumpToBracket, nil)

	got, _ := ed.Position()
	if want := (position.Host{LineNumber: 1, Column: 2}); got != want {
		t.Errorf("cursor moved: got %v, want %v", got, want)
	}
}

func TestInsertSingleLine(t *testing.T) {
	ed := NewMemory("hello world")
	ed.Insert(position.Host{LineNumber: 1, Column: 7}, "big ")

	if got := ed.LineContent(1); got != "hello big world" {
		t.Errorf("got %q", got)
	}
}

func TestInsertMultiLine(t *testing.T) {
	ed := NewMemory("one two")
	ed.Insert(position.Host{LineNumber: 1, Column: 5}, "a\nb\n")

	want := []string{"one a", "b", "two"}
	got := ed.Lines()
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

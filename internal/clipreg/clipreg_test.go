package clipreg

import (
	"errors"
	"sync"
	"testing"

	"github.com/dshills/vimbridge/internal/modal"
	"github.com/dshills/vimbridge/internal/notify"
	"github.com/dshills/vimbridge/internal/position"
)

// fakeProvider is a scriptable in-memory clipboard.
type fakeProvider struct {
	mu       sync.Mutex
	content  string
	writes   []string
	readErr  error
	writeErr error
}

func (f *fakeProvider) Read() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.content, nil
}

func (f *fakeProvider) Write(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, text)
	return nil
}

func (f *fakeProvider) written() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

// pushRecord captures one PushText call.
type pushRecord struct {
	name      rune
	regType   string
	text      string
	linewise  bool
	blockwise bool
}

type fakeRegisters struct {
	pushes []pushRecord
}

func (f *fakeRegisters) PushText(name rune, regType, text string, linewise, blockwise bool) {
	f.pushes = append(f.pushes, pushRecord{name, regType, text, linewise, blockwise})
}

type fakeDispatch struct {
	keys []string
}

func (f *fakeDispatch) HandleKey(keys string) { f.keys = append(f.keys, keys) }

func newTestBridge(p *fakeProvider, r *fakeRegisters, d *fakeDispatch, n *notify.Notifier) *Bridge {
	return NewBridge(Options{
		Provider:       p,
		Registers:      r,
		Dispatch:       d,
		Notifier:       n,
		PasteAfterKey:  "<vb-paste-after>",
		PasteBeforeKey: "<vb-paste-before>",
	})
}

func TestYankPushesRegisterAndClipboard(t *testing.T) {
	p := &fakeProvider{}
	r := &fakeRegisters{}
	b := newTestBridge(p, r, &fakeDispatch{}, nil)

	anchor := position.Buffer{Line: 2, Ch: 5}
	got := b.Yank("selected text", anchor, modal.OperatorArgs{Registername: 'a'})
	b.Wait()

	if got != anchor {
		t.Errorf("anchor moved: got %v, want %v", got, anchor)
	}
	if len(r.pushes) != 1 {
		t.Fatalf("got %d register pushes, want 1", len(r.pushes))
	}
	want := pushRecord{'a', "yank", "selected text", false, false}
	if r.pushes[0] != want {
		t.Errorf("push = %+v, want %+v", r.pushes[0], want)
	}
	if w := p.written(); len(w) != 1 || w[0] != "selected text" {
		t.Errorf("clipboard writes = %v", w)
	}
}

func TestYankEmptySelectionIsNoOp(t *testing.T) {
	p := &fakeProvider{}
	r := &fakeRegisters{}
	b := newTestBridge(p, r, &fakeDispatch{}, nil)

	anchor := position.Buffer{Line: 1, Ch: 1}
	got := b.Yank("", anchor, modal.OperatorArgs{})
	b.Wait()

	if got != anchor {
		t.Errorf("anchor moved: got %v", got)
	}
	if len(r.pushes) != 0 {
		t.Errorf("got %d register pushes, want 0", len(r.pushes))
	}
	if len(p.written()) != 0 {
		t.Errorf("clipboard written on empty selection")
	}
}

func TestYankLinewiseFlagsForwarded(t *testing.T) {
	r := &fakeRegisters{}
	b := newTestBridge(&fakeProvider{}, r, &fakeDispatch{}, nil)

	b.Yank("whole line\n", position.Buffer{}, modal.OperatorArgs{Linewise: true})
	b.Wait()

	if len(r.pushes) != 1 || !r.pushes[0].linewise {
		t.Errorf("pushes = %+v, want one linewise push", r.pushes)
	}
}

func TestYankClipboardFailureStillFillsRegister(t *testing.T) {
	p := &fakeProvider{writeErr: errors.New("permission denied")}
	r := &fakeRegisters{}
	n := notify.New()
	defer n.Close()

	var notices []notify.Notification
	n.Subscribe(func(note notify.Notification) { notices = append(notices, note) })

	b := newTestBridge(p, r, &fakeDispatch{}, n)
	b.Yank("text", position.Buffer{}, modal.OperatorArgs{})
	b.Wait()

	if len(r.pushes) != 1 {
		t.Errorf("register push missing after clipboard failure")
	}
	if len(notices) != 1 || notices[0].Level != notify.Warn {
		t.Errorf("notices = %+v, want one warning", notices)
	}
}

func TestPasteAfter(t *testing.T) {
	p := &fakeProvider{content: "line one\nline two\n"}
	r := &fakeRegisters{}
	d := &fakeDispatch{}
	b := newTestBridge(p, r, d, nil)

	b.Paste(true)

	if len(r.pushes) != 1 {
		t.Fatalf("got %d register pushes, want 1", len(r.pushes))
	}
	push := r.pushes[0]
	if push.name != 0 || !push.linewise || push.text != "line one\nline two\n" {
		t.Errorf("push = %+v", push)
	}
	if len(d.keys) != 1 || d.keys[0] != "<vb-paste-after>" {
		t.Errorf("dispatched keys = %v", d.keys)
	}
}

func TestPasteBefore(t *testing.T) {
	p := &fakeProvider{content: "word"}
	r := &fakeRegisters{}
	d := &fakeDispatch{}
	b := newTestBridge(p, r, d, nil)

	b.Paste(false)

	if len(r.pushes) != 1 || r.pushes[0].linewise {
		t.Fatalf("pushes = %+v, want one charwise push", r.pushes)
	}
	if len(d.keys) != 1 || d.keys[0] != "<vb-paste-before>" {
		t.Errorf("dispatched keys = %v", d.keys)
	}
}

func TestPasteEmptyClipboardIsNoOp(t *testing.T) {
	r := &fakeRegisters{}
	d := &fakeDispatch{}
	b := newTestBridge(&fakeProvider{}, r, d, nil)

	b.Paste(true)

	if len(r.pushes) != 0 {
		t.Errorf("register pushed on empty clipboard")
	}
	if len(d.keys) != 0 {
		t.Errorf("keys dispatched on empty clipboard")
	}
}

func TestPasteReadFailureNotifies(t *testing.T) {
	p := &fakeProvider{readErr: errors.New("permission denied")}
	r := &fakeRegisters{}
	d := &fakeDispatch{}
	n := notify.New()
	defer n.Close()

	var notices []notify.Notification
	n.Subscribe(func(note notify.Notification) { notices = append(notices, note) })

	b := newTestBridge(p, r, d, n)
	b.Paste(true)

	if len(r.pushes) != 0 || len(d.keys) != 0 {
		t.Errorf("state changed on read failure: pushes=%v keys=%v", r.pushes, d.keys)
	}
	if len(notices) != 1 || notices[0].Level != notify.Warn {
		t.Errorf("notices = %+v, want one warning", notices)
	}
}

func TestLinewise(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"multi line with trailing newline", "line one\nline two\n", true},
		{"multi line with crlf terminator", "line one\r\nline two\r\n", true},
		{"single line", "word", false},
		{"single trailing newline", "word\n", true},
		{"embedded newline without terminator", "line one\nline two", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Linewise(tt.text); got != tt.want {
				t.Errorf("Linewise(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

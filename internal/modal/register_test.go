package modal

import "testing"

func TestPushTextNamed(t *testing.T) {
	rs := NewRegisterStore()
	rs.PushText('a', "yank", "selected text", false, false)

	content, linewise, blockwise := rs.Get('a')
	if content != "selected text" {
		t.Errorf("content = %q, want %q", content, "selected text")
	}
	if linewise || blockwise {
		t.Errorf("flags = %v/%v, want false/false", linewise, blockwise)
	}
}

func TestPushTextZeroNameTargetsUnnamed(t *testing.T) {
	rs := NewRegisterStore()
	rs.PushText(0, "yank", "hello", true, false)

	content, linewise, _ := rs.Get(Unnamed)
	if content != "hello" || !linewise {
		t.Errorf("unnamed = %q/%v, want %q/true", content, linewise, "hello")
	}

	// Yanks to the unnamed register mirror into register 0.
	content, linewise, _ = rs.Get('0')
	if content != "hello" || !linewise {
		t.Errorf("register 0 = %q/%v, want %q/true", content, linewise, "hello")
	}
}

func TestPushTextUppercaseAppends(t *testing.T) {
	rs := NewRegisterStore()
	rs.PushText('b', "yank", "one", false, false)
	rs.PushText('B', "yank", "two", false, false)

	content, _, _ := rs.Get('b')
	if content != "onetwo" {
		t.Errorf("content = %q, want %q", content, "onetwo")
	}
}

func TestPushTextUppercaseAppendsLinewise(t *testing.T) {
	rs := NewRegisterStore()
	rs.PushText('c', "yank", "one", true, false)
	rs.PushText('C', "yank", "two", false, false)

	content, linewise, _ := rs.Get('c')
	if content != "one\ntwo" {
		t.Errorf("content = %q, want %q", content, "one\ntwo")
	}
	if !linewise {
		t.Error("append should keep the register linewise")
	}
}

func TestPushTextBlackHole(t *testing.T) {
	rs := NewRegisterStore()
	rs.PushText('_', "yank", "gone", false, false)

	if content, _, _ := rs.Get('_'); content != "" {
		t.Errorf("black hole content = %q, want empty", content)
	}
	if content, _, _ := rs.Get(Unnamed); content != "" {
		t.Errorf("unnamed content = %q, want empty", content)
	}
}

func TestGetUppercaseReadsLowercase(t *testing.T) {
	rs := NewRegisterStore()
	rs.PushText('d', "yank", "text", false, false)

	if content, _, _ := rs.Get('D'); content != "text" {
		t.Errorf("Get('D') = %q, want %q", content, "text")
	}
}

func TestGetUnknownRegister(t *testing.T) {
	rs := NewRegisterStore()
	if content, lw, bw := rs.Get('!'); content != "" || lw || bw {
		t.Errorf("Get('!') = %q/%v/%v, want empty", content, lw, bw)
	}
}

// Package main is an interactive demo for the vimbridge engine. It hosts
// an in-memory editor widget on a tcell screen, wires the in-memory modal
// engine to it, and registers the extension so the display-line motions,
// delimiter matching, and clipboard bridge can be exercised by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimbridge/internal/config"
	"github.com/dshills/vimbridge/internal/extension"
	"github.com/dshills/vimbridge/internal/host"
	"github.com/dshills/vimbridge/internal/log"
	"github.com/dshills/vimbridge/internal/modal"
	"github.com/dshills/vimbridge/internal/notify"
	"github.com/dshills/vimbridge/internal/position"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

var sampleBuffer = []string{
	"# vimbridge demo",
	"",
	"Motions: gj gk g0 g$ move by display line, % matches delimiters.",
	"Operators: v to select, y yanks selection to the system clipboard.",
	"Paste: p/P from the register, Ctrl-V/Ctrl-B from the clipboard.",
	"",
	"```go",
	"func greet(name string) string {",
	"	return fmt.Sprintf(\"hello, %s\", name)",
	"}",
	"```",
	"",
	"She said “try the fences above” and 'the quotes in here' too.",
	"This long line wraps so the display-line motions have something to do when the window is narrow.",
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a vimbridge TOML config file")
	logPath := flag.String("log", "", "write engine logs to this file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("vimbridge-demo %s\n", version)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var logger *log.Logger
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = log.New(log.ParseLevel(cfg.Logging.Level), f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	d := newDemo(screen, cfg, logger)
	if err := d.setup(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer d.ext.Close()

	d.loop()
	return 0
}

// demo ties the screen, the memory host, and the modal engine together.
type demo struct {
	screen tcell.Screen
	cfg    config.Config
	logger *log.Logger

	ed      *host.Memory
	eng     *modal.MemoryEngine
	ext     *extension.Extension
	pending string
	status  string
	visual  bool
	anchor  position.Host
}

func newDemo(screen tcell.Screen, cfg config.Config, logger *log.Logger) *demo {
	return &demo{screen: screen, cfg: cfg, logger: logger}
}

func (d *demo) setup() error {
	width, _ := d.screen.Size()
	d.ed = host.NewMemory(sampleBuffer...)
	d.ed.SetWrapWidth(width)

	d.eng = modal.NewMemoryEngine()
	d.eng.CursorFn = func() position.Buffer {
		hp, _ := d.ed.Position()
		return position.ToBuffer(hp)
	}
	d.eng.MoveToFn = func(p position.Buffer) {
		d.ed.SetPosition(position.ToHost(p))
	}
	d.eng.SelectionFn = d.ed.Selection

	// The emulation's own register paste: insert from the unnamed
	// register at the cursor.
	d.eng.DefineAction(extension.ActionPaste, func(args modal.ActionArgs) {
		text, linewise, _ := d.eng.Store().Get(modal.Unnamed)
		if text == "" {
			return
		}
		hp, _ := d.ed.Position()
		if linewise {
			line := hp.LineNumber
			if args.After {
				line++
			}
			d.ed.Insert(position.Host{LineNumber: line, Column: 1}, text)
		} else {
			if args.After {
				hp.Column++
			}
			d.ed.Insert(hp, text)
		}
	})

	d.defineBasicMotions()

	ext, err := extension.New(extension.Options{
		Host:   d.ed,
		Engine: d.eng,
		Config: d.cfg,
		Logger: d.logger,
	})
	if err != nil {
		return err
	}
	d.ext = ext
	ext.Register()

	ext.Notifier().Subscribe(func(n notify.Notification) {
		d.status = fmt.Sprintf("[%s] %s", n.Level, n.Message)
	})
	return nil
}

// defineBasicMotions supplies the logical-line movement the emulation
// would normally provide, so the demo is navigable alongside the
// extension's display-line motions.
func (d *demo) defineBasicMotions() {
	lineLen := func(line int) int {
		return len([]rune(d.ed.LineContent(position.ToHost(position.Buffer{Line: line}).LineNumber)))
	}
	clamp := func(p position.Buffer) position.Buffer {
		if p.Line < 0 {
			p.Line = 0
		}
		if last := d.ed.LineCount() - 1; p.Line > last {
			p.Line = last
		}
		if p.Ch < 0 {
			p.Ch = 0
		}
		if end := lineLen(p.Line); p.Ch > end {
			p.Ch = end
		}
		return p
	}

	d.eng.DefineMotion("left", func(p position.Buffer, _ modal.MotionArgs) position.Buffer {
		return clamp(position.Buffer{Line: p.Line, Ch: p.Ch - 1})
	})
	d.eng.DefineMotion("right", func(p position.Buffer, _ modal.MotionArgs) position.Buffer {
		return clamp(position.Buffer{Line: p.Line, Ch: p.Ch + 1})
	})
	d.eng.DefineMotion("lineDown", func(p position.Buffer, _ modal.MotionArgs) position.Buffer {
		return clamp(position.Buffer{Line: p.Line + 1, Ch: p.Ch})
	})
	d.eng.DefineMotion("lineUp", func(p position.Buffer, _ modal.MotionArgs) position.Buffer {
		return clamp(position.Buffer{Line: p.Line - 1, Ch: p.Ch})
	})

	d.eng.MapCommand("h", modal.KindMotion, "left", nil, nil)
	d.eng.MapCommand("l", modal.KindMotion, "right", nil, nil)
	d.eng.MapCommand("j", modal.KindMotion, "lineDown", nil, nil)
	d.eng.MapCommand("k", modal.KindMotion, "lineUp", nil, nil)
}

func (d *demo) loop() {
	for {
		d.draw()
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			width, _ := d.screen.Size()
			d.ed.SetWrapWidth(width)
			d.screen.Sync()
		case *tcell.EventKey:
			if d.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey feeds keys into the engine. Returns true to quit.
func (d *demo) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		d.pending = ""
		d.visual = false
		d.ed.SetSelection("")
		return false
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyCtrlV:
		d.eng.HandleKey(d.cfg.Clipboard.PasteAfterKey)
		return false
	case tcell.KeyCtrlB:
		d.eng.HandleKey(d.cfg.Clipboard.PasteBeforeKey)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	switch {
	case d.pending == "" && r == 'q':
		return true
	case d.pending == "" && r == 'v':
		hp, _ := d.ed.Position()
		d.visual = true
		d.anchor = hp
		return false
	case d.pending == "" && r == 'g':
		d.pending = "g"
		return false
	}

	keys := d.pending + string(r)
	d.pending = ""
	if d.visual {
		d.updateSelection()
	}
	d.eng.HandleKey(keys)
	if d.visual && keys == "y" {
		d.visual = false
		d.ed.SetSelection("")
	}
	return false
}

// updateSelection mirrors the visual range into the host selection so the
// yank operator sees it. Single-line ranges only; enough for the demo.
func (d *demo) updateSelection() {
	hp, _ := d.ed.Position()
	if hp.LineNumber != d.anchor.LineNumber {
		return
	}
	line := []rune(d.ed.LineContent(hp.LineNumber))
	from, to := d.anchor.Column-1, hp.Column
	if from > to {
		from, to = to-1, from+1
	}
	if from < 0 {
		from = 0
	}
	if to > len(line) {
		to = len(line)
	}
	d.ed.SetSelection(string(line[from:to]))
}

func (d *demo) draw() {
	d.screen.Clear()
	width, height := d.screen.Size()
	if width < 1 {
		return
	}

	style := tcell.StyleDefault
	row := 0
	cursorRow, cursorCol := 0, 0
	hp, _ := d.ed.Position()

	for ln := 1; ln <= d.ed.LineCount() && row < height-1; ln++ {
		line := []rune(d.ed.LineContent(ln))
		segs := 1
		if len(line) > 0 {
			segs = (len(line) + width - 1) / width
		}
		for s := 0; s < segs && row < height-1; s++ {
			start := s * width
			end := start + width
			if end > len(line) {
				end = len(line)
			}
			for i, r := range line[start:end] {
				d.screen.SetContent(i, row, r, nil, style)
			}
			if ln == hp.LineNumber && hp.Column-1 >= start && (hp.Column-1 < end || s == segs-1) {
				cursorRow, cursorCol = row, hp.Column-1-start
			}
			row++
		}
	}

	status := d.status
	if d.visual {
		status = "-- VISUAL -- " + status
	}
	for i, r := range []rune(status) {
		if i >= width {
			break
		}
		d.screen.SetContent(i, height-1, r, nil, style.Reverse(true))
	}

	d.screen.ShowCursor(cursorCol, cursorRow)
	d.screen.Show()
}

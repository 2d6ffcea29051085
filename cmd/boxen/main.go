// Copyright 2026 The Boxes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command boxen is the external collaborator spec.md excludes from
// the core: it parses the command line, opens the requested file and
// history, sets the terminal to raw mode, wires SIGWINCH and stdin up
// to an InputDecoder, and runs the editor.Editor loop until quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/term"
	"github.com/xyproto/env/v2"
	"golang.org/x/sys/unix"

	"github.com/onefang/boxes"
	"github.com/onefang/boxes/charset"
	"github.com/onefang/boxes/content"
	"github.com/onefang/boxes/context"
	"github.com/onefang/boxes/context/contexts"
	"github.com/onefang/boxes/render"
	"github.com/onefang/boxes/view"

	"github.com/onefang/boxes/editor"
)

const historyFile = ".boxes.history"

func main() {
	mode := flag.String("mode", "vi", "editor emulation: vi, emacs, joe, nano, mcedit, less, more")
	flag.StringVar(mode, "m", "vi", "shorthand for -mode")
	stick := flag.Bool("stickchars", false, "use plain ASCII border characters instead of the locale's palette")
	flag.BoolVar(stick, "a", false, "shorthand for -stickchars")
	width := flag.Int("w", 0, "terminal width override, 0 to auto-detect")
	height := flag.Int("h", 0, "terminal height override, 0 to auto-detect")
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: boxen [-m mode] [-a] [-w width] [-h height] file")
		os.Exit(1)
	}

	charset.RegisterCommon()

	w, h := *width, *height
	if w == 0 || h == 0 {
		dw, dh, err := termSize()
		if err != nil {
			log.Fatalf("boxen: could not determine terminal size: %v", err)
		}
		if w == 0 {
			w = dw
		}
		if h == 0 {
			h = dh
		}
	}

	ctx := contextFor(*mode)

	c, err := content.LoadFile(path)
	if err != nil {
		log.Fatalf("boxen: %v", err)
	}
	if *mode == "less" || *mode == "more" {
		c.ReadOnly = true
	}
	v := view.New(c)

	historyContent, err := content.LoadFile(historyPath())
	if err != nil {
		log.Fatalf("boxen: loading history: %v", err)
	}
	if historyContent.Count() == 0 {
		historyContent.AddLine(nil, nil)
	}

	paletteIndex := 1
	if *stick {
		paletteIndex = 0
	}
	renderer := render.New(os.Stdout, paletteIndex)

	ed := editor.New(ctx, v, w, h, historyContent, renderer)
	for _, line := range linesOf(historyContent) {
		ed.PushHistory(line)
	}

	tty, err := rawMode()
	if err != nil {
		log.Fatalf("boxen: %v", err)
	}
	defer tty.Restore()
	defer tty.Close()

	evch := make(chan boxen.Event, 64)
	decoder := boxen.NewInputDecoder(tty, evch)
	decoder.SetSize(w, h)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	go func() {
		for range sig {
			decoder.RequestResize()
		}
	}()

	go readLoop(tty, decoder)
	go tickLoop(decoder)

	ed.Redraw()
	for {
		err := ed.Run(evch)
		if err == nil {
			break
		}
		log.Printf("boxen: %v", err)
	}

	if !c.ReadOnly {
		if err := c.SaveFile(); err != nil {
			log.Printf("boxen: saving %s: %v", path, err)
		}
	}
	saveHistory(ed.History())

	fmt.Print("\n")
}

func contextFor(mode string) *context.Context {
	switch mode {
	case "emacs":
		return contexts.Emacs()
	case "joe":
		return contexts.Joe()
	case "less":
		return contexts.Less()
	case "mcedit":
		return contexts.Mcedit()
	case "more":
		return contexts.More()
	case "nano":
		return contexts.Nano()
	default:
		return contexts.Vi()
	}
}

func historyPath() string {
	if home := env.Str("HOME"); home != "" {
		return home + "/" + historyFile
	}
	return historyFile
}

func linesOf(c *content.Content) []string {
	var out []string
	for l := c.First(); l != nil; l = l.Next(c) {
		if len(l.Text()) > 0 {
			out = append(out, string(l.Text()))
		}
	}
	return out
}

func saveHistory(history []string) {
	c := content.New("history")
	for _, line := range history {
		c.AddLine(nil, []byte(line))
	}
	c.Path = historyPath()
	if err := c.SaveFile(); err != nil {
		log.Printf("boxen: saving history: %v", err)
	}
}

// rawMode puts the controlling terminal into raw (cbreak, no echo)
// mode, the termios-equivalent collaborator spec.md's core assumes is
// already in place.
func rawMode() (*term.Term, error) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("opening tty: %w", err)
	}
	return t, nil
}

// termSize queries the controlling terminal's size via TIOCGWINSZ,
// falling back to the $COLUMNS/$LINES environment variables the way
// a shell exports them for non-interactive descriptors.
func termSize() (w, h int, err error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 && ws.Row > 0 {
		return int(ws.Col), int(ws.Row), nil
	}
	if cols := env.Int("COLUMNS", 0); cols > 0 {
		if lines := env.Int("LINES", 0); lines > 0 {
			return cols, lines, nil
		}
	}
	return 0, 0, fmt.Errorf("no TTY and no $COLUMNS/$LINES: %w", err)
}

// readLoop feeds raw bytes from tty into decoder until EOF, the
// decoder's single input-reading primitive (§ 5).
func readLoop(tty *term.Term, decoder *boxen.InputDecoder) {
	buf := make([]byte, 256)
	for {
		n, err := tty.Read(buf)
		if n > 0 {
			decoder.Feed(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// tickLoop calls Tick every PollTimeout, resolving a lone pending
// Escape and transmitting any pending resize probe (§ 4.2, § 4.3).
func tickLoop(decoder *boxen.InputDecoder) {
	for {
		<-time.After(boxen.PollTimeout)
		decoder.Tick()
	}
}

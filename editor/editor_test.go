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

package editor

import (
	"bytes"
	"testing"

	"github.com/onefang/boxes"
	"github.com/onefang/boxes/context/contexts"
	"github.com/onefang/boxes/content"
	"github.com/onefang/boxes/render"
	"github.com/onefang/boxes/view"
)

func newTestEditor(lines ...string) *Editor {
	c := content.New("test")
	for _, l := range lines {
		c.AddLine(nil, []byte(l))
	}
	v := view.New(c)

	cl := content.New("command")
	cl.AddLine(nil, []byte(""))

	r := render.New(&bytes.Buffer{}, 0)
	return New(contexts.Nano(), v, 40, 10, cl, r)
}

func TestNewReservesBottomRowForCommandLine(t *testing.T) {
	e := newTestEditor("hello")
	if e.rootBox.H != 9 {
		t.Fatalf("rootBox.H = %d, want 9 (10 - 1 for the command line)", e.rootBox.H)
	}
	if e.commandLine.Y != 9 {
		t.Fatalf("commandLine.Y = %d, want 9", e.commandLine.Y)
	}
}

func TestViewReturnsCurrentBoxLeaf(t *testing.T) {
	e := newTestEditor("hello")
	if e.View() != e.rootBox.View {
		t.Fatal("View() did not return the root box's leaf")
	}
}

func TestNewStartsInFirstRegisteredMode(t *testing.T) {
	e := newTestEditor("hello")
	if e.CurrentModeName() != "normal" {
		t.Fatalf("initial mode = %q, want %q", e.CurrentModeName(), "normal")
	}
}

func TestQuitStopsTheLoop(t *testing.T) {
	e := newTestEditor("hello")
	e.Quit()
	if e.Running() {
		t.Fatal("expected Running() to be false after Quit")
	}
}

func TestHandleCsiAcceptsResizeReportAndRejectsOthers(t *testing.T) {
	e := newTestEditor("hello")

	notResize := boxen.NewCsiEvent("R", []int{3, 3})
	if e.HandleCsi(notResize) {
		t.Fatal("params <= 8 should not be accepted as a resize report")
	}

	resize := boxen.NewCsiEvent("R", []int{24, 80})
	if !e.HandleCsi(resize) {
		t.Fatal("expected a 2-param, >8 CSI 'R' to be accepted as a resize report")
	}
	if e.rootBox.W != 80 || e.rootBox.H != 23 {
		t.Fatalf("rootBox = %dx%d, want 80x23", e.rootBox.W, e.rootBox.H)
	}
}

func TestRunDrainsEventsUntilQuit(t *testing.T) {
	e := newTestEditor("hello")
	evch := make(chan boxen.Event, 4)
	evch <- boxen.NewKeysEvent("^X", true) // nano: quit
	close(evch)

	if err := e.Run(evch); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.Running() {
		t.Fatal("expected the loop to have quit")
	}
}

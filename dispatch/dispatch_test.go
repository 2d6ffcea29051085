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

package dispatch

import (
	"testing"

	"github.com/onefang/boxes"
	"github.com/onefang/boxes/boxtree"
	"github.com/onefang/boxes/content"
	"github.com/onefang/boxes/context/contexts"
	"github.com/onefang/boxes/view"
)

// fakeEnv is a minimal context.Env for exercising the Dispatcher
// without pulling in package editor (which would be a layering
// inversion: editor depends on dispatch, not the other way round).
type fakeEnv struct {
	view        *view.View
	commandLine *view.View
	commandMode bool
	box         *boxtree.Box
	root        *boxtree.Box
	modeName    string
	overwrite   bool
	history     []string
	quit        bool
}

func newFakeEnv(lines ...string) *fakeEnv {
	c := content.New("test")
	for _, l := range lines {
		c.AddLine(nil, []byte(l))
	}
	v := view.New(c)
	v.SetBox(0, 0, 40, 10)

	clc := content.New("command")
	clc.AddLine(nil, []byte(""))
	cl := view.New(clc)

	root := boxtree.NewRoot(v, 40, 10)
	return &fakeEnv{
		view:        v,
		commandLine: cl,
		box:         root,
		root:        root,
		modeName:    "normal",
	}
}

func (e *fakeEnv) View() *view.View            { return e.view }
func (e *fakeEnv) SetView(v *view.View)        { e.view = v }
func (e *fakeEnv) CommandLine() *view.View     { return e.commandLine }
func (e *fakeEnv) SetCommandMode(on bool)      { e.commandMode = on }
func (e *fakeEnv) InCommandMode() bool         { return e.commandMode }
func (e *fakeEnv) Box() *boxtree.Box           { return e.box }
func (e *fakeEnv) SetBox(b *boxtree.Box)       { e.box = b }
func (e *fakeEnv) RootBox() *boxtree.Box       { return e.root }
func (e *fakeEnv) SwitchMode(name string)      { e.modeName = name }
func (e *fakeEnv) CurrentModeName() string     { return e.modeName }
func (e *fakeEnv) Overwrite() bool             { return e.overwrite }
func (e *fakeEnv) SetOverwrite(on bool)        { e.overwrite = on }
func (e *fakeEnv) History() []string           { return e.history }
func (e *fakeEnv) PushHistory(line string)     { e.history = append(e.history, line) }
func (e *fakeEnv) Quit()                       { e.quit = true }

func keys(payload string) *boxen.KeysEvent {
	return boxen.NewKeysEvent(payload, payload != "")
}

func TestLiteralBytesSpliceIntoLine(t *testing.T) {
	env := newFakeEnv("ac")
	env.view.IX = 1 // between 'a' and 'c'
	d := New(contexts.Nano())

	if err := d.Handle(env, keys("b")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := string(env.view.Line.Text()); got != "abc" {
		t.Fatalf("line = %q, want %q", got, "abc")
	}
	if !env.view.Content.Modified {
		t.Fatal("expected Content.Modified to be set")
	}
}

func TestOverwriteModeReplacesInPlace(t *testing.T) {
	env := newFakeEnv("abc")
	env.overwrite = true
	d := New(contexts.Nano())

	if err := d.Handle(env, keys("X")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := string(env.view.Line.Text()); got != "Xbc" {
		t.Fatalf("line = %q, want %q", got, "Xbc")
	}
}

func TestNamedKeyInvokesBoundCommand(t *testing.T) {
	env := newFakeEnv("line one", "line two")
	d := New(contexts.Nano())

	startCY := env.view.CY
	if err := d.Handle(env, keys("Down")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if env.view.CY != startCY+1 {
		t.Fatalf("CY = %d, want %d", env.view.CY, startCY+1)
	}
}

func TestReadOnlyContentRejectsLiteralInsert(t *testing.T) {
	env := newFakeEnv("abc")
	env.view.Content.ReadOnly = true
	d := New(contexts.Less())

	err := d.Handle(env, keys("z"))
	if err != boxen.ErrReadOnly {
		t.Fatalf("err = %v, want ErrReadOnly", err)
	}
}

func TestMultiByteChordAccumulatesAcrossBytes(t *testing.T) {
	env := newFakeEnv("abc")
	d := New(contexts.Emacs())

	// Emacs binds "^X^C" to quit; feed it as two control bytes within
	// one KeysEvent payload, exactly as the decoder would chain them.
	if err := d.Handle(env, keys("^X^C")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !env.quit {
		t.Fatal("expected quit to be invoked")
	}
}

func TestCommandModeTargetsCommandLine(t *testing.T) {
	env := newFakeEnv("abc")
	env.commandMode = true
	d := New(contexts.Vi())
	env.modeName = "ex"

	if err := d.Handle(env, keys("z")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := string(env.commandLine.Line.Text()); got != "z" {
		t.Fatalf("command line = %q, want %q", got, "z")
	}
	if string(env.view.Line.Text()) != "abc" {
		t.Fatal("literal byte leaked into the box view instead of the command line")
	}
}

func TestUnknownModeFallsBackToLiteralInsert(t *testing.T) {
	env := newFakeEnv("ac")
	env.view.IX = 1
	env.modeName = "nonexistent"
	d := New(contexts.Nano())

	if err := d.Handle(env, keys("b")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := string(env.view.Line.Text()); got != "abc" {
		t.Fatalf("line = %q, want %q", got, "abc")
	}
}

func TestBackSpaceCharWithinLine(t *testing.T) {
	env := newFakeEnv("abc")
	env.view.MoveCursorAbsolute(2, 0, 0, 0) // cursor between 'b' and 'c'
	d := New(contexts.Nano())

	if err := d.Handle(env, keys("BS")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := string(env.view.Line.Text()); got != "ac" {
		t.Fatalf("line = %q, want %q", got, "ac")
	}
	if env.view.CX != 1 {
		t.Fatalf("CX = %d, want 1", env.view.CX)
	}
}

func TestBackSpaceCharAtStartOfLineJoinsPreviousLine(t *testing.T) {
	env := newFakeEnv("abc", "def")
	env.view.MoveCursorAbsolute(0, 1, 0, 0) // cursor at column 0 of "def"
	d := New(contexts.Nano())

	if err := d.Handle(env, keys("BS")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := string(env.view.Line.Text()); got != "abcdef" {
		t.Fatalf("line = %q, want %q", got, "abcdef")
	}
	if env.view.CY != 0 {
		t.Fatalf("CY = %d, want 0 (joined onto the previous line's row)", env.view.CY)
	}
	if env.view.CX != 3 {
		t.Fatalf("CX = %d, want 3 (the join point)", env.view.CX)
	}
	if env.view.Content.Count() != 1 {
		t.Fatalf("Content.Count() = %d, want 1 (the second line was freed)", env.view.Content.Count())
	}
}

func TestBackSpaceCharAtStartOfContentIsNoop(t *testing.T) {
	env := newFakeEnv("abc")
	d := New(contexts.Nano())

	if err := d.Handle(env, keys("BS")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := string(env.view.Line.Text()); got != "abc" {
		t.Fatalf("line = %q, want %q (no previous line to join)", got, "abc")
	}
}

func TestNonKeysEventIsIgnored(t *testing.T) {
	env := newFakeEnv("abc")
	d := New(contexts.Nano())

	if err := d.Handle(env, boxen.NewTimerEvent()); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := string(env.view.Line.Text()); got != "abc" {
		t.Fatalf("line mutated by a TimerEvent: %q", got)
	}
}

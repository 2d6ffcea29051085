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

// Package editor holds the single-threaded, process-wide state the
// rest of the module operates on: the root Box, which leaf currently
// has focus, the command line's own View, and the commandMode/
// overwriteMode/stillRunning flags — plus the main loop that wires the
// InputDecoder, Dispatcher, and Renderer together, and the
// ResizeCoordinator that turns a SIGWINCH-driven cursor-position probe
// into a relayout.
package editor

import (
	"github.com/onefang/boxes"
	"github.com/onefang/boxes/boxtree"
	"github.com/onefang/boxes/content"
	"github.com/onefang/boxes/context"
	"github.com/onefang/boxes/dispatch"
	"github.com/onefang/boxes/render"
	"github.com/onefang/boxes/view"
)

// Editor is the process-wide state described in § 3's "process-wide
// state" note. It satisfies context.Env, letting package context's
// built-in commands operate on it without context importing editor.
type Editor struct {
	Ctx *context.Context

	rootBox    *boxtree.Box
	currentBox *boxtree.Box

	commandLine *view.View
	history     []string

	commandMode  bool
	overwrite    bool
	stillRunning bool
	modeName     string

	dispatcher *dispatch.Dispatcher
	renderer   *render.Renderer
}

// New creates an Editor with rootView filling a W×(H-1) root box (the
// last row is reserved for the command line, matching the original's
// addBox(..., H - 1) call) and a command-line view over commandLineContent.
func New(ctx *context.Context, rootView *view.View, w, h int, commandLineContent *content.Content, renderer *render.Renderer) *Editor {
	root := boxtree.NewRoot(rootView, w, h-1)
	boxtree.CalcBoxes(root)

	cl := view.New(commandLineContent)
	cl.SetBox(0, h-1, w, 1)
	cl.MoveCursorAbsolute(0, commandLineContent.Count(), 0, 0)

	e := &Editor{
		Ctx:          ctx,
		rootBox:      root,
		currentBox:   root,
		commandLine:  cl,
		stillRunning: true,
		renderer:     renderer,
	}
	if names := ctx.ModeNames(); len(names) > 0 {
		e.modeName = names[0]
	}
	e.dispatcher = dispatch.New(ctx)
	return e
}

// Env implementation.

func (e *Editor) View() *view.View { return e.currentBox.View.(*view.View) }

func (e *Editor) SetView(v *view.View) { e.currentBox.View = v }

func (e *Editor) CommandLine() *view.View { return e.commandLine }

func (e *Editor) SetCommandMode(on bool) { e.commandMode = on }

func (e *Editor) InCommandMode() bool { return e.commandMode }

func (e *Editor) Box() *boxtree.Box { return e.currentBox }

func (e *Editor) SetBox(b *boxtree.Box) { e.currentBox = b }

func (e *Editor) RootBox() *boxtree.Box { return e.rootBox }

func (e *Editor) SwitchMode(name string) {
	v := e.View()
	v.Mode = modeOrdinal(e.Ctx, name)
	e.modeName = name
}

func (e *Editor) CurrentModeName() string { return e.modeName }

func (e *Editor) Overwrite() bool { return e.overwrite }

func (e *Editor) SetOverwrite(on bool) { e.overwrite = on }

func (e *Editor) History() []string { return e.history }

func (e *Editor) PushHistory(line string) { e.history = append(e.history, line) }

func (e *Editor) Quit() { e.stillRunning = false }

// Running reports whether the main loop should keep iterating.
func (e *Editor) Running() bool { return e.stillRunning }

// modeOrdinal finds name's registration-order index within ctx, or 0
// if absent; View.Mode is kept as a plain index the way the original
// view->mode field is, while Editor itself tracks the authoritative
// name.
func modeOrdinal(ctx *context.Context, name string) int {
	for i, n := range ctx.ModeNames() {
		if n == name {
			return i
		}
	}
	return 0
}

// Dispatch feeds one decoded event through the Dispatcher.
func (e *Editor) Dispatch(ev boxen.Event) error {
	return e.dispatcher.Handle(e, ev)
}

// Redraw draws the whole box tree to the Editor's Renderer.
func (e *Editor) Redraw() {
	if e.renderer == nil {
		return
	}
	e.renderer.DrawBoxes(e.rootBox, e.currentBox)
}

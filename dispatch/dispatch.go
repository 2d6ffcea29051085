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

// Package dispatch turns decoded key events into command invocations:
// it accumulates a key sequence against the active Context's current
// Mode, resolves it to a bound command on an exact match, and falls
// back to splicing untranslated bytes into the target view as literal
// text.
package dispatch

import (
	"github.com/onefang/boxes"
	"github.com/onefang/boxes/content"
	"github.com/onefang/boxes/context"
	"github.com/onefang/boxes/view"
)

// Dispatcher holds the one piece of state that must survive across
// events: a key sequence still being accumulated because it is a
// strict prefix of some longer binding (e.g. the "^X" of "^X^C").
type Dispatcher struct {
	Context *context.Context
	pending string
}

// New creates a Dispatcher bound to ctx. SetContext may be used later
// to switch emulations (e.g. loading a file that prefers a different
// default context).
func New(ctx *context.Context) *Dispatcher {
	return &Dispatcher{Context: ctx}
}

// SetContext switches the active context and discards any
// in-progress sequence, since it belongs to the old context's modes.
func (d *Dispatcher) SetContext(ctx *context.Context) {
	d.Context = ctx
	d.pending = ""
}

// Handle processes one decoded event against env. Only KeysEvent
// carries dispatchable input; every other event type (CsiEvent,
// MouseEvent, TimerEvent, EventResize) is the concern of other
// collaborators (the ResizeCoordinator, a future mouse handler) and
// is ignored here.
func (d *Dispatcher) Handle(env context.Env, ev boxen.Event) error {
	ke, ok := ev.(*boxen.KeysEvent)
	if !ok {
		return nil
	}
	if ke.IsTranslated {
		if mode := d.resolveMode(env); mode != nil {
			_, whole := mode.Lookup(d.pending + ke.Payload)
			_, alone := mode.Lookup(ke.Payload)
			if whole != context.NoMatch || alone != context.NoMatch {
				return d.feedKey(env, ev, ke.Payload)
			}
		}
	}
	for i := 0; i < len(ke.Payload); i++ {
		if err := d.feedKey(env, ev, ke.Payload[i:i+1]); err != nil {
			return err
		}
	}
	return nil
}

// feedKey implements § 4.7's accumulate/resolve/fall-back algorithm
// for one key: a translated payload of key names that the mode binds
// (or that extends a pending prefix) as one unit, otherwise a single
// byte. It re-resolves the target view and mode for every key, since
// either may change out from under a command that just ran
// (switchMode, switchBoxes, and the like).
func (d *Dispatcher) feedKey(env context.Env, ev boxen.Event, key string) error {
	mode := d.resolveMode(env)
	if mode == nil {
		return d.insertLiteral(env, key[0])
	}

	seq := d.pending + key
	name, status := mode.Lookup(seq)
	if status == context.NoMatch && d.pending != "" {
		// The accumulated prefix was a dead end; key may still start a
		// fresh binding on its own.
		d.pending = ""
		seq = key
		name, status = mode.Lookup(seq)
	}

	switch status {
	case context.ExactMatch:
		d.pending = ""
		cmd, ok := d.Context.Command(name)
		if !ok {
			return boxen.ErrNoSuchCommand
		}
		return cmd.Fn(env, ev)
	case context.Ambiguous:
		d.pending = seq
		return nil
	default: // NoMatch
		d.pending = ""
		return d.insertLiteral(env, key[0])
	}
}

func (d *Dispatcher) resolveMode(env context.Env) *context.Mode {
	if d.Context == nil {
		return nil
	}
	mode, ok := d.Context.Mode(env.CurrentModeName())
	if !ok {
		return nil
	}
	return mode
}

// targetView picks the view a literal byte or resolved command
// should act on: the command line while commandMode is set, otherwise
// the focused box's view (§ 4.7 step 1, re-resolved on every byte).
func targetView(env context.Env) *view.View {
	if env.InCommandMode() {
		return env.CommandLine()
	}
	return env.View()
}

// insertLiteral splices one untranslated byte into the target line at
// iX (§ 4.7 step 3), honoring overwriteMode and the read-only guard
// (supplemented feature 4).
func (d *Dispatcher) insertLiteral(env context.Env, b byte) error {
	v := targetView(env)
	if v == nil || v.Line == nil {
		return nil
	}
	if v.Content.ReadOnly {
		return boxen.ErrReadOnly
	}

	insert := !env.Overwrite()
	if err := content.MooshStrings(v.Line, []byte{b}, v.IX, 0, insert); err != nil {
		return err
	}
	v.Content.Modified = true

	formatted, width := view.FormatLine(v.Line.Text())
	v.Output = formatted
	v.OW = width
	v.MoveCursorRelative(1, 0, 0, 0)
	return nil
}

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

// Package context defines the editor emulation surface: named
// commands, per-mode keymaps that bind key-name sequences to those
// commands, and the built-in command set every concrete emulation in
// contexts/ wires its bindings to.
package context

import (
	"strings"

	"github.com/onefang/boxes"
	"github.com/onefang/boxes/boxtree"
	"github.com/onefang/boxes/view"
)

// Env is the editor-wide state a built-in command may act on. It is
// satisfied by package editor's Editor; context does not depend on
// editor to avoid an import cycle.
type Env interface {
	View() *view.View
	SetView(*view.View)
	CommandLine() *view.View
	SetCommandMode(bool)
	InCommandMode() bool
	Box() *boxtree.Box
	SetBox(*boxtree.Box)
	RootBox() *boxtree.Box
	SwitchMode(name string)
	CurrentModeName() string
	Overwrite() bool
	SetOverwrite(bool)
	History() []string
	PushHistory(line string)
	Quit()
}

// Func is a built-in command's implementation.
type Func func(env Env, ev boxen.Event) error

// Command is a named, documented built-in.
type Command struct {
	Name string
	Help string
	Fn   Func
}

// Binding maps one resolved key-name sequence (e.g. "^X^C", "Up") to
// a command name.
type Binding struct {
	Keys    string
	Command string
}

// matchStatus is the result of comparing a typed key-sequence so far
// against a Mode's bindings.
type matchStatus int

const (
	NoMatch matchStatus = iota
	Ambiguous
	ExactMatch
)

// Mode is one of a Context's named keymaps: vi's normal/insert modes,
// emacs's single mode, less/more's paging/search modes, and so on.
type Mode struct {
	Name     string
	bindings []Binding
}

// Bind adds a binding to the mode. Later bindings for the same key
// sequence replace earlier ones.
func (m *Mode) Bind(keys, command string) {
	for i, b := range m.bindings {
		if b.Keys == keys {
			m.bindings[i].Command = command
			return
		}
	}
	m.bindings = append(m.bindings, Binding{Keys: keys, Command: command})
}

// Lookup reports how seq compares against the mode's bound sequences:
// an exact match returns the bound command name; an ambiguous result
// means seq is a strict prefix of some longer binding AND seq is a
// ^-introduced control-key chain of length != 1, in which case the
// caller should keep accumulating keys; otherwise no match means seq
// (or its first keyname) should fall through to literal insertion,
// even when seq is a prefix of some longer binding.
func (m *Mode) Lookup(seq string) (command string, status matchStatus) {
	for _, b := range m.bindings {
		if b.Keys == seq {
			return b.Command, ExactMatch
		}
	}
	if strings.HasPrefix(seq, "^") && len(seq) != 1 {
		for _, b := range m.bindings {
			if len(b.Keys) > len(seq) && b.Keys[:len(seq)] == seq {
				return "", Ambiguous
			}
		}
	}
	return "", NoMatch
}

// Context is one editor emulation: a named command table plus the
// modes that bind keys to it.
type Context struct {
	Name     string
	commands map[string]*Command
	modes    map[string]*Mode
	order    []string // mode names, in registration order
}

// New creates an empty Context with the given name, pre-populated
// with the shared built-in command set (§ built-ins).
func New(name string) *Context {
	c := &Context{
		Name:     name,
		commands: map[string]*Command{},
		modes:    map[string]*Mode{},
	}
	registerBuiltins(c)
	return c
}

// AddCommand registers a command on the context, overriding the
// shared built-in of the same name if present.
func (c *Context) AddCommand(name, help string, fn Func) {
	c.commands[name] = &Command{Name: name, Help: help, Fn: fn}
}

// Command looks up a registered command by name.
func (c *Context) Command(name string) (*Command, bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

// AddMode creates (or returns, if it already exists) a named mode.
func (c *Context) AddMode(name string) *Mode {
	if m, ok := c.modes[name]; ok {
		return m
	}
	m := &Mode{Name: name}
	c.modes[name] = m
	c.order = append(c.order, name)
	return m
}

// Mode looks up a mode by name.
func (c *Context) Mode(name string) (*Mode, bool) {
	m, ok := c.modes[name]
	return m, ok
}

// ModeNames returns the context's mode names in registration order,
// the cycle nextMode steps through.
func (c *Context) ModeNames() []string {
	return append([]string(nil), c.order...)
}

// NextModeName returns the mode that follows name in registration
// order, wrapping around.
func (c *Context) NextModeName(name string) string {
	for i, n := range c.order {
		if n == name {
			return c.order[(i+1)%len(c.order)]
		}
	}
	if len(c.order) > 0 {
		return c.order[0]
	}
	return name
}

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

package context

import "testing"

func TestModeLookupExactAndAmbiguous(t *testing.T) {
	m := &Mode{Name: "normal"}
	m.Bind("^X^C", "quit")
	m.Bind("^Xs", "saveContent")

	if _, status := m.Lookup("^X"); status != Ambiguous {
		t.Errorf("Lookup(^X) status = %v, want Ambiguous", status)
	}
	if cmd, status := m.Lookup("^X^C"); status != ExactMatch || cmd != "quit" {
		t.Errorf("Lookup(^X^C) = %q,%v, want quit,ExactMatch", cmd, status)
	}
	if _, status := m.Lookup("z"); status != NoMatch {
		t.Errorf("Lookup(z) status = %v, want NoMatch", status)
	}
}

func TestModeLookupPlainPrefixIsNoMatchNotAmbiguous(t *testing.T) {
	m := &Mode{Name: "normal"}
	m.Bind(":q", "quit")
	m.Bind("q", "nop")

	// ":" is a strict prefix of ":q", but it isn't a ^-introduced
	// control-key chain, so it must fall through to literal insertion
	// rather than block waiting for a second key.
	if _, status := m.Lookup(":"); status != NoMatch {
		t.Errorf("Lookup(:) status = %v, want NoMatch (plain prefixes never wait)", status)
	}
	if cmd, status := m.Lookup(":q"); status != ExactMatch || cmd != "quit" {
		t.Errorf("Lookup(:q) = %q,%v, want quit,ExactMatch", cmd, status)
	}
	if cmd, status := m.Lookup("q"); status != ExactMatch || cmd != "nop" {
		t.Errorf("Lookup(q) = %q,%v, want nop,ExactMatch", cmd, status)
	}
}

func TestBindReplacesExistingBinding(t *testing.T) {
	m := &Mode{Name: "normal"}
	m.Bind("q", "quit")
	m.Bind("q", "nop")
	cmd, status := m.Lookup("q")
	if status != ExactMatch || cmd != "nop" {
		t.Errorf("got %q,%v, want nop,ExactMatch (rebinding should replace)", cmd, status)
	}
}

func TestNewContextHasBuiltins(t *testing.T) {
	c := New("test")
	for _, name := range []string{"leftChar", "quit", "nop", "splitH", "toggleOverwrite"} {
		if _, ok := c.Command(name); !ok {
			t.Errorf("missing built-in command %q", name)
		}
	}
}

func TestModeNamesCycle(t *testing.T) {
	c := New("test")
	c.AddMode("normal")
	c.AddMode("insert")
	if got := c.NextModeName("normal"); got != "insert" {
		t.Errorf("NextModeName(normal) = %q, want insert", got)
	}
	if got := c.NextModeName("insert"); got != "normal" {
		t.Errorf("NextModeName(insert) = %q, want normal (wraps)", got)
	}
}

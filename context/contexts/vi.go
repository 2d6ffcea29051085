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

package contexts

import (
	"github.com/onefang/boxes"
	"github.com/onefang/boxes/context"
)

// Vi builds the simple vi-alike binding set: "normal" mode with
// hjkl/arrow movement and "^W"-prefixed window commands, "insert"
// mode entered with "i" and left with Escape or ^C, and an "ex" mode
// entered with ":" or "Q" for command-line style commands. Unlike the
// other contexts' generic switchMode (which toggles the command
// line), vi's three modes are distinct named Modes switched between
// directly, the way the original's viMode/viInsertMode/viExMode
// functions do.
func Vi() *context.Context {
	c := context.New("vi")

	c.AddCommand("viInsertMode", "Switch to insert mode.", func(env context.Env, ev boxen.Event) error {
		env.SwitchMode("insert")
		return nil
	})
	c.AddCommand("viNormalMode", "Switch to normal mode.", func(env context.Env, ev boxen.Event) error {
		env.SwitchMode("normal")
		return nil
	})
	c.AddCommand("viExMode", "Switch to ex mode.", func(env context.Env, ev boxen.Event) error {
		env.SwitchMode("ex")
		return nil
	})

	normal := c.AddMode("normal")
	normal.Bind("BS", "leftChar")
	normal.Bind("Left", "leftChar")
	normal.Bind("h", "leftChar")
	normal.Bind("X", "backSpaceChar")
	normal.Bind("Del", "deleteChar")
	normal.Bind("x", "deleteChar")
	normal.Bind("Down", "downLine")
	normal.Bind("j", "downLine")
	normal.Bind("End", "endOfLine")
	normal.Bind("Home", "startOfLine")
	normal.Bind("PgDn", "downPage")
	normal.Bind("^F", "downPage")
	normal.Bind("PgUp", "upPage")
	normal.Bind("^B", "upPage")
	normal.Bind("Return", "downLine") // startOfNextLine, approximated
	normal.Bind("Right", "rightChar")
	normal.Bind("l", "rightChar")
	normal.Bind("Up", "upLine")
	normal.Bind("k", "upLine")
	normal.Bind("i", "viInsertMode")
	normal.Bind(":", "viExMode") // temporary ex mode, backs out on any command
	normal.Bind("Q", "viExMode") // the ex mode "visual" backs out of
	normal.Bind("^Wv", "splitV")
	normal.Bind("^W^V", "splitV")
	normal.Bind("^Ws", "splitH")
	normal.Bind("^WS", "splitH")
	normal.Bind("^W^S", "splitH")
	normal.Bind("^Ww", "switchBoxes")
	normal.Bind("^W^W", "switchBoxes")
	normal.Bind("^Wq", "deleteBox")
	normal.Bind("^W^Q", "deleteBox")

	insert := c.AddMode("insert")
	insert.Bind("BS", "backSpaceChar")
	insert.Bind("Del", "deleteChar")
	insert.Bind("Return", "splitLine")
	insert.Bind("^[", "viNormalMode")
	insert.Bind("^C", "viNormalMode")

	ex := c.AddMode("ex")
	ex.Bind("Return", "executeLine")
	ex.Bind("BS", "viNormalMode") // backing out of a temporary ":" returns to normal
	ex.Bind("^[", "viNormalMode")
	bindNavigation(ex, map[string]string{
		"Left": "leftChar", "Right": "rightChar",
		"Home": "startOfLine", "End": "endOfLine",
		"Del": "deleteChar",
	})

	return c
}

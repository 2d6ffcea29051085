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

import "github.com/onefang/boxes/context"

// Mcedit builds the simple mcedit/cooledit-alike binding set: plain
// arrow/Home/End/BS/Del navigation and a Shift-function-key family
// for window management (Shift-F2 command line, Shift-F3/F4 split,
// Shift-F6 switch box, Shift-F9 delete box), plus F2 to save and F10
// to quit — the bottom function-key row MC users expect.
func Mcedit() *context.Context {
	c := context.New("mcedit")
	normal := c.AddMode("normal")
	bindNavigation(normal, simpleNavigationKeys)
	normal.Bind("Return", "splitLine")
	normal.Bind("F2", "saveContent")
	normal.Bind("F10", "quit")
	normal.Bind("Shift-F2", "switchMode")
	normal.Bind("Shift-F3", "splitV")
	normal.Bind("Shift-F4", "splitH")
	normal.Bind("Shift-F6", "switchBoxes")
	normal.Bind("Shift-F9", "deleteBox")

	command := c.AddMode("command")
	bindNavigation(command, commonEditCommandKeys)

	// History navigation is a supplemented feature (beyond the
	// original's bare command line): mcedit's command mode recalls
	// prior command-line entries the way a shell history does.
	command.Bind("Up", "historyPrev")
	command.Bind("Down", "historyNext")

	return c
}

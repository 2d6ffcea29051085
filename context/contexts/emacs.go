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

// Package contexts holds the per-emulation binding tables: vi, emacs,
// joe, nano, mcedit, less, and more, each built from the shared
// built-in command set in package context.
package contexts

import "github.com/onefang/boxes/context"

// Emacs builds the simple emacs-alike binding set. Mostly control
// keys, with "^X" and "^[" (Meta) as multi-stroke prefixes — ^X^C to
// quit, ^Xs to save, ^X2/^X3 to split, ^XP to switch boxes, ^X0 to
// delete the current box.
func Emacs() *context.Context {
	c := context.New("emacs")
	normal := c.AddMode("normal")
	bindNavigation(normal, map[string]string{
		"Del": "backSpaceChar", "^D": "deleteChar",
		"Down": "downLine", "^N": "downLine",
		"End": "endOfLine", "^E": "endOfLine",
		"Home": "startOfLine", "^A": "startOfLine",
		"Left": "leftChar", "^B": "leftChar",
		"Right": "rightChar", "^F": "rightChar",
		"PgDn": "downPage", "^V": "downPage",
		"PgUp": "upPage", "^[v": "upPage",
		"Up": "upLine", "^P": "upLine",
		"Return": "splitLine",
	})
	normal.Bind("^X^C", "quit")
	normal.Bind("^Xq", "quit")
	normal.Bind("^X^S", "saveContent")
	normal.Bind("^Xs", "saveContent")
	normal.Bind("^X2", "splitV")
	normal.Bind("^X3", "splitH")
	normal.Bind("^XP", "switchBoxes")
	normal.Bind("^X0", "deleteBox")
	normal.Bind("^[x", "switchMode")

	command := c.AddMode("command")
	bindNavigation(command, map[string]string{
		"Del": "backSpaceChar", "^D": "deleteChar",
		"Down": "downLine", "^N": "downLine",
		"End": "endOfLine", "^E": "endOfLine",
		"Home": "startOfLine", "^A": "startOfLine",
		"Left": "leftChar", "^B": "leftChar",
		"Up": "upLine", "^P": "upLine",
		"Return": "executeLine",
	})
	command.Bind("^[x", "switchMode")

	return c
}

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

// Joe builds the simple joe/wordstar-alike binding set: arrow keys
// plus a "^K"-prefixed window command family (^Ko split, ^Kn next
// window, ^Kx abort/quit) and "^[x" (Esc x) to reach the command
// line.
func Joe() *context.Context {
	c := context.New("joe")
	normal := c.AddMode("normal")
	bindNavigation(normal, simpleNavigationKeys)
	normal.Bind("Return", "splitLine")
	normal.Bind("^Ko", "splitH")
	normal.Bind("^K^O", "splitH")
	normal.Bind("^Kn", "switchBoxes")
	normal.Bind("^K^N", "switchBoxes")
	normal.Bind("^Kx", "quit")
	normal.Bind("^K^X", "quit")
	normal.Bind("^Kd", "saveContent")
	normal.Bind("^K^D", "saveContent")
	normal.Bind("^[x", "switchMode")
	normal.Bind("^[^X", "switchMode")

	command := c.AddMode("command")
	bindNavigation(command, commonEditCommandKeys)
	command.Bind("^[x", "switchMode")
	command.Bind("^[^X", "switchMode")

	return c
}

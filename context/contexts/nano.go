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

// Nano builds the simple nano-alike binding set: single control keys
// only (no multi-stroke prefixes), and no separate command-line mode
// — "^X" exits directly.
func Nano() *context.Context {
	c := context.New("nano")
	normal := c.AddMode("normal")
	bindNavigation(normal, map[string]string{
		"BS": "backSpaceChar",
		"^D": "deleteChar", "Del": "deleteChar",
		"^N": "downLine", "Down": "downLine",
		"^E": "endOfLine", "End": "endOfLine",
		"^X": "quit", "F2": "quit",
		"^O": "saveContent", "F3": "saveContent",
		"^A": "startOfLine", "Home": "startOfLine",
		"^B": "leftChar", "Left": "leftChar",
		"^V": "downPage", "PgDn": "downPage",
		"^Y": "upPage", "PgUp": "upPage",
		"Return": "splitLine",
		"^F":     "rightChar", "Right": "rightChar",
		"^P": "upLine", "Up": "upLine",
	})
	return c
}

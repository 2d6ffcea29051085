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

// bindNavigation is the shared "go bind a pile of key-to-command
// pairs into a mode" helper every emulation's table-construction
// function uses.
func bindNavigation(m *context.Mode, keys map[string]string) {
	for k, cmd := range keys {
		m.Bind(k, cmd)
	}
}

// commonEditCommandKeys is the command-line keymap simpleCommandKeys
// gives every editor context that has no fancier command line of its
// own: arrow/Home/End/BS/Del navigation plus Return to execute.
var commonEditCommandKeys = map[string]string{
	"BS": "backSpaceChar", "Del": "deleteChar",
	"Down": "downLine", "Up": "upLine",
	"End": "endOfLine", "Home": "startOfLine",
	"Left": "leftChar", "Right": "rightChar",
	"Return": "executeLine",
}

// simpleNavigationKeys is the shared arrow/paging keymap bound into
// every editor context's normal mode.
var simpleNavigationKeys = map[string]string{
	"BS":    "backSpaceChar",
	"Del":   "deleteChar",
	"Down":  "downLine",
	"Up":    "upLine",
	"End":   "endOfLine",
	"Home":  "startOfLine",
	"Left":  "leftChar",
	"Right": "rightChar",
	"PgDn":  "downPage",
	"PgUp":  "upPage",
}

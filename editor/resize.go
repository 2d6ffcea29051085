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

package editor

import (
	"github.com/onefang/boxes"
	"github.com/onefang/boxes/boxtree"
)

// acceptResizeReport reports whether a CsiEvent should be treated as
// the cursor-position report the resize probe requested, rather than
// an unrelated CSI ending in the same final byte (§ 4.3): exactly two
// parameters, each greater than 8.
func acceptResizeReport(ev *boxen.CsiEvent) bool {
	if ev.Command != "R" || ev.Count != 2 {
		return false
	}
	return ev.Params[0] > 8 && ev.Params[1] > 8
}

// HandleCsi intercepts a CSI event before it reaches the Dispatcher.
// If it is an accepted resize report it resizes the root box (leaving
// the bottom row for the command line), recomputes every leaf's
// geometry, and issues a full redraw; it reports whether it consumed
// the event.
func (e *Editor) HandleCsi(ev *boxen.CsiEvent) bool {
	if !acceptResizeReport(ev) {
		return false
	}

	rows, cols := ev.Params[0], ev.Params[1]
	e.rootBox.W = cols
	e.rootBox.H = rows - 1
	boxtree.CalcBoxes(e.rootBox)

	e.commandLine.SetBox(0, rows-1, cols, 1)

	e.Redraw()
	return true
}

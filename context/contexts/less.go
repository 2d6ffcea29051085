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

// Less builds the simple less-alike binding set: a read-only pager
// with per-line and per-page scrolling (no cursor movement within a
// line beyond Left/Right) and "q" to quit. "/" switches to a "search"
// mode whose Return runs executeLine; no text search is performed.
// "ZZ" and ":q" are bound too, but the dispatcher only waits for more
// keys after a "^"-prefixed key, so their first character is handled
// on its own. The content a Less view opens
// should be marked read-only by the caller (§ supplemented read-only
// guard).
func Less() *context.Context {
	c := context.New("less")
	paging := c.AddMode("paging")
	paging.Bind("Down", "downLine")
	paging.Bind("j", "downLine")
	paging.Bind("Return", "downLine")
	paging.Bind("End", "endOfLine")
	paging.Bind("q", "quit")
	paging.Bind(":q", "quit")
	paging.Bind("ZZ", "quit")
	paging.Bind("PgDn", "downPage")
	paging.Bind("f", "downPage")
	paging.Bind(" ", "downPage")
	paging.Bind("^F", "downPage")
	paging.Bind("Left", "leftChar")
	paging.Bind("Right", "rightChar")
	paging.Bind("PgUp", "upPage")
	paging.Bind("b", "upPage")
	paging.Bind("^B", "upPage")
	paging.Bind("Up", "upLine")
	paging.Bind("k", "upLine")
	paging.Bind("/", "nextMode") // supplemented: toggles into the search prompt

	search := c.AddMode("search")
	search.Bind("Return", "executeLine")
	search.Bind("^[", "nextMode") // Escape cancels the search, back to paging
	bindNavigation(search, commonEditCommandKeys)

	return c
}

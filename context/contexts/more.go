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

// More builds the simple more-alike binding set: a stripped-down
// pager with page-at-a-time and single-line scrolling only (no
// Left/Right/PgUp in the original more, though this simple
// implementation permits upPage for convenience).
func More() *context.Context {
	c := context.New("more")
	paging := c.AddMode("paging")
	paging.Bind("j", "downLine")
	paging.Bind("Return", "downLine")
	paging.Bind("q", "quit")
	paging.Bind(":q", "quit")
	paging.Bind("ZZ", "quit")
	paging.Bind("f", "downPage")
	paging.Bind(" ", "downPage")
	paging.Bind("^F", "downPage")
	paging.Bind("b", "upPage")
	paging.Bind("^B", "upPage")
	paging.Bind("k", "upLine")
	paging.Bind("/", "nextMode")

	search := c.AddMode("search")
	search.Bind("Return", "executeLine")
	search.Bind("^[", "nextMode")
	bindNavigation(search, commonEditCommandKeys)

	return c
}

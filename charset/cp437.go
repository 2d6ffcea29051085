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

package charset

import (
	gencoding "github.com/gdamore/encoding"
)

// init registers the DOS code-page encoding the render package's DOS
// border palette assumes (CP437's box-drawing range, e.g. 0xC4/0xB3
// for single lines): without transcoding, those raw bytes would print
// as garbage on a UTF-8 terminal instead of the glyphs the palette
// intends.
func init() {
	Register("CP437", gencoding.CP437)
}

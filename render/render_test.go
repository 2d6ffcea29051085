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

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/onefang/boxes/boxtree"
	"github.com/onefang/boxes/content"
	"github.com/onefang/boxes/view"
)

func newLeaf(lines ...string) *view.View {
	c := content.New("test")
	for _, l := range lines {
		c.AddLine(nil, []byte(l))
	}
	return view.New(c)
}

func TestNewClampsOutOfRangeIndex(t *testing.T) {
	r := New(&bytes.Buffer{}, 99)
	if r.Palette.Name != stickPalette.Name {
		t.Fatalf("Palette = %q, want the stick fallback", r.Palette.Name)
	}
}

func TestDrawBoxesBorderedLeafEmitsCorners(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 1) // utf8

	v := newLeaf("hello")
	root := boxtree.NewRoot(v, 10, 4)
	root.Border = true
	boxtree.CalcBoxes(root)

	r.DrawBoxes(root, root)

	out := buf.String()
	if !strings.Contains(out, utf8Palette.Current[chTopLeft]) {
		t.Fatalf("output missing focused top-left corner glyph:\n%s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("output missing content text:\n%s", out)
	}
	if !strings.Contains(out, "\x1b[1m") {
		t.Fatalf("focused box not bolded:\n%s", out)
	}
}

func TestDrawBoxesUnfocusedLeafUsesNormalPalette(t *testing.T) {
	v1 := newLeaf("a")
	root := boxtree.NewRoot(v1, 20, 6)
	root.Border = true
	boxtree.CalcBoxes(root)
	if _, err := boxtree.SplitBox(root, false, 0.5); err != nil {
		t.Fatalf("SplitBox: %v", err)
	}

	var focused, unfocused bytes.Buffer
	New(&focused, 0).drawBox(root.Sub1, true)
	New(&unfocused, 0).drawBox(root.Sub2, false)

	if !strings.Contains(focused.String(), "\x1b[1m") {
		t.Fatalf("focused box missing bold escape:\n%s", focused.String())
	}
	if strings.Contains(unfocused.String(), "\x1b[1m") {
		t.Fatalf("unfocused box should not be bolded:\n%s", unfocused.String())
	}
}

func TestPadOrTruncateClipsAndPads(t *testing.T) {
	got := padOrTruncate("hi", ".", 5)
	if got != "hi..." {
		t.Fatalf("padOrTruncate = %q, want %q", got, "hi...")
	}
	got = padOrTruncate("hello world", ".", 5)
	if got != "hello" {
		t.Fatalf("padOrTruncate = %q, want %q", got, "hello")
	}
}

func TestDrawLineEmitsCursorPositioning(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 0)
	r.drawLine(2, 0, 10, "", " ", "hi", "", false)
	if !strings.Contains(buf.String(), "\x1b[3;1H") {
		t.Fatalf("missing 1-based cursor position escape: %q", buf.String())
	}
}

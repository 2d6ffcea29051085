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

// Package render draws a BoxTree to a single ANSI output stream: cursor
// positioning and the focused-box bold attribute are the only styling,
// borders come from a selectable glyph Palette, and short content lines
// are padded out to the box's width with a fill character.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/onefang/boxes/boxtree"
	"github.com/onefang/boxes/content"
	"github.com/onefang/boxes/view"
)

// Renderer draws a BoxTree to Out using the selected border Palette.
type Renderer struct {
	Out     io.Writer
	Palette Palette
}

// New creates a Renderer writing to out, selecting Palettes[index]
// (clamped to the stick-character fallback if index is out of range).
func New(out io.Writer, index int) *Renderer {
	if index < 0 || index >= len(Palettes) {
		index = 0
	}
	return &Renderer{Out: out, Palette: Palettes[index]}
}

// DrawBoxes recurses over root's leaves, drawing each one; current is
// the focused box, drawn with its border's "current" glyphs and the
// row text in bold (§ 4.9).
func (r *Renderer) DrawBoxes(root, current *boxtree.Box) {
	if root.Sub1 != nil {
		r.DrawBoxes(root.Sub1, current)
		r.DrawBoxes(root.Sub2, current)
		return
	}
	r.drawBox(root, root == current)
}

// drawBox draws one leaf box: its border (if any) and the interior
// content rows, scrolled to the view's OffsetY.
func (r *Renderer) drawBox(b *boxtree.Box, isCurrent bool) {
	v, _ := b.View.(*view.View)

	bchars := r.Palette.Normal
	if isCurrent {
		bchars = r.Palette.Current
	}

	y := b.Y
	bottom := b.Y + b.H
	left, right := "", ""

	if b.Border {
		bottom--
		left, right = bchars[chVert], bchars[chVert]
		r.drawLine(y, b.X, b.X+b.W, bchars[chTopLeft], bchars[chHoriz], "", bchars[chTopRight], isCurrent)
		y++
	}

	var line *content.Line
	if v != nil {
		// Walk forward from the first line below OffsetY.
		line = v.Content.First()
		for i := 0; i < v.OffsetY && line != nil; i++ {
			line = line.Next(v.Content)
		}
	}

	for y < bottom {
		text := ""
		if v != nil && line != nil {
			text = string(line.Text())
			line = line.Next(v.Content)
		}
		r.drawContentLine(v, y, b.X, b.X+b.W, left, " ", text, right, isCurrent)
		y++
	}

	if b.Border {
		r.drawLine(y, b.X, b.X+b.W, bchars[chBotLeft], bchars[chHoriz], "", bchars[chBotRight], isCurrent)
	}
}

// drawContentLine formats contents the same way the view itself would
// (expanding tabs) when it is the view's current line, so the scroll
// offset lines up with the cursor math in package view; any other
// line (drawing the rest of the page) is formatted standalone.
func (r *Renderer) drawContentLine(v *view.View, y, start, end int, left, internal, contents, right string, isCurrent bool) {
	var text string
	if v != nil && v.Line != nil && contents == string(v.Line.Text()) {
		formatted, _ := view.FormatLine([]byte(contents))
		text = string(formatted)
		if v.OffsetX < len(text) {
			text = text[v.OffsetX:]
		} else {
			text = ""
		}
	} else {
		formatted, _ := view.FormatLine([]byte(contents))
		text = string(formatted)
	}
	r.drawLine(y, start, end, left, internal, text, right, isCurrent)
}

// drawLine formats and emits a single screen row: start/end are
// absolute column bounds, left/right the border glyphs (empty when
// the box has no border), internal the fill character padding short
// content out to width, and current whether to bold the row.
func (r *Renderer) drawLine(y, start, end int, left, internal, contents, right string, current bool) {
	width := end - start
	if left != "" {
		width -= 2
	}
	if width < 0 {
		width = 0
	}

	line := padOrTruncate(contents, internal, width)

	var b strings.Builder
	if current {
		b.WriteString("\x1b[1m")
	} else {
		b.WriteString("\x1b[m")
	}
	fmt.Fprintf(&b, "\x1b[%d;%dH", y+1, start+1)
	if left != "" {
		b.WriteString(left)
	}
	b.WriteString(line)
	if right != "" {
		b.WriteString(right)
	}
	if current {
		b.WriteString("\x1b[m")
	}

	io.WriteString(r.Out, b.String())
}

// padOrTruncate clips contents to width display cells (per
// go-runewidth, so multi-cell runes are not double-counted) and, if
// shorter, pads it out with copies of fill.
func padOrTruncate(contents, fill string, width int) string {
	if width <= 0 {
		return ""
	}

	var out strings.Builder
	cells := 0
	for _, rn := range contents {
		w := runewidth.RuneWidth(rn)
		if cells+w > width {
			break
		}
		out.WriteRune(rn)
		cells += w
	}

	fillWidth := runewidth.StringWidth(fill)
	if fillWidth <= 0 {
		fillWidth = 1
	}
	for cells+fillWidth <= width {
		out.WriteString(fill)
		cells += fillWidth
	}
	return out.String()
}

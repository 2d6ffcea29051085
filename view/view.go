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

// Package view renders one Content into one Box: it tracks the
// on-screen cursor, the scroll offset, and the tab-expanded formatting
// of the current line, and converts screen-relative cursor moves into
// content-relative ones.
package view

import (
	"github.com/onefang/boxes/boxtree"
	"github.com/onefang/boxes/content"
)

// TabSize is the fixed tab stop width used by FormatLine and
// formatCheckCursor.
const TabSize = 8

// View is a window onto a Content, occupying one leaf Box. Several
// Views may share a Content (a split-pane editor on the same file),
// each with its own cursor and scroll position.
type View struct {
	Content *content.Content
	Line    *content.Line // current line; nil only for an empty Content

	// X, Y, W, H are the position and size of the content area within
	// the box, in screen cells. Set by the owning Box's layout pass.
	X, Y, W, H int

	OffsetX, OffsetY int // scroll offset within the content
	CX, CY           int // cursor position within the content, screen coords
	IX               int // cursor position inside Line's text, in bytes
	OW               int // formatted width of the current line
	Output           []byte

	Mode   int
	Prompt string
}

// New creates a View onto c, positioned at its first line.
func New(c *content.Content) *View {
	v := &View{Content: c}
	v.Line = c.First()
	if v.Line != nil {
		v.Output, v.OW = FormatLine(v.Line.Text())
	}
	return v
}

// SetBox records the content area's position and size.
func (v *View) SetBox(x, y, w, h int) {
	v.X, v.Y, v.W, v.H = x, y, w, h
}

// Clone returns an independent View over the same Content, starting
// from v's current cursor and scroll position. Used when a box is
// split: each half gets its own cursor into the shared file.
func (v *View) Clone() boxtree.Leaf {
	clone := *v
	return &clone
}

// FormatLine expands input's tabs to spaces at TabSize-column stops
// and returns the expanded bytes along with their length.
func FormatLine(input []byte) ([]byte, int) {
	out := make([]byte, 0, len(input))
	col := 0
	for _, b := range input {
		if b == '\t' {
			pad := TabSize - (col % TabSize)
			for ; pad > 0; pad-- {
				out = append(out, ' ')
				col++
			}
			continue
		}
		out = append(out, b)
		col++
	}
	return out, len(out)
}

// formatCheckCursor adjusts cX to land on a tab-stop boundary rather
// than inside the run of spaces a tab expanded to, and updates v.IX to
// the byte offset in input that the (possibly adjusted) cX now
// corresponds to. direction is the sign of the requested move, used to
// decide which edge of the tab the cursor snaps to.
func (v *View) formatCheckCursor(cX *int, input []byte, direction int) {
	i, o := 0, 0
	for i < len(input) {
		if input[i] == '\t' {
			j := TabSize - (i % TabSize)
			if *cX > o && *cX < o+j {
				if direction >= 0 {
					*cX = o + j
					v.IX = i + 1
				} else {
					*cX = o
					v.IX = i
				}
			}
			o += j
		} else {
			if *cX == o {
				v.IX = i
			}
			o++
		}
		i++
	}
	if *cX == o {
		v.IX = i
	}
}

// MoveCursorAbsolute moves the cursor to content position (cX, cY),
// scrolling by (sX, sY) in addition to whatever scroll the move itself
// requires, and reports whether the cursor actually moved.
func (v *View) MoveCursorAbsolute(cX, cY, sX, sY int) bool {
	if v.Line == nil {
		return false
	}

	newLine := v.Line
	oX, oY := v.OffsetX, v.OffsetY
	lY := v.Content.Count() - 1
	nY := v.CY
	direction := cX - v.CX
	endOfLine := false

	if cY < 0 {
		cY = 0
	} else if cY > lY {
		cY = lY
	}
	if cX < 0 {
		if v.Line.Prev(v.Content) != nil {
			cY--
			endOfLine = true
		} else {
			cX = 0
		}
	} else if cX > v.OW {
		if v.Line.Next(v.Content) != nil {
			cY++
			cX = 0
		} else {
			cX = v.OW
		}
	}

	updatedY := false
	for nY != cY {
		updatedY = true
		if nY < cY {
			next := newLine.Next(v.Content)
			if next == nil {
				break
			}
			newLine = next
			nY++
		} else {
			prev := newLine.Prev(v.Content)
			if prev == nil {
				break
			}
			newLine = prev
			nY--
		}
	}
	cY = nY

	if updatedY {
		formatted, width := FormatLine(newLine.Text())
		v.Output = formatted
		v.OW = width
		if v.OW < cX {
			endOfLine = true
		}
	}
	if endOfLine {
		cX = v.OW
	}

	v.formatCheckCursor(&cX, newLine.Text(), direction)

	w, h := v.W-1, v.H-1
	oX += sX
	oY += sY
	if oY > cY {
		oY += cY - oY
	} else if oY+h < cY {
		oY += cY - (oY + h)
	}
	if oX > cX {
		oX += cX - oX
	} else if oX+w <= cX {
		oX += cX - (oX + w)
	}
	scrollMaxY := lY - h
	if oY < 0 {
		oY = 0
	}
	if oY >= scrollMaxY {
		oY = scrollMaxY
	}
	if oX < 0 {
		oX = 0
	}

	moved := v.CX != cX || v.CY != cY
	v.CX, v.CY = cX, cY
	v.Line = newLine
	v.OffsetX, v.OffsetY = oX, oY
	return moved
}

// MoveCursorRelative moves the cursor by (dX, dY) content cells.
func (v *View) MoveCursorRelative(dX, dY, sX, sY int) bool {
	return v.MoveCursorAbsolute(v.CX+dX, v.CY+dY, sX, sY)
}

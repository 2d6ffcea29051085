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

// Package boxtree implements the binary split-tree that lays the
// screen out into rectangular boxes. A Box with no sub-boxes is a
// leaf and carries a View; a Box with sub-boxes is an internal node
// that is never itself drawn.
package boxtree

import "github.com/onefang/boxes"

// MinSplitCells is the smallest size (in cells, along the split axis)
// that either sub-box of a split may have.
const MinSplitCells = 6

// Leaf is the content a leaf Box displays. It is an interface so
// boxtree does not need to import the view package; *view.View
// satisfies it. Clone produces an independent Leaf (its own cursor
// and scroll position) that may still share the same underlying
// Content, the way a split-pane editor's two halves do.
type Leaf interface {
	SetBox(x, y, w, h int)
	Clone() Leaf
}

// Box is one node of the split tree.
type Box struct {
	Parent, Sub1, Sub2 *Box
	View               Leaf // nil on internal nodes

	X, Y, W, H int
	Split      float64 // Sub1's share of the split; Sub2 gets the rest
	HSplit     bool    // true: split divides height; false: divides width
	Border     bool
}

// NewRoot creates the single full-screen root box.
func NewRoot(view Leaf, w, h int) *Box {
	return &Box{View: view, W: w, H: h}
}

// IsLeaf reports whether b has no sub-boxes.
func (b *Box) IsLeaf() bool { return b.Sub1 == nil }

// CalcBoxes recomputes the geometry of b and its entire subtree from
// b's own X/Y/W/H, and resizes each leaf's View to match.
func CalcBoxes(b *Box) {
	if b.Sub1 != nil {
		b.Sub1.X, b.Sub1.Y, b.Sub1.W, b.Sub1.H = b.X, b.Y, b.W, b.H
		b.Sub2.X, b.Sub2.Y, b.Sub2.W, b.Sub2.H = b.X, b.Y, b.W, b.H

		if b.HSplit {
			b.Sub1.H = int(float64(b.H) * b.Split)
			b.Sub2.H -= b.Sub1.H
			b.Sub2.Y += b.Sub1.H
		} else {
			b.Sub1.W = int(float64(b.W) * b.Split)
			b.Sub2.W -= b.Sub1.W
			b.Sub2.X += b.Sub1.W
		}
		CalcBoxes(b.Sub1)
		CalcBoxes(b.Sub2)
		return
	}

	if b.View != nil {
		x, y, w, h := b.contentArea()
		b.View.SetBox(x, y, w, h)
	}
}

// contentArea returns the box's drawable area, inset by one cell on
// each side when it carries a border.
func (b *Box) contentArea() (x, y, w, h int) {
	if !b.Border {
		return b.X, b.Y, b.W, b.H
	}
	return b.X + 1, b.Y + 1, b.W - 2, b.H - 2
}

func cloneBox(parent *Box) *Box {
	return &Box{Parent: parent, Border: true}
}

// SplitBox splits b along its HSplit axis at the given ratio,
// creating two bordered sub-boxes if b was previously a leaf, or
// updating the ratio if it was already split. A split ratio of 1.0 or
// greater instead deletes the sibling (un-splitting b's parent); a
// ratio of exactly 0 deletes b itself. Both forms mirror the original
// editor's overloaded splitBox/"unsplit" behaviour.
func SplitBox(b *Box, hsplit bool, split float64) (*Box, error) {
	if split < 0 {
		return nil, boxen.ErrGeometryTooSmall
	}
	if split >= 1.0 {
		if b.Parent != nil {
			if b == b.Parent.Sub1 {
				DeleteBox(b.Parent.Sub2)
			} else {
				DeleteBox(b.Parent.Sub1)
			}
		}
		return b, nil
	}
	if split == 0 {
		return nil, DeleteBox(b)
	}

	size := b.W
	if hsplit {
		size = b.H
	}
	sub1 := int(float64(size) * split)
	if sub1 < MinSplitCells || size-sub1 < MinSplitCells {
		return nil, boxen.ErrGeometryTooSmall
	}

	b.HSplit = hsplit
	b.Split = split
	if b.Sub1 == nil {
		b.Sub1 = cloneBox(b)
		b.Sub2 = cloneBox(b)
		b.Sub1.View = b.View
		b.Sub2.View = b.View.Clone()
		b.View = nil
	}

	CalcBoxes(b)
	return b.Sub1, nil
}

// DeleteBox removes b from its parent, promoting b's sibling's
// contents up into the parent in its place. Deleting the root box is
// a no-op: there is always at least one box.
func DeleteBox(b *Box) error {
	parent := b.Parent
	if parent == nil {
		return nil
	}

	sibling := parent.Sub1
	if sibling == b {
		sibling = parent.Sub2
	}

	parent.X, parent.Y = parent.Sub1.X, parent.Sub1.Y
	if parent.HSplit {
		parent.H = parent.Sub1.H + parent.Sub2.H
	} else {
		parent.W = parent.Sub1.W + parent.Sub2.W
	}
	parent.HSplit = false

	parent.Sub1, parent.Sub2 = sibling.Sub1, sibling.Sub2
	if parent.Sub1 != nil {
		parent.Sub1.Parent = parent
		parent.Sub2.Parent = parent
		parent.HSplit = sibling.HSplit
		parent.Split = sibling.Split
	} else {
		parent.View = sibling.View
		if parent.Parent == nil {
			parent.Border = false
		}
		parent.Split = 1.0
	}

	CalcBoxes(parent)
	return nil
}

// firstLeaf returns the left-most leaf in b's subtree.
func firstLeaf(b *Box) *Box {
	for b.Sub1 != nil {
		b = b.Sub1
	}
	return b
}

// NextLeaf returns the next leaf after b in a depth-first traversal of
// the whole tree rooted at root, wrapping around to the first leaf
// after the last. It is the primitive switchBoxes cycles through.
func NextLeaf(root, b *Box) *Box {
	cur := b
	for cur.Parent != nil {
		p := cur.Parent
		if cur == p.Sub1 {
			return firstLeaf(p.Sub2)
		}
		cur = p
	}
	return firstLeaf(root)
}

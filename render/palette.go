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

// Palette indices, matching borderChars[][6] in the order horizontal,
// vertical, top-left, top-right, bottom-left, bottom-right.
const (
	chHoriz = iota
	chVert
	chTopLeft
	chTopRight
	chBotLeft
	chBotRight
	chCount
)

// Palette is one border character set, with separate glyphs for a
// box's normal and focused ("current") border.
type Palette struct {
	Name    string
	Normal  [chCount]string
	Current [chCount]string
}

// Palettes is the fixed set selectable at startup via the stickchars
// option; index 0 is the ASCII fallback a caller should pick whenever
// the terminal's charset cannot be trusted.
var Palettes = []Palette{
	stickPalette,
	utf8Palette,
	vt100Palette,
	dosPalette,
}

var stickPalette = Palette{
	Name:    "stick",
	Normal:  [chCount]string{"-", "|", "+", "+", "+", "+"},
	Current: [chCount]string{"=", "#", "+", "+", "+", "+"},
}

// utf8Palette uses single line-drawing glyphs normally and the
// double-line glyphs for the focused box's border, the same pairing
// the original draws from its borderChars/borderCharsCurrent tables.
var utf8Palette = Palette{
	Name:    "utf8",
	Normal:  [chCount]string{"─", "│", "┌", "┐", "└", "┘"},
	Current: [chCount]string{"═", "║", "╔", "╗", "╚", "╝"},
}

// vt100Palette uses the VT100 alternate character set's line-drawing
// glyphs (q, x, l, k, m, j under SO/SI shift-out). It has no distinct
// "current" glyphs in the original, so both variants are identical;
// the Renderer still marks the focused box with bold.
var vt100Palette = Palette{
	Name:    "vt100",
	Normal:  [chCount]string{"\x71", "\x78", "\x6C", "\x6B", "\x6D", "\x6A"},
	Current: [chCount]string{"\x71", "\x78", "\x6C", "\x6B", "\x6D", "\x6A"},
}

var dosPalette = Palette{
	Name:    "dos",
	Normal:  [chCount]string{"\xC4", "\xB3", "\xDA", "\xBF", "\xC0", "\xD9"},
	Current: [chCount]string{"\xCD", "\xBA", "\xC9", "\xBB", "\xC8", "\xBC"},
}

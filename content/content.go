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

// Package content holds the text a View displays: a circular
// doubly-linked list of Lines anchored by a header sentinel, plus the
// splice primitives (MooshStrings, SplitLine, BackspaceChar,
// DeleteChar) that every editor Context's built-in commands are
// implemented in terms of.
package content

import "github.com/onefang/boxes"

// Line is one line of text in a Content's list. The header sentinel
// returned by nil next/prev checks is never itself text: Content
// repurposes its count field to track the number of real lines, the
// same trick the original C header node plays with its length field.
type Line struct {
	next, prev *Line
	text       []byte
	count      int // valid only on the header line
}

// Text returns the line's current bytes. Callers must not retain the
// returned slice across a subsequent splice on the same Line.
func (l *Line) Text() []byte { return l.text }

// Len returns the number of bytes in the line.
func (l *Line) Len() int { return len(l.text) }

// Next returns the following line, or nil if l is the last real line.
func (l *Line) Next(c *Content) *Line {
	if l.next == &c.header {
		return nil
	}
	return l.next
}

// Prev returns the preceding line, or nil if l is the first real line.
func (l *Line) Prev(c *Content) *Line {
	if l.prev == &c.header {
		return nil
	}
	return l.prev
}

// Content is one open file, buffer, or command line's worth of text.
// Several Views may share one Content (a split-pane editor on the
// same file); each View tracks its own cursor and scroll position.
type Content struct {
	Name, File, Path string

	header Line

	MinW, MinH, MaxW, MaxH int
	ReadOnly               bool
	Modified               bool
}

// New creates an empty, writable Content named name.
func New(name string) *Content {
	c := &Content{Name: name}
	c.header.next = &c.header
	c.header.prev = &c.header
	return c
}

// Count returns the number of real lines in the content.
func (c *Content) Count() int { return c.header.count }

// First returns the first line, or nil if the content is empty.
func (c *Content) First() *Line {
	if c.header.next == &c.header {
		return nil
	}
	return c.header.next
}

// Last returns the last line, or nil if the content is empty.
func (c *Content) Last() *Line {
	if c.header.prev == &c.header {
		return nil
	}
	return c.header.prev
}

// AddLine inserts a new line holding text after line, or at the end of
// the content if line is nil, and returns it.
func (c *Content) AddLine(line *Line, text []byte) *Line {
	result := &Line{text: append([]byte(nil), text...)}

	if line == nil {
		line = c.header.prev
	}

	result.next = line.next
	result.prev = line
	line.next.prev = result
	line.next = result

	c.header.count++
	return result
}

// FreeLine removes line from the content. It is a programming error to
// free the header sentinel or a line already removed.
func (c *Content) FreeLine(line *Line) {
	line.next.prev = line.prev
	line.prev.next = line.next
	c.header.count--
}

func (c *Content) guardWritable() error {
	if c.ReadOnly {
		return boxen.ErrReadOnly
	}
	return nil
}

// SplitLine breaks line at byte offset index: the bytes from index
// onward become a new line inserted immediately after it, and line is
// truncated to the bytes before index. It returns the new line.
func (c *Content) SplitLine(line *Line, index int) (*Line, error) {
	if err := c.guardWritable(); err != nil {
		return nil, err
	}
	if index < 0 || index > len(line.text) {
		index = len(line.text)
	}
	tail := append([]byte(nil), line.text[index:]...)
	line.text = line.text[:index:index]
	result := c.AddLine(line, tail)
	c.Modified = true
	return result, nil
}

// BackspaceChar deletes the character immediately before index on
// line. If index is 0 and a previous line exists, the two lines are
// joined instead: line's text is appended to the previous line, line
// is freed, and the returned Line/int is the new current
// line/position. Otherwise the returned Line is line itself.
func (c *Content) BackspaceChar(line *Line, index int) (*Line, int, error) {
	if err := c.guardWritable(); err != nil {
		return line, index, err
	}
	if index > 0 {
		if err := MooshStrings(line, nil, index-1, 1, true); err != nil {
			return line, index, err
		}
		c.Modified = true
		return line, index - 1, nil
	}
	prev := line.Prev(c)
	if prev == nil {
		return line, index, nil
	}
	joinAt := len(prev.text)
	prev.text = append(prev.text, line.text...)
	c.FreeLine(line)
	c.Modified = true
	return prev, joinAt, nil
}

// DeleteChar deletes the character at index on line. If index is at
// the end of the line and a following line exists, the following line
// is appended to line and then freed (a forward join).
func (c *Content) DeleteChar(line *Line, index int) error {
	if err := c.guardWritable(); err != nil {
		return err
	}
	if index < len(line.text) {
		if err := MooshStrings(line, nil, index, 1, true); err != nil {
			return err
		}
		c.Modified = true
		return nil
	}
	next := line.Next(c)
	if next == nil {
		return nil
	}
	line.text = append(line.text, next.text...)
	c.FreeLine(next)
	c.Modified = true
	return nil
}

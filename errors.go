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

package boxen

import "errors"

var (
	// ErrBufferOverflow names the condition in which the input
	// decoder's pending byte buffer exceeds its small cap without ever
	// resolving to a key, CSI, or mouse event. The decoder logs that
	// condition with the same text and discards the buffer; Feed has
	// no error result, so this value is not returned by it.
	ErrBufferOverflow = errors.New("boxen: input buffer overflow")

	// ErrGeometryTooSmall is returned by a split that would leave a
	// sub-box with fewer than MinSplitCells along the split axis.
	ErrGeometryTooSmall = errors.New("boxen: split would leave box too small")

	// ErrReadOnly is returned when an edit is attempted against a
	// Content marked read-only.
	ErrReadOnly = errors.New("boxen: content is read-only")

	// ErrNoSuchCommand is returned when executeLine or a keymap
	// binding names a command absent from the context's command
	// table.
	ErrNoSuchCommand = errors.New("boxen: no such command")
)

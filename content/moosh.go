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

package content

// MooshStrings is the general-purpose splice used for every insert,
// delete, overwrite, and append against a single line's text:
//
//	moosh == nil        a deletion
//	length == 0         a simple insertion
//	length < len(moosh)  delete some, insert moosh
//	length == len(moosh) an exact overwrite
//	length > len(moosh)  delete a lot, insert moosh
//
// insert controls whether the bytes at index are pushed aside
// (true) or overwritten in place (false, clamped so the splice never
// runs past the end of the line).
func MooshStrings(line *Line, moosh []byte, index, length int, insert bool) error {
	if index < 0 {
		index = 0
	}
	if index > len(line.text) {
		index = len(line.text)
	}
	if length < 0 {
		length = 0
	}
	end := index + length
	if end > len(line.text) {
		end = len(line.text)
	}

	if insert {
		out := make([]byte, 0, index+len(moosh)+(len(line.text)-end))
		out = append(out, line.text[:index]...)
		out = append(out, moosh...)
		out = append(out, line.text[end:]...)
		line.text = out
		return nil
	}

	// Overwrite in place: moosh replaces at least len(moosh) bytes
	// (or up to the end of the line, whichever comes first).
	if end < index+len(moosh) {
		end = index + len(moosh)
		if end > len(line.text) {
			end = len(line.text)
		}
	}
	out := make([]byte, 0, len(line.text))
	out = append(out, line.text[:index]...)
	out = append(out, moosh...)
	if end < len(line.text) {
		out = append(out, line.text[end:]...)
	}
	line.text = out
	return nil
}

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

// Package charset transcodes the raw terminal byte stream between the
// locale's charset and UTF-8, the same job tcell's RegisterEncoding/
// GetEncoding pair and its encoding sub-package do for the screen
// backends: the InputDecoder and Renderer stay byte-oriented and never
// need to know the terminal isn't already running UTF-8.
package charset

import (
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var (
	mu        sync.Mutex
	encodings = map[string]encoding.Encoding{}
)

// Register associates name (a $LANG/$LC_CTYPE codeset, e.g.
// "ISO8859-15") with enc. Registrations are cumulative; a later call
// for the same name replaces the earlier one.
func Register(name string, enc encoding.Encoding) {
	mu.Lock()
	defer mu.Unlock()
	encodings[strings.ToUpper(name)] = enc
}

// Lookup returns the registered encoding for name, or nil if name is
// unregistered, is the empty string, or names UTF-8/US-ASCII (which
// need no transcoding at all).
func Lookup(name string) encoding.Encoding {
	mu.Lock()
	defer mu.Unlock()
	return encodings[strings.ToUpper(name)]
}

// Codeset extracts the $codeset portion of a POSIX locale string such
// as "en_AU.ISO8859-15@euro" or "en_AU.UTF-8", returning "" for "C" or
// "POSIX" (the portable character set, effectively US-ASCII) and for
// a locale string with no "." component.
func Codeset(locale string) string {
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ""
	}
	dot := strings.IndexByte(locale, '.')
	if dot < 0 {
		return ""
	}
	codeset := locale[dot+1:]
	if at := strings.IndexByte(codeset, '@'); at >= 0 {
		codeset = codeset[:at]
	}
	return codeset
}

// DecoderFor returns a transform.Transformer that converts bytes read
// from the terminal in the named codeset into UTF-8, or nil if no
// transcoding is needed (UTF-8, US-ASCII, or an unregistered name:
// falling back to passing bytes through unchanged, exactly as a
// locale boxes.c doesn't recognise would under the original's C
// library conventions).
func DecoderFor(codeset string) transform.Transformer {
	enc := Lookup(codeset)
	if enc == nil {
		return nil
	}
	return enc.NewDecoder()
}

// EncoderFor returns the inverse of DecoderFor, used when writing
// rendered output back out through a non-UTF-8 terminal.
func EncoderFor(codeset string) transform.Transformer {
	enc := Lookup(codeset)
	if enc == nil {
		return nil
	}
	return enc.NewEncoder()
}

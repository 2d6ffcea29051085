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

// KeyEntry is a single byte-sequence-to-name mapping in the KeyTable.
// Sequences that begin with the CSI introducer are stored with the
// canonical single byte 0x9B standing in for "ESC [" (see
// canonicalizeCSI), matching § 4.1.
type KeyEntry struct {
	Bytes []byte
	Name  string
}

const (
	// csiByte is the canonical single-byte CSI introducer (0x9B) that
	// both "ESC [" and the UTF-8 encoding of U+009B collapse to
	// before table lookup.
	csiByte = 0x9B
	// ss3Lead0 and ss3Lead1 are the two bytes of the SS3 introducer,
	// ESC 'O'.
	ss3Lead0 = 0x1B
	ss3Lead1 = 'O'
)

var csiNavigation = []struct {
	final byte
	name  string
}{
	{'A', "Up"}, {'B', "Down"}, {'C', "Right"}, {'D', "Left"},
	{'H', "Home"}, {'F', "End"}, {'Z', "BackTab"},
}

var csiTilde = []struct {
	p    int
	name string
}{
	{1, "Home"}, {2, "Insert"}, {3, "Delete"}, {4, "End"},
	{5, "PgUp"}, {6, "PgDn"},
	{11, "F1"}, {12, "F2"}, {13, "F3"}, {14, "F4"}, {15, "F5"},
	{17, "F6"}, {18, "F7"}, {19, "F8"}, {20, "F9"}, {21, "F10"},
	{23, "F11"}, {24, "F12"},
}

var ss3Keys = []struct {
	final byte
	name  string
}{
	{'A', "Up"}, {'B', "Down"}, {'C', "Right"}, {'D', "Left"},
	{'H', "Home"}, {'F', "End"},
	{'P', "F1"}, {'Q', "F2"}, {'R', "F3"}, {'S', "F4"},
}

// legacyEscDigit maps "Esc <digit>" (the pre-CSI VT100 convention) to
// F1..F10, per § 4.1's "Legacy Esc <digit> mappings" note.
var legacyEscDigit = [10]string{
	"F10", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9",
}

// BuildKeyTable constructs the static KeyTable described in § 4.1. It
// is a function rather than a package-level literal so that tests can
// build independent copies without aliasing concerns.
func BuildKeyTable() []KeyEntry {
	var t []KeyEntry

	// C0 control bytes (0x01..0x1F except ESC) as "^A".."^_".
	for c := byte(1); c <= 0x1F; c++ {
		if c == 0x1B {
			continue
		}
		t = append(t, KeyEntry{Bytes: []byte{c}, Name: "^" + string(rune('A'+int(c)-1))})
	}

	// Single-byte specials.
	t = append(t, KeyEntry{Bytes: []byte{0x08}, Name: "Del"})
	t = append(t, KeyEntry{Bytes: []byte{0x09}, Name: "Tab"})
	t = append(t, KeyEntry{Bytes: []byte{0x0A}, Name: "Return"})
	t = append(t, KeyEntry{Bytes: []byte{0x0D}, Name: "Return"})
	t = append(t, KeyEntry{Bytes: []byte{0x7F}, Name: "BS"})

	// CSI-introduced navigation keys (single final byte, no params).
	for _, k := range csiNavigation {
		t = append(t, KeyEntry{Bytes: []byte{csiByte, k.final}, Name: k.name})
		// Shifted variant via the ";2" parameter form.
		t = append(t, KeyEntry{
			Bytes: []byte{csiByte, '1', ';', '2', k.final},
			Name:  "Shift-" + k.name,
		})
	}

	// CSI-introduced keys with a "<n>~" parameter form.
	for _, k := range csiTilde {
		t = append(t, KeyEntry{Bytes: csiTildeBytes(k.p), Name: k.name})
	}

	// SS3 sequences (application-mode arrow/function keys).
	for _, k := range ss3Keys {
		t = append(t, KeyEntry{Bytes: []byte{ss3Lead0, ss3Lead1, k.final}, Name: k.name})
	}

	// Legacy "Esc <digit>" mappings for F1..F10.
	for d := 0; d < 10; d++ {
		t = append(t, KeyEntry{Bytes: []byte{0x1B, byte('0' + d)}, Name: legacyEscDigit[d]})
	}

	return t
}

func csiTildeBytes(p int) []byte {
	digits := []byte{}
	if p == 0 {
		digits = []byte{'0'}
	}
	for n := p; n > 0; n /= 10 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
	}
	b := []byte{csiByte}
	b = append(b, digits...)
	b = append(b, '~')
	return b
}

// matchStatus is the result of comparing a pending buffer against the
// KeyTable.
type matchStatus int

const (
	noMatch matchStatus = iota
	ambiguous
	exactMatch
)

// lookupKey compares buf's leading bytes against the table, preferring
// the longest entry that is an exact prefix match of buf; between
// entries of equal length the later one wins, so the single-byte
// specials (Tab, Return, Del) take precedence over the generic "^I",
// "^M", "^H" names for the same bytes. If no entry
// matches as a complete prefix, it reports whether buf is itself a
// strict prefix of some longer entry (ambiguous, wait for more bytes)
// or matches nothing at all (noMatch, the lead byte is a literal).
func lookupKey(table []KeyEntry, buf []byte) (name string, consumed int, status matchStatus) {
	bestLen := -1
	for _, e := range table {
		if len(buf) >= len(e.Bytes) && bytesEqual(buf[:len(e.Bytes)], e.Bytes) {
			if len(e.Bytes) >= bestLen {
				bestLen = len(e.Bytes)
				name = e.Name
			}
		}
	}
	if bestLen >= 0 {
		return name, bestLen, exactMatch
	}
	for _, e := range table {
		if len(e.Bytes) > len(buf) && bytesHasPrefix(e.Bytes, buf) {
			return "", 0, ambiguous
		}
	}
	return "", 0, noMatch
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func bytesHasPrefix(s, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	return bytesEqual(s[:len(prefix)], prefix)
}

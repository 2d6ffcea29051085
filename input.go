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

// This file implements the generic VT input processor described in
// § 4.2 of the specification: it reconciles the lone-Escape timeout,
// CSI canonicalization and parameter parsing, and mouse reports, and
// chains resolved key names across a single read into one KeysEvent.
// It is modeled on tcell's input.go event-driven state machine, with
// byte-oriented (not UTF-8 rune) buffering per the spec's non-goal on
// grapheme handling.
package boxen

import (
	"log"
	"strconv"
	"strings"
	"sync"
	"time"
)

// PollTimeout is the inter-byte wait the owning loop should use
// before calling Tick; see § 4.2 step 2-3.
const PollTimeout = 100 * time.Millisecond

// MaxPendingBytes is the input buffer's overflow threshold (§ 4.1:
// "the table is small... the buffer is ≈20 bytes").
const MaxPendingBytes = 20

// Writer is the minimal output sink the decoder needs to emit the
// resize size-probe escape chord (§ 4.3). io.Writer satisfies it.
type Writer interface {
	Write([]byte) (int, error)
}

// InputDecoder turns a raw byte stream into KeysEvent, CsiEvent, and
// MouseEvent values posted to its event channel. It is not safe for
// concurrent use from more than one goroutine at a time other than
// the implicit serialization Feed/Tick/RequestResize provide via
// their internal mutex.
type InputDecoder struct {
	mu sync.Mutex

	table []KeyEntry
	out   Writer
	evch  chan<- Event

	buf        []byte // pending unresolved bytes
	translated string // names and literal bytes resolved so far within this read
	sawNamed   bool   // true once any KeyTable name has contributed to translated
	keyTime    time.Time

	resizePending bool
	rows, cols    int // recorded by SetSize; not read by the decoder
}

// NewInputDecoder creates a decoder that writes resize-probe escapes
// to out and posts decoded events to evch.
func NewInputDecoder(out Writer, evch chan<- Event) *InputDecoder {
	return &InputDecoder{
		table:   BuildKeyTable(),
		out:     out,
		evch:    evch,
		keyTime: time.Now(),
	}
}

// SetSize records the terminal size. Mouse reports are not clipped to
// it; they are posted with their raw bytes (see MouseEvent).
func (d *InputDecoder) SetSize(cols, rows int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cols, d.rows = cols, rows
}

// Waiting reports whether the decoder is sitting on an unresolved
// prefix (ambiguous table match, or a CSI/mouse sequence still
// missing its final byte).
func (d *InputDecoder) Waiting() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buf) > 0
}

// RequestResize sets the sticky resize flag; the next Tick call
// transmits the cursor-position probe (§ 4.3).
func (d *InputDecoder) RequestResize() {
	d.mu.Lock()
	d.resizePending = true
	d.mu.Unlock()
}

// Feed appends newly read bytes and processes as much of the pending
// buffer as is currently resolvable.
func (d *InputDecoder) Feed(b []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buf = append(d.buf, b...)
	d.keyTime = time.Now()
	d.drain()
	if len(d.buf) > MaxPendingBytes {
		log.Printf("boxen: input buffer overflow, discarding %q", d.buf)
		d.buf = nil
		d.flush()
	}
}

// Tick should be called after PollTimeout has elapsed with no new
// input. It resolves a lone pending Escape into the Escape key, emits
// the resize probe if one was requested, and otherwise does nothing
// observable.
func (d *InputDecoder) Tick() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.resizePending {
		d.emitResizeProbe()
		d.resizePending = false
	}

	if len(d.buf) == 1 && d.buf[0] == 0x1B {
		d.translated += "^["
		d.sawNamed = true
		d.buf = nil
		d.flush()
		return
	}
	d.post(NewTimerEvent())
}

func (d *InputDecoder) emitResizeProbe() {
	if d.out == nil {
		return
	}
	// Save cursor, move to (999,999), request cursor position report,
	// restore cursor. These are the only escapes the probe emits
	// (§ 6).
	_, _ = d.out.Write([]byte("\x1b[s\x1b[999C\x1b[999B\x1b[6n\x1b[u"))
}

// drain repeatedly canonicalizes and matches the pending buffer,
// consuming whole tokens (a resolved key name, a complete CSI/mouse
// sequence, or a single literal byte) until nothing further can be
// resolved without more input.
func (d *InputDecoder) drain() {
	for len(d.buf) > 0 {
		canonicalizeCSI(&d.buf)
		if len(d.buf) == 0 {
			break
		}
		name, consumed, status := lookupKey(d.table, d.buf)
		switch status {
		case exactMatch:
			d.translated += name
			d.sawNamed = true
			d.buf = d.buf[consumed:]
		case ambiguous:
			return // wait for more bytes; nothing lost, state is in d.translated/d.buf
		default: // noMatch
			if d.buf[0] == csiByte {
				if done := d.tryCSI(); !done {
					return // waiting for more bytes
				}
				continue
			}
			d.translated += string(d.buf[0])
			d.buf = d.buf[1:]
		}
	}
	d.flush()
}

// tryCSI attempts to consume one complete CSI (or X10 mouse) sequence
// from the front of d.buf. It returns false if more bytes are needed.
func (d *InputDecoder) tryCSI() bool {
	buf := d.buf
	if len(buf) >= 2 && buf[1] == 'M' {
		if len(buf) < 5 {
			return false
		}
		d.flushTranslatedSoFar()
		ev := NewMouseEvent(buf[:5])
		d.buf = buf[5:]
		d.post(ev)
		return true
	}

	idx := 1
	var private byte
	if idx < len(buf) && strings.IndexByte("<=>?", buf[idx]) >= 0 {
		private = buf[idx]
		idx++
	}
	paramStart := idx
	for idx < len(buf) && ((buf[idx] >= '0' && buf[idx] <= '9') || buf[idx] == ';') {
		idx++
	}
	paramBytes := buf[paramStart:idx]
	intermStart := idx
	for idx < len(buf) && buf[idx] >= 0x21 && buf[idx] <= 0x2F {
		idx++
	}
	intermBytes := buf[intermStart:idx]
	if idx >= len(buf) {
		return false // final byte not arrived yet
	}
	final := buf[idx]
	if final < 0x40 || final > 0x7E {
		// Malformed; swallow the whole thing rather than block forever.
		d.buf = buf[idx+1:]
		return true
	}

	params := parseCSIParams(paramBytes)
	cmd := ""
	if private != 0 {
		cmd += string(private)
	}
	cmd += string(intermBytes) + string(final)

	d.flushTranslatedSoFar()
	ev := NewCsiEvent(cmd, params)
	d.buf = buf[idx+1:]
	d.post(ev)
	return true
}

// flushTranslatedSoFar emits any key names chained together before a
// CSI/mouse event interrupted the run, preserving delivery order
// (§ 5: "a CSI event is always delivered before the key event for any
// bytes that arrive afterward").
func (d *InputDecoder) flushTranslatedSoFar() {
	if d.translated != "" {
		d.post(NewKeysEvent(d.translated, d.sawNamed))
		d.translated = ""
		d.sawNamed = false
	}
}

func (d *InputDecoder) flush() {
	d.flushTranslatedSoFar()
}

func (d *InputDecoder) post(ev Event) {
	if d.evch != nil {
		d.evch <- ev
	}
}

// canonicalizeCSI collapses a leading "ESC [" or the UTF-8 encoding of
// U+009B (0xC2 0x9B) to the single canonical byte 0x9B, per § 4.1.
func canonicalizeCSI(buf *[]byte) {
	b := *buf
	if len(b) >= 2 && b[0] == 0x1B && b[1] == '[' {
		*buf = append([]byte{csiByte}, b[2:]...)
	} else if len(b) >= 2 && b[0] == 0xC2 && b[1] == 0x9B {
		*buf = append([]byte{csiByte}, b[2:]...)
	}
}

// parseCSIParams splits a CSI parameter byte run on ';' and parses
// each as a decimal integer; an absent parameter decodes to -1
// (§ 4.2 step 7a).
func parseCSIParams(b []byte) []int {
	if len(b) == 0 {
		return nil
	}
	parts := strings.Split(string(b), ";")
	params := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			params = append(params, -1)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			params = append(params, -1)
			continue
		}
		params = append(params, n)
	}
	return params
}

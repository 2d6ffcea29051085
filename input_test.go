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

import (
	"testing"
	"time"
)

// nullWriter discards the resize probe bytes; tests only care that it
// was attempted.
type nullWriter struct{ last []byte }

func (w *nullWriter) Write(b []byte) (int, error) {
	w.last = append([]byte(nil), b...)
	return len(b), nil
}

func newTestDecoder() (*InputDecoder, chan Event, *nullWriter) {
	ch := make(chan Event, 16)
	w := &nullWriter{}
	return NewInputDecoder(w, ch), ch, w
}

func drainEvents(ch chan Event) []Event {
	var evs []Event
	for {
		select {
		case ev := <-ch:
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

// S1: a lone Escape, with nothing following before the poll timeout,
// resolves to the named key "^[".
func TestScenarioLoneEscape(t *testing.T) {
	d, ch, _ := newTestDecoder()
	d.Feed([]byte{0x1B})
	if !d.Waiting() {
		t.Fatal("expected decoder to be waiting on a lone Escape")
	}
	d.Tick()
	evs := drainEvents(ch)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ke, ok := evs[0].(*KeysEvent)
	if !ok {
		t.Fatalf("event type = %T, want *KeysEvent", evs[0])
	}
	if ke.Payload != "^[" || !ke.IsTranslated {
		t.Errorf("got Payload=%q IsTranslated=%v, want \"^[\",true", ke.Payload, ke.IsTranslated)
	}
}

// S2: ESC [ A (an arrow key) resolves to the named key "Up" without
// waiting for a timeout, since the table match is exact and
// unambiguous once both bytes arrive.
func TestScenarioArrowKey(t *testing.T) {
	d, ch, _ := newTestDecoder()
	d.Feed([]byte{0x1B, '[', 'A'})
	if d.Waiting() {
		t.Fatal("decoder should have fully resolved the arrow key")
	}
	evs := drainEvents(ch)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ke, ok := evs[0].(*KeysEvent)
	if !ok {
		t.Fatalf("event type = %T, want *KeysEvent", evs[0])
	}
	if ke.Payload != "Up" || !ke.IsTranslated {
		t.Errorf("got Payload=%q IsTranslated=%v, want \"Up\",true", ke.Payload, ke.IsTranslated)
	}
}

// S3: a cursor-position report (CSI 24;80R), as produced by the resize
// probe, is delivered as a CsiEvent with two parsed parameters.
func TestScenarioCursorPositionReport(t *testing.T) {
	d, ch, _ := newTestDecoder()
	d.Feed([]byte("\x1b[24;80R"))
	evs := drainEvents(ch)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ce, ok := evs[0].(*CsiEvent)
	if !ok {
		t.Fatalf("event type = %T, want *CsiEvent", evs[0])
	}
	if ce.Command != "R" || ce.Count != 2 {
		t.Fatalf("got Command=%q Count=%d, want \"R\",2", ce.Command, ce.Count)
	}
	if ce.Params[0] != 24 || ce.Params[1] != 80 {
		t.Errorf("got Params=%v, want [24 80]", ce.Params)
	}
}

// A named key chained with trailing literal bytes in the same read is
// delivered as a single KeysEvent marked translated, with nothing
// dropped.
func TestMixedNamedAndLiteralSingleEvent(t *testing.T) {
	d, ch, _ := newTestDecoder()
	d.Feed([]byte{0x09, 'h', 'i'}) // Tab, then literal "hi"
	evs := drainEvents(ch)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ke := evs[0].(*KeysEvent)
	if ke.Payload != "Tabhi" || !ke.IsTranslated {
		t.Errorf("got Payload=%q IsTranslated=%v, want \"Tabhi\",true", ke.Payload, ke.IsTranslated)
	}
}

// Purely literal input produces a KeysEvent with IsTranslated false.
func TestLiteralOnlyNotTranslated(t *testing.T) {
	d, ch, _ := newTestDecoder()
	d.Feed([]byte("abc"))
	evs := drainEvents(ch)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ke := evs[0].(*KeysEvent)
	if ke.Payload != "abc" || ke.IsTranslated {
		t.Errorf("got Payload=%q IsTranslated=%v, want \"abc\",false", ke.Payload, ke.IsTranslated)
	}
}

// A literal byte read before a lone Escape that is only resolved on
// the next Tick must not be lost (regression: the original drain loop
// discarded locally-buffered literal bytes on an ambiguous exit).
func TestLiteralBeforeLoneEscapeNotLost(t *testing.T) {
	d, ch, _ := newTestDecoder()
	d.Feed([]byte{'a', 0x1B}) // one read: 'a' resolves, then drain stops on the Escape
	if !d.Waiting() {
		t.Fatal("expected decoder to be waiting on the lone Escape")
	}
	d.Tick()
	evs := drainEvents(ch)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ke := evs[0].(*KeysEvent)
	if ke.Payload != "a^[" {
		t.Errorf("got Payload=%q, want \"a^[\" (the 'a' must not be dropped)", ke.Payload)
	}
}

// A CSI/mouse event must be posted before any key names chained after
// it in the same read (§ 5 ordering guarantee).
func TestCsiOrderedBeforeTrailingKeys(t *testing.T) {
	d, ch, _ := newTestDecoder()
	buf := append([]byte("\x1b[24;80R"), 0x09) // CPR, then Tab
	d.Feed(buf)
	evs := drainEvents(ch)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}
	if _, ok := evs[0].(*CsiEvent); !ok {
		t.Errorf("evs[0] type = %T, want *CsiEvent", evs[0])
	}
	if _, ok := evs[1].(*KeysEvent); !ok {
		t.Errorf("evs[1] type = %T, want *KeysEvent", evs[1])
	}
}

// An X10 mouse report is delivered as a MouseEvent carrying exactly
// its five raw bytes.
func TestMouseReport(t *testing.T) {
	d, ch, _ := newTestDecoder()
	d.Feed([]byte{csiByte, 'M', 32 + 0, 32 + 10, 32 + 5})
	evs := drainEvents(ch)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	me, ok := evs[0].(*MouseEvent)
	if !ok {
		t.Fatalf("event type = %T, want *MouseEvent", evs[0])
	}
	if len(me.Raw) != 5 {
		t.Errorf("got %d raw bytes, want 5", len(me.Raw))
	}
}

// RequestResize causes the next Tick to write the cursor-position
// probe chord.
func TestRequestResizeEmitsProbeOnTick(t *testing.T) {
	d, _, w := newTestDecoder()
	d.RequestResize()
	d.Tick()
	if len(w.last) == 0 {
		t.Fatal("expected a resize probe to be written")
	}
	want := "\x1b[s\x1b[999C\x1b[999B\x1b[6n\x1b[u"
	if string(w.last) != want {
		t.Errorf("got probe %q, want %q", w.last, want)
	}
}

// Feeding more than MaxPendingBytes of an unresolvable sequence
// discards the buffer rather than growing without bound.
func TestOverflowDiscardsBuffer(t *testing.T) {
	d, ch, _ := newTestDecoder()
	// A CSI introducer followed by parameter digits and no final byte
	// never resolves.
	huge := make([]byte, MaxPendingBytes+5)
	for i := range huge {
		huge[i] = '1'
	}
	huge[0] = csiByte
	d.Feed(huge)
	if d.Waiting() {
		t.Error("expected buffer to be discarded after overflow, not left waiting")
	}
	_ = drainEvents(ch)
}

func TestPollTimeoutIsReasonable(t *testing.T) {
	if PollTimeout != 100*time.Millisecond {
		t.Errorf("PollTimeout = %v, want 100ms", PollTimeout)
	}
}

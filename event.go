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

import "time"

// Event is the common interface satisfied by everything the decoder
// posts to its event channel.
type Event interface {
	When() time.Time
}

// EventTime is embedded by every event to record its creation time.
type EventTime struct {
	t time.Time
}

// SetEventNow marks the event's creation time as now.
func (e *EventTime) SetEventNow() {
	e.t = time.Now()
}

// When returns the time the event was created.
func (e *EventTime) When() time.Time {
	return e.t
}

// KeysEvent is emitted whenever the decoder has something to deliver:
// the concatenation of resolved key names (e.g. "^X^C", "Up") and any
// literal bytes it could not translate, typed as fast as they arrived
// in one read. IsTranslated is true whenever at least one of those
// bytes resolved to a named key via the KeyTable.
type KeysEvent struct {
	EventTime
	Payload      string
	IsTranslated bool
}

// NewKeysEvent creates a KeysEvent with the current time.
func NewKeysEvent(payload string, isTranslated bool) *KeysEvent {
	ev := &KeysEvent{Payload: payload, IsTranslated: isTranslated}
	ev.SetEventNow()
	return ev
}

// CsiEvent is a fully parsed Control Sequence Introducer: the private
// prefix (if any) concatenated with the intermediate bytes and the
// final byte, plus its decoded parameters. An absent parameter is
// encoded as -1, matching § 4.2 step 7.
type CsiEvent struct {
	EventTime
	Command string
	Params  []int
	Count   int
}

// NewCsiEvent creates a CsiEvent with the current time.
func NewCsiEvent(command string, params []int) *CsiEvent {
	ev := &CsiEvent{Command: command, Params: params, Count: len(params)}
	ev.SetEventNow()
	return ev
}

// MouseEvent carries the raw bytes of an X10-style CSI-M mouse
// report. The decoder does not interpret button/coordinate encoding;
// the consumer decides whether to accept or reject it.
type MouseEvent struct {
	EventTime
	Raw []byte
}

// NewMouseEvent creates a MouseEvent with the current time.
func NewMouseEvent(raw []byte) *MouseEvent {
	ev := &MouseEvent{Raw: append([]byte(nil), raw...)}
	ev.SetEventNow()
	return ev
}

// TimerEvent is posted on a poll timeout that resolved to nothing
// observable (buffer empty, or waiting on a sequence that is not a
// lone Escape). Consumers may ignore it.
type TimerEvent struct {
	EventTime
}

// NewTimerEvent creates a TimerEvent with the current time.
func NewTimerEvent() *TimerEvent {
	ev := &TimerEvent{}
	ev.SetEventNow()
	return ev
}

// EventResize describes a new terminal size. Neither the decoder nor
// package editor posts one: an accepted cursor-position report is
// handled directly by the editor's HandleCsi.
type EventResize struct {
	EventTime
	Width, Height int
}

// NewEventResize creates an EventResize with the current time.
func NewEventResize(w, h int) *EventResize {
	ev := &EventResize{Width: w, Height: h}
	ev.SetEventNow()
	return ev
}

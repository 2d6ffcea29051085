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

package editor

import "github.com/onefang/boxes"

// HandleEvent routes one decoded event: CSI events are offered to the
// ResizeCoordinator first, since an accepted resize report must never
// reach the Dispatcher as an ordinary key; everything else (KeysEvent,
// MouseEvent, TimerEvent) goes straight to the Dispatcher, which
// ignores what it doesn't understand. Processing stops, without
// error, once Quit has been invoked.
func (e *Editor) HandleEvent(ev boxen.Event) error {
	if !e.stillRunning {
		return nil
	}
	if csi, ok := ev.(*boxen.CsiEvent); ok {
		if e.HandleCsi(csi) {
			return nil
		}
	}
	if err := e.Dispatch(ev); err != nil {
		return err
	}
	if e.stillRunning {
		e.Redraw()
	}
	return nil
}

// Run drains events from evch, calling HandleEvent for each, until
// Quit is invoked or the channel is closed. It returns the first
// error HandleEvent reports, if any; the original's equivalent main
// loop treats most command errors (e.g. ErrNoSuchCommand) as
// non-fatal, so callers typically log and continue rather than
// propagate every error up through Run's return.
func (e *Editor) Run(evch <-chan boxen.Event) error {
	for e.stillRunning {
		ev, ok := <-evch
		if !ok {
			return nil
		}
		if err := e.HandleEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

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

// Package boxen decodes raw terminal input (ANSI/VT escape sequences,
// CSI parameters, mouse reports) into named key events, and exposes
// the sentinel errors and event types shared by the content, view,
// boxtree, context, dispatch, render, and editor packages that build
// the split-screen text-box engine on top of it.
package boxen

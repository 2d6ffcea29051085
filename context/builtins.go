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

package context

import (
	"github.com/onefang/boxes"
	"github.com/onefang/boxes/boxtree"
	"github.com/onefang/boxes/content"
)

// registerBuiltins populates a fresh Context with the command set
// every concrete emulation in contexts/ binds its keymaps to.
func registerBuiltins(c *Context) {
	c.AddCommand("leftChar", "Move left one character.", func(env Env, ev boxen.Event) error {
		env.View().MoveCursorRelative(-1, 0, 0, 0)
		return nil
	})
	c.AddCommand("rightChar", "Move right one character.", func(env Env, ev boxen.Event) error {
		env.View().MoveCursorRelative(1, 0, 0, 0)
		return nil
	})
	c.AddCommand("upLine", "Move up one line.", func(env Env, ev boxen.Event) error {
		env.View().MoveCursorRelative(0, -1, 0, 0)
		return nil
	})
	c.AddCommand("downLine", "Move down one line.", func(env Env, ev boxen.Event) error {
		env.View().MoveCursorRelative(0, 1, 0, 0)
		return nil
	})
	c.AddCommand("upPage", "Move up one page.", func(env Env, ev boxen.Event) error {
		v := env.View()
		h := v.H - 1
		v.MoveCursorRelative(0, -h, 0, -h)
		return nil
	})
	c.AddCommand("downPage", "Move down one page.", func(env Env, ev boxen.Event) error {
		v := env.View()
		h := v.H - 1
		v.MoveCursorRelative(0, h, 0, h)
		return nil
	})
	c.AddCommand("startOfLine", "Move to the start of the line.", func(env Env, ev boxen.Event) error {
		v := env.View()
		v.MoveCursorAbsolute(0, v.CY, 0, 0)
		return nil
	})
	c.AddCommand("endOfLine", "Move to the end of the line.", func(env Env, ev boxen.Event) error {
		v := env.View()
		v.MoveCursorAbsolute(v.OW, v.CY, 0, 0)
		return nil
	})

	c.AddCommand("backSpaceChar", "Delete the character before the cursor.", func(env Env, ev boxen.Event) error {
		v := env.View()
		if !v.MoveCursorRelative(-1, 0, 0, 0) {
			return nil
		}
		return v.Content.DeleteChar(v.Line, v.IX)
	})
	c.AddCommand("deleteChar", "Delete the character at the cursor.", func(env Env, ev boxen.Event) error {
		v := env.View()
		return v.Content.DeleteChar(v.Line, v.IX)
	})
	c.AddCommand("splitLine", "Split the line at the cursor (Return).", func(env Env, ev boxen.Event) error {
		v := env.View()
		if _, err := v.Content.SplitLine(v.Line, v.IX); err != nil {
			return err
		}
		v.MoveCursorAbsolute(0, v.CY+1, 0, 0)
		return nil
	})

	c.AddCommand("saveContent", "Write the current view's content to disk.", func(env Env, ev boxen.Event) error {
		return env.View().Content.SaveFile()
	})

	c.AddCommand("splitH", "Split the current box horizontally.", func(env Env, ev boxen.Event) error {
		newSub, err := boxtree.SplitBox(env.Box(), true, 0.5)
		if err != nil {
			return err
		}
		env.SetBox(newSub)
		return nil
	})
	c.AddCommand("splitV", "Split the current box vertically.", func(env Env, ev boxen.Event) error {
		newSub, err := boxtree.SplitBox(env.Box(), false, 0.5)
		if err != nil {
			return err
		}
		env.SetBox(newSub)
		return nil
	})
	c.AddCommand("deleteBox", "Delete the current box.", func(env Env, ev boxen.Event) error {
		box := env.Box()
		parent := box.Parent
		if err := boxtree.DeleteBox(box); err != nil {
			return err
		}
		if parent != nil {
			env.SetBox(parent)
		}
		return nil
	})
	c.AddCommand("switchBoxes", "Switch focus to the next box.", func(env Env, ev boxen.Event) error {
		env.SetBox(boxtree.NextLeaf(env.RootBox(), env.Box()))
		return nil
	})

	c.AddCommand("switchMode", "Toggle between box editing and the command line.", func(env Env, ev boxen.Event) error {
		env.SetCommandMode(!env.InCommandMode())
		return nil
	})
	c.AddCommand("nextMode", "Cycle to the next mode within this context.", func(env Env, ev boxen.Event) error {
		env.SwitchMode(c.NextModeName(env.CurrentModeName()))
		return nil
	})

	c.AddCommand("toggleOverwrite", "Toggle insert/overwrite typing mode.", func(env Env, ev boxen.Event) error {
		env.SetOverwrite(!env.Overwrite())
		return nil
	})

	c.AddCommand("historyPrev", "Recall the previous command-line history entry.", func(env Env, ev boxen.Event) error {
		return historyStep(env, 1)
	})
	c.AddCommand("historyNext", "Recall the next command-line history entry.", func(env Env, ev boxen.Event) error {
		return historyStep(env, -1)
	})

	c.AddCommand("executeLine", "Execute the command line's text.", func(env Env, ev boxen.Event) error {
		cl := env.CommandLine()
		line := string(cl.Line.Text())
		env.SetCommandMode(false)
		if line == "" {
			return nil
		}
		env.PushHistory(line)
		cmd, ok := c.Command(line)
		if !ok {
			return boxen.ErrNoSuchCommand
		}
		return cmd.Fn(env, ev)
	})
	c.AddCommand("quit", "Quit the editor.", func(env Env, ev boxen.Event) error {
		env.Quit()
		return nil
	})
	c.AddCommand("nop", "Do nothing.", func(env Env, ev boxen.Event) error { return nil })
}

// historyCursor tracks how far historyPrev/historyNext have walked
// back into a CommandLine's history, keyed by the Env instance: 1 is
// the newest entry, len(history) the oldest.
var historyCursor = map[Env]int{}

func historyStep(env Env, delta int) error {
	hist := env.History()
	if len(hist) == 0 {
		return nil
	}
	idx := historyCursor[env] + delta
	if idx < 1 {
		idx = 1
	}
	if idx > len(hist) {
		idx = len(hist)
	}
	historyCursor[env] = idx

	cl := env.CommandLine()
	entry := hist[len(hist)-idx]
	return content.MooshStrings(cl.Line, []byte(entry), 0, cl.Line.Len(), true)
}

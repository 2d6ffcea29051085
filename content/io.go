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

import (
	"bufio"
	"os"
)

// LoadFile reads path into a new Content named after path,
// one Line per '\n'-terminated record. A missing file yields an empty,
// writable Content rather than an error, matching the original editor's
// "open to create" behaviour for a new file path.
func LoadFile(path string) (*Content, error) {
	c := New(path)
	c.Path = path

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		c.AddLine(nil, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// SaveFile writes the content's lines back to Path, one per line
// terminated with '\n'. It refuses to write a read-only content.
func (c *Content) SaveFile() error {
	return c.SaveAs(c.Path)
}

// SaveAs writes the content's lines to path and, on success, updates
// Path and clears the Modified flag.
func (c *Content) SaveAs(path string) error {
	if err := c.guardWritable(); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for line := c.First(); line != nil; line = line.Next(c) {
		if _, err := w.Write(line.text); err != nil {
			return err
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	c.Path = path
	c.Modified = false
	return nil
}

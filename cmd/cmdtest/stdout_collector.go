/*
Copyright 2026 The sql-aide Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cmdtest captures what commands print on the process streams.
package cmdtest

import (
	"bytes"
	"io"
	"os"
)

// Collector swaps a process stream for a pipe and returns what was written
// to it in between Start and Stop.
type Collector struct {
	stream **os.File
	saved  *os.File
	r, w   *os.File
	out    chan string
}

// Stdout collects os.Stdout.
func Stdout() *Collector {
	return &Collector{stream: &os.Stdout}
}

// Stderr collects os.Stderr.
func Stderr() *Collector {
	return &Collector{stream: &os.Stderr}
}

// Start ...
func (c *Collector) Start() error {
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	c.r, c.w = r, w
	c.saved = *c.stream
	*c.stream = w

	// drain concurrently so large outputs can't fill the pipe
	c.out = make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		c.out <- buf.String()
	}()
	return nil
}

// Stop restores the stream and returns the collected output.
func (c *Collector) Stop() string {
	c.w.Close()
	*c.stream = c.saved
	out := <-c.out
	c.r.Close()
	return out
}

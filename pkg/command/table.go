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

package command

import (
	"strings"

	"github.com/TDress/sql-aide/pkg/config"
)

// descriptionGap separates the longest command name from its description.
const descriptionGap = 5

// Table holds the compiled commands of a configuration in configuration
// order. It is built once and never changes.
type Table struct {
	commands []*Command
	index    map[string]*Command
}

// CompileConfiguration parses, validates and compiles a command
// configuration. Any invalid entry fails the whole configuration and no
// table is returned.
func CompileConfiguration(data []byte, opts *Options) (*Table, error) {
	cmds, err := config.ParseCommands(data)
	if err != nil {
		return nil, err
	}
	return CompileCommands(cmds, opts)
}

// LoadTable reads and compiles the command configuration in filename.
func LoadTable(filename string, opts *Options) (*Table, error) {
	cmds, err := config.LoadCommands(filename)
	if err != nil {
		return nil, err
	}
	return CompileCommands(cmds, opts)
}

// CompileCommands validates every entry, then compiles them all.
func CompileCommands(cmds config.Commands, opts *Options) (*Table, error) {
	if err := config.ValidateCommands(cmds); err != nil {
		return nil, err
	}

	t := &Table{
		commands: make([]*Command, 0, len(cmds)),
		index:    make(map[string]*Command, len(cmds)),
	}
	for i := range cmds {
		c, err := Compile(cmds[i].Name, &cmds[i].Spec, opts)
		if err != nil {
			return nil, err
		}
		t.commands = append(t.commands, c)
		t.index[c.name] = c
	}
	return t, nil
}

// Get returns the command called name.
func (t *Table) Get(name string) (*Command, bool) {
	c, ok := t.index[name]
	return c, ok
}

// Commands returns the commands in configuration order.
func (t *Table) Commands() []*Command {
	cmds := make([]*Command, len(t.commands))
	copy(cmds, t.commands)
	return cmds
}

func (t *Table) Len() int {
	return len(t.commands)
}

// Descriptions lists one command per line, names padded so that the
// descriptions line up.
func (t *Table) Descriptions() string {
	return FormatDescriptions(t.commands)
}

// Describer is a named, described item of a command listing.
type Describer interface {
	Name() string
	Description() string
}

// FormatDescriptions lists items one per line, each name padded to the
// longest one plus a fixed gap.
func FormatDescriptions[D Describer](items []D) string {
	width := 0
	for _, d := range items {
		width = max(width, len(d.Name()))
	}

	var sb strings.Builder
	for _, d := range items {
		sb.WriteString(d.Name())
		sb.WriteString(strings.Repeat(" ", width-len(d.Name())+descriptionGap))
		sb.WriteString(d.Description())
		sb.WriteString("\n")
	}
	return sb.String()
}

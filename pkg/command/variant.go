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
	"github.com/TDress/sql-aide/pkg/config"
	"github.com/TDress/sql-aide/pkg/placeholder"
)

// Kind tells how a command runs.
type Kind int

const (
	KindRawSQL Kind = iota
	KindStoredProcedure
	KindPipedProcedure
)

func (k Kind) String() string {
	switch k {
	case KindRawSQL:
		return "sql"
	case KindStoredProcedure:
		return "procedure"
	case KindPipedProcedure:
		return "piped procedure"
	}
	return "unknown"
}

// Variant is the executable form of a command specification. It is one of
// *RawSQL, *StoredProcedure or *PipedProcedure.
type Variant interface {
	Kind() Kind
	// CLIArgs returns the names of the arguments given on the command line.
	CLIArgs() []string
}

// RawSQL runs a query template after filling in its placeholders.
type RawSQL struct {
	SQL string
}

func (*RawSQL) Kind() Kind { return KindRawSQL }

func (v *RawSQL) CLIArgs() []string {
	return placeholder.ParseArgNames(v.SQL)
}

// StoredProcedure calls a procedure with the command line values bound to
// its arguments in order.
type StoredProcedure struct {
	Name string
	Args []string
}

func (*StoredProcedure) Kind() Kind { return KindStoredProcedure }

func (v *StoredProcedure) CLIArgs() []string {
	return nonNil(v.Args)
}

// PipedProcedure calls a procedure whose arguments partly come from the
// results of upstream procedure calls.
type PipedProcedure struct {
	Name          string
	ProcedureArgs []string
	CommandArgs   []string
	Rules         []config.PipeRule
}

func (*PipedProcedure) Kind() Kind { return KindPipedProcedure }

func (v *PipedProcedure) CLIArgs() []string {
	return nonNil(v.CommandArgs)
}

// variantOf decides the variant of a validated specification.
func variantOf(spec *config.CommandSpec) Variant {
	switch {
	case spec.IsPiped():
		return &PipedProcedure{
			Name:          spec.ProcedureName,
			ProcedureArgs: clone(spec.ProcedureArgs),
			CommandArgs:   clone(spec.CommandArgs),
			Rules:         cloneRules(spec.ArgPipeMap),
		}
	case spec.IsStoredProcedure():
		return &StoredProcedure{
			Name: spec.ProcedureName,
			Args: clone(spec.ProcedureArgs),
		}
	default:
		return &RawSQL{SQL: spec.SQL}
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return clone(s)
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

func cloneRules(rules []config.PipeRule) []config.PipeRule {
	c := make([]config.PipeRule, len(rules))
	for i, r := range rules {
		r.PipeFromParams = clone(r.PipeFromParams)
		c[i] = r
	}
	return c
}

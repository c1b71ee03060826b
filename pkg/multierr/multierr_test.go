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

package multierr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type entryErr struct {
	entry string
}

func (e *entryErr) Error() string {
	return "invalid entry " + e.entry
}

var errUnrelated = errors.New("unrelated")

func TestMultiErrCollectsBatch(t *testing.T) {
	first := &entryErr{entry: "one"}
	second := errors.New("two is missing")
	third := &entryErr{entry: "three"}

	merr := NewMultiErr()
	require.Nil(t, merr.Reduce())

	merr.Append(first).
		Append(nil).
		Append(second).
		Append(third)

	err := merr.Reduce()
	require.Equal(t, merr, err)
	require.Len(t, merr.Unwrap(), 3)
	require.Equal(t, "invalid entry one\ntwo is missing\ninvalid entry three", err.Error())

	require.ErrorIs(t, err, first)
	require.ErrorIs(t, err, second)
	require.ErrorIs(t, err, third)
	require.NotErrorIs(t, err, errUnrelated)

	var target *entryErr
	require.ErrorAs(t, err, &target)
	require.Equal(t, "one", target.entry)
}

func TestMultiErrReduceSingle(t *testing.T) {
	single := &entryErr{entry: "only"}
	require.Equal(t, single, NewMultiErr().Append(single).Reduce())
}

func TestMultiErrAsMiss(t *testing.T) {
	merr := NewMultiErr().Append(errUnrelated).Append(errors.New("other"))

	var target *entryErr
	require.False(t, errors.As(merr.Reduce(), &target))
}

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

package logger

import (
	"errors"
	"os"
	"path/filepath"
)

func setup(file string) (out *os.File, err error) {
	if _, err = os.Stat(filepath.Dir(file)); os.IsNotExist(err) {
		if err = os.MkdirAll(filepath.Dir(file), os.FileMode(0755)); err != nil {
			return nil, errors.New("unable to create log folder")
		}
	}
	out, err = os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.New("unable to create log file")
	}
	return out, nil
}

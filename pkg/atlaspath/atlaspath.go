/*
 *     Copyright 2025 The Atlas Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package atlaspath

import (
	"io/fs"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Atlaspath is the interface used for init project path.
type Atlaspath interface {
	WorkHome() string
	WorkHomeMode() fs.FileMode
	LogDir() string
}

// Atlaspath provides init project path function.
type atlaspath struct {
	workHome     string
	workHomeMode fs.FileMode
	logDir       string
}

// Cache of the atlaspath.
var cache struct {
	sync.Once
	d   *atlaspath
	err *multierror.Error
}

// Option is a functional option for configuring the atlaspath.
type Option func(d *atlaspath)

// WithWorkHome set the workhome directory.
func WithWorkHome(dir string) Option {
	return func(d *atlaspath) {
		d.workHome = dir
	}
}

// WithWorkHomeMode sets the workHome directory mode.
func WithWorkHomeMode(mode fs.FileMode) Option {
	return func(d *atlaspath) {
		d.workHomeMode = mode
	}
}

// WithLogDir set the log directory.
func WithLogDir(dir string) Option {
	return func(d *atlaspath) {
		d.logDir = dir
	}
}

// New returns a new atlaspath interface.
func New(options ...Option) (Atlaspath, error) {
	cache.Do(func() {
		d := &atlaspath{
			workHome:     DefaultWorkHome,
			workHomeMode: DefaultWorkHomeMode,
			logDir:       DefaultLogDir,
		}

		for _, opt := range options {
			opt(d)
		}

		// Create workhome directory.
		if err := os.MkdirAll(d.workHome, d.workHomeMode); err != nil {
			cache.err = multierror.Append(cache.err, err)
		}

		// Create log directory.
		if err := os.MkdirAll(d.logDir, fs.FileMode(0700)); err != nil {
			cache.err = multierror.Append(cache.err, err)
		}

		cache.d = d
	})

	if cache.err.ErrorOrNil() != nil {
		return nil, cache.err
	}

	d := *cache.d
	return &d, nil
}

func (d *atlaspath) WorkHome() string {
	return d.workHome
}

func (d *atlaspath) WorkHomeMode() fs.FileMode {
	return d.workHomeMode
}

func (d *atlaspath) LogDir() string {
	return d.logDir
}

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
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
		expect  func(t *testing.T, options []Option)
	}{
		{
			name:    "new atlaspath failed",
			options: []Option{WithLogDir("")},
			expect: func(t *testing.T, options []Option) {
				assert := assert.New(t)
				cache.Once = sync.Once{}
				cache.err = &multierror.Error{}
				_, err := New(options...)
				assert.Error(err)
			},
		},
		{
			name: "new atlaspath",
			expect: func(t *testing.T, options []Option) {
				assert := assert.New(t)
				cache.Once = sync.Once{}
				cache.err = &multierror.Error{}
				workHome := filepath.Join(t.TempDir(), "home")
				logDir := filepath.Join(t.TempDir(), "logs")
				d, err := New(WithWorkHome(workHome), WithLogDir(logDir))
				assert.NoError(err)
				assert.Equal(d.WorkHome(), workHome)
				assert.Equal(d.WorkHomeMode(), DefaultWorkHomeMode)
				assert.Equal(d.LogDir(), logDir)
				assert.DirExists(workHome)
				assert.DirExists(logDir)
			},
		},
		{
			name: "new atlaspath by workHome and workHomeMode",
			expect: func(t *testing.T, options []Option) {
				assert := assert.New(t)
				cache.Once = sync.Once{}
				cache.err = &multierror.Error{}
				workHome := filepath.Join(t.TempDir(), "home")
				d, err := New(WithWorkHome(workHome), WithWorkHomeMode(os.FileMode(0755)), WithLogDir(filepath.Join(t.TempDir(), "logs")))
				assert.NoError(err)
				assert.Equal(d.WorkHome(), workHome)
				assert.Equal(d.WorkHomeMode(), os.FileMode(0755))
			},
		},
		{
			name: "new atlaspath by logDir",
			expect: func(t *testing.T, options []Option) {
				assert := assert.New(t)
				cache.Once = sync.Once{}
				cache.err = &multierror.Error{}
				logDir := filepath.Join(t.TempDir(), "logs")
				d, err := New(WithWorkHome(filepath.Join(t.TempDir(), "home")), WithLogDir(logDir))
				assert.NoError(err)
				assert.Equal(d.LogDir(), logDir)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, tc.options)
		})
	}
}

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

package service

import "fmt"

// StateConflictError rejects a request that contradicts the current state
// of its resource, a cancel on a finished job or an edit outside a draft
// version. The error middleware renders it as 409 Conflict.
type StateConflictError struct {
	msg string
}

func NewStateConflictError(format string, args ...any) *StateConflictError {
	return &StateConflictError{msg: fmt.Sprintf(format, args...)}
}

func (e *StateConflictError) Error() string {
	return e.msg
}

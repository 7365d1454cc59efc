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

package job

import (
	logger "github.com/mapstack/atlas/internal/atlaslog"
)

// MachineryLogger is a machinery logger bridge to the job logger.
type MachineryLogger struct{}

// Print sends to logger.Info
func (m *MachineryLogger) Print(args ...interface{}) {
	logger.JobLogger.Info(args...)
}

// Printf sends to logger.Infof
func (m *MachineryLogger) Printf(format string, args ...interface{}) {
	logger.JobLogger.Infof(format, args...)
}

// Println sends to logger.Info
func (m *MachineryLogger) Println(args ...interface{}) {
	logger.JobLogger.Info(args...)
}

// Fatal sends to logger.Fatal
func (m *MachineryLogger) Fatal(args ...interface{}) {
	logger.JobLogger.Fatal(args...)
}

// Fatalf sends to logger.Fatalf
func (m *MachineryLogger) Fatalf(format string, args ...interface{}) {
	logger.JobLogger.Fatalf(format, args...)
}

// Fatalln sends to logger.Fatal
func (m *MachineryLogger) Fatalln(args ...interface{}) {
	logger.JobLogger.Fatal(args...)
}

// Panic sends to logger.Panic
func (m *MachineryLogger) Panic(args ...interface{}) {
	logger.JobLogger.Panic(args...)
}

// Panicf sends to logger.Panic
func (m *MachineryLogger) Panicf(format string, args ...interface{}) {
	logger.JobLogger.Panic(args...)
}

// Panicln sends to logger.Panic
func (m *MachineryLogger) Panicln(args ...interface{}) {
	logger.JobLogger.Panic(args...)
}

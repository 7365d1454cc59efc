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

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const (
	// JobStatusQueued is the initial status of a created job.
	JobStatusQueued = "queued"

	// JobStatusRunning is the status of a started job.
	JobStatusRunning = "running"

	// JobStatusCompleted is the terminal status of a succeeded job.
	JobStatusCompleted = "completed"

	// JobStatusFailed is the terminal status of a failed job.
	JobStatusFailed = "failed"

	// JobStatusCancelled is the terminal status of a cancelled job.
	JobStatusCancelled = "cancelled"
)

const (
	// JobLogLevelInfo is the info log level of a job log entry.
	JobLogLevelInfo = "info"

	// JobLogLevelWarn is the warn log level of a job log entry.
	JobLogLevelWarn = "warn"

	// JobLogLevelError is the error log level of a job log entry.
	JobLogLevelError = "error"
)

// JobStatuses is the set of valid job statuses.
var JobStatuses = []string{
	JobStatusQueued,
	JobStatusRunning,
	JobStatusCompleted,
	JobStatusFailed,
	JobStatusCancelled,
}

// IsTerminalJobStatus returns whether a status allows no further transition.
func IsTerminalJobStatus(status string) bool {
	switch status {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}

	return false
}

type Job struct {
	BaseModel
	TaskID      string     `gorm:"column:task_id;type:varchar(256);comment:machinery task id" json:"task_id"`
	Type        string     `gorm:"column:type;type:varchar(256);not null;index;comment:job type" json:"job_type"`
	Status      string     `gorm:"column:status;type:varchar(256);not null;default:'queued';index;comment:job status" json:"status"`
	Progress    int        `gorm:"column:progress;not null;default:0;comment:progress percent" json:"progress"`
	Message     string     `gorm:"column:message;type:varchar(1024);comment:last progress message" json:"message"`
	Result      JSONMap    `gorm:"column:result;comment:job result" json:"result"`
	Error       string     `gorm:"column:error;type:varchar(1024);comment:failure reason" json:"error"`
	Logs        LogEntries `gorm:"column:logs;comment:job log trail" json:"logs"`
	ProjectID   uint       `gorm:"column:project_id;index;comment:project id" json:"project_id"`
	Project     Project    `json:"-"`
	VersionID   uint       `gorm:"column:version_id;comment:version id" json:"version_id"`
	BuildingID  uint       `gorm:"column:building_id;comment:building id" json:"building_id,omitempty"`
	CreatedBy   string     `gorm:"column:created_by;type:varchar(256);comment:creator" json:"created_by"`
	StartedAt   *time.Time `gorm:"column:started_at;comment:start time" json:"started_at"`
	CompletedAt *time.Time `gorm:"column:completed_at;comment:completion time" json:"completed_at"`
}

// LogEntry is one line of a job's log trail.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

// LogEntries stores the append-only job log trail in a text column.
type LogEntries []LogEntry

func (l LogEntries) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	ba, err := json.Marshal([]LogEntry(l))
	return string(ba), err
}

func (l *LogEntries) Scan(val any) error {
	var ba []byte
	switch v := val.(type) {
	case []byte:
		ba = v
	case string:
		ba = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", val))
	}
	t := []LogEntry{}
	err := json.Unmarshal(ba, &t)
	*l = LogEntries(t)
	return err
}

func (LogEntries) GormDataType() string {
	return "logentries"
}

func (LogEntries) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}

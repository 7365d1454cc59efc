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
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/looplab/fsm"
	"gorm.io/gorm"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	"github.com/mapstack/atlas/manager/metrics"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/pkg/sse"
)

const (
	// JobEventStart moves a queued job to running.
	JobEventStart = "start"

	// JobEventComplete moves a running job to completed.
	JobEventComplete = "complete"

	// JobEventFail moves a queued or running job to failed.
	JobEventFail = "fail"

	// JobEventCancel moves a queued or running job to cancelled.
	JobEventCancel = "cancel"
)

// jobUpdateEvent is the SSE event name for non-terminal job updates.
// Terminal updates carry the status name instead, which ends the stream.
const jobUpdateEvent = "job_update"

// Channel returns the SSE channel name carrying updates for a job.
func Channel(id uint) string {
	return fmt.Sprintf("job:%d", id)
}

// newJobFSM returns a state machine seeded with the job's current status.
// Transitions outside the table fail with fsm.InvalidEventError.
func newJobFSM(current string) *fsm.FSM {
	return fsm.NewFSM(
		current,
		fsm.Events{
			{Name: JobEventStart, Src: []string{models.JobStatusQueued}, Dst: models.JobStatusRunning},
			{Name: JobEventComplete, Src: []string{models.JobStatusRunning}, Dst: models.JobStatusCompleted},
			{Name: JobEventFail, Src: []string{models.JobStatusQueued, models.JobStatusRunning}, Dst: models.JobStatusFailed},
			{Name: JobEventCancel, Src: []string{models.JobStatusQueued, models.JobStatusRunning}, Dst: models.JobStatusCancelled},
		},
		fsm.Callbacks{},
	)
}

// Tracker owns the lifecycle of job rows: status transitions, progress,
// logs and results. Every write is broadcast to the job's SSE channel so
// streams follow along without polling.
type Tracker struct {
	db          *gorm.DB
	broadcaster *sse.Broadcaster
}

// NewTracker returns a tracker persisting to db and publishing updates
// through broadcaster. A nil broadcaster disables publishing.
func NewTracker(db *gorm.DB, broadcaster *sse.Broadcaster) *Tracker {
	return &Tracker{db: db, broadcaster: broadcaster}
}

// Create persists a new job row. The status defaults to queued and the
// creation is broadcast as the first update on the job's channel.
func (t *Tracker) Create(ctx context.Context, job *models.Job) error {
	if job.Status == "" {
		job.Status = models.JobStatusQueued
	}
	if job.Message == "" {
		job.Message = "Job queued"
	}

	if err := t.db.WithContext(ctx).Create(job).Error; err != nil {
		return err
	}

	metrics.JobCount.WithLabelValues(job.Type).Inc()
	metrics.JobStateCount.WithLabelValues(job.Type, job.Status).Inc()
	logger.WithJob(job.ID, job.Type).Infof("job created with status %s", job.Status)
	t.broadcast(job)
	return nil
}

// Get returns the job row by id.
func (t *Tracker) Get(ctx context.Context, id uint) (*models.Job, error) {
	job := models.Job{}
	if err := t.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

// Start marks the job running, stamps StartedAt and resets progress.
func (t *Tracker) Start(ctx context.Context, id uint) (*models.Job, error) {
	job, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := t.transition(ctx, job, JobEventStart, func(j *models.Job) {
		j.StartedAt = &now
		j.Progress = 0
		j.Message = "Job started"
		appendLog(j, models.JobLogLevelInfo, "Job started")
	}); err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateProgress raises the job's progress to percent, clamped into
// [0, 100]. Progress never moves backwards. A non-empty message replaces
// the last progress message. Terminal rows are returned unchanged: a
// worker finishing its unit after an advisory cancel lands here.
func (t *Tracker) UpdateProgress(ctx context.Context, id uint, percent int, message string) (*models.Job, error) {
	job, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if models.IsTerminalJobStatus(job.Status) {
		return job, nil
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if percent > job.Progress {
		job.Progress = percent
	}
	if message != "" {
		job.Message = message
	}

	if err := t.db.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}

	t.broadcast(job)
	return job, nil
}

// AddLog appends one entry to the job's log trail. Terminal rows are
// returned unchanged.
func (t *Tracker) AddLog(ctx context.Context, id uint, level, message string) (*models.Job, error) {
	job, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if models.IsTerminalJobStatus(job.Status) {
		return job, nil
	}

	appendLog(job, level, message)
	if err := t.db.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}

	t.broadcast(job)
	return job, nil
}

// Complete marks the job completed with progress 100 and merges result
// into the job's result map, new keys winning.
func (t *Tracker) Complete(ctx context.Context, id uint, result models.JSONMap) (*models.Job, error) {
	job, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := t.transition(ctx, job, JobEventComplete, func(j *models.Job) {
		j.Progress = 100
		j.Message = "Job completed"
		j.CompletedAt = &now
		j.Result = mergeResult(j.Result, result)
		appendLog(j, models.JobLogLevelInfo, "Job completed successfully")
	}); err != nil {
		return nil, err
	}

	if job.StartedAt != nil {
		metrics.JobDuration.WithLabelValues(job.Type).Observe(float64(now.Sub(*job.StartedAt).Milliseconds()))
	}

	return job, nil
}

// Fail marks the job failed with the given reason.
func (t *Tracker) Fail(ctx context.Context, id uint, reason string) (*models.Job, error) {
	job, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := t.transition(ctx, job, JobEventFail, func(j *models.Job) {
		j.Error = reason
		j.Message = fmt.Sprintf("Job failed: %s", reason)
		j.CompletedAt = &now
		appendLog(j, models.JobLogLevelError, fmt.Sprintf("Job failed: %s", reason))
	}); err != nil {
		return nil, err
	}

	return job, nil
}

// Cancel marks a queued or running job cancelled. Cancellation is
// advisory: workers notice the status between units of work, so tiles in
// flight still finish. A job already in a terminal status is returned
// unchanged with false.
func (t *Tracker) Cancel(ctx context.Context, id uint) (*models.Job, bool, error) {
	job, err := t.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if models.IsTerminalJobStatus(job.Status) {
		return job, false, nil
	}

	now := time.Now().UTC()
	if err := t.transition(ctx, job, JobEventCancel, func(j *models.Job) {
		j.Message = "Job cancelled"
		j.CompletedAt = &now
		appendLog(j, models.JobLogLevelWarn, "Job cancelled by user")
	}); err != nil {
		return nil, false, err
	}

	return job, true, nil
}

// Cancelled reports whether the job has been cancelled. Orchestrators
// poll it between units of work. Lookup errors read as not cancelled.
func (t *Tracker) Cancelled(ctx context.Context, id uint) bool {
	job, err := t.Get(ctx, id)
	if err != nil {
		return false
	}

	return job.Status == models.JobStatusCancelled
}

// transition applies event through the state machine, mutates the row
// while still unsaved, then persists and broadcasts it.
func (t *Tracker) transition(ctx context.Context, job *models.Job, event string, mutate func(*models.Job)) error {
	f := newJobFSM(job.Status)
	if err := f.Event(event); err != nil {
		return err
	}

	job.Status = f.Current()
	if mutate != nil {
		mutate(job)
	}

	if err := t.db.WithContext(ctx).Save(job).Error; err != nil {
		return err
	}

	metrics.JobStateCount.WithLabelValues(job.Type, job.Status).Inc()
	logger.WithJob(job.ID, job.Type).Infof("job state is %s", job.Status)
	t.broadcast(job)
	return nil
}

// UpdateMessage renders a job row as its stream message. Non-terminal rows
// carry the "job_update" event name, terminal rows carry the status name,
// which ends a stream after delivery.
func UpdateMessage(job *models.Job) *sse.Message {
	event := jobUpdateEvent
	if models.IsTerminalJobStatus(job.Status) {
		event = job.Status
	}

	return &sse.Message{
		ID:    strconv.Itoa(job.Progress),
		Event: event,
		Data:  job,
	}
}

func (t *Tracker) broadcast(job *models.Job) {
	if t.broadcaster == nil {
		return
	}

	t.broadcaster.Publish(Channel(job.ID), UpdateMessage(job))
}

func appendLog(job *models.Job, level, message string) {
	job.Logs = append(job.Logs, models.LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
	})
}

func mergeResult(old, update models.JSONMap) models.JSONMap {
	merged := models.JSONMap{}
	for k, v := range old {
		merged[k] = v
	}
	for k, v := range update {
		merged[k] = v
	}

	return merged
}

// setProgress is the orchestrator shorthand for a milestone write.
func setProgress(ctx context.Context, tracker *Tracker, id uint, percent int, message string) error {
	_, err := tracker.UpdateProgress(ctx, id, percent, message)
	return err
}

// addLog is the orchestrator shorthand for a job log append.
func addLog(ctx context.Context, tracker *Tracker, id uint, level, message string) error {
	_, err := tracker.AddLog(ctx, id, level, message)
	return err
}

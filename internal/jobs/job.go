// Package jobs provides run bookkeeping shared by every batch binary:
// timestamped job ids, counters, and interval progress reporting.
package jobs

import (
	"log/slog"
	"time"

	"github.com/spacesedan/botscope/internal/models"
	"github.com/spacesedan/botscope/internal/utils"
)

const jobIDLayout = "2006-01-02-1504"

// NewJobID derives a job id from the current time. Job ids become part of
// local and bucket paths, so the layout avoids spaces and special characters.
func NewJobID() string {
	return time.Now().Format(jobIDLayout)
}

type Job struct {
	ID      string
	Counter int

	startedAt time.Time
	endedAt   time.Time
	samples   []models.ProgressSample
}

func NewJob(id string) *Job {
	if id == "" {
		id = NewJobID()
	}
	return &Job{ID: id}
}

func (j *Job) Start() {
	j.startedAt = time.Now()
	j.Counter = 0
	j.samples = nil
	slog.Info("[Job] Starting", slog.String("job_id", j.ID))
}

// ProgressReport logs one interval sample and retains it for results.csv.
func (j *Job) ProgressReport(edgeCount int) {
	sample := models.ProgressSample{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Counter:   j.Counter,
		EdgeCount: edgeCount,
	}
	j.samples = append(j.samples, sample)

	slog.Info("[Job] Progress",
		slog.String("rows", utils.FormatNumber(sample.Counter)),
		slog.String("edges", utils.FormatNumber(sample.EdgeCount)))
}

func (j *Job) End() {
	j.endedAt = time.Now()
	duration := j.endedAt.Sub(j.startedAt)

	rate := 0.0
	if seconds := duration.Seconds(); seconds > 0 {
		rate = float64(j.Counter) / seconds
	}

	slog.Info("[Job] Complete",
		slog.String("rows", utils.FormatNumber(j.Counter)),
		slog.Duration("duration", duration.Round(time.Millisecond)),
		slog.Float64("rows_per_second", rate))
}

func (j *Job) Samples() []models.ProgressSample {
	return j.samples
}

func (j *Job) Duration() time.Duration {
	return j.endedAt.Sub(j.startedAt)
}

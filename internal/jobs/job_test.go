package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewJobAssignsTimestampID(t *testing.T) {
	job := NewJob("")

	parsed, err := time.Parse(jobIDLayout, job.ID)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 2*time.Minute)
}

func TestNewJobKeepsExplicitID(t *testing.T) {
	job := NewJob("2020-05-26-0002")
	assert.Equal(t, "2020-05-26-0002", job.ID)
}

func TestProgressSamples(t *testing.T) {
	job := NewJob("test-job")
	job.Start()

	job.Counter = 100
	job.ProgressReport(250)
	job.Counter = 200
	job.ProgressReport(510)
	job.End()

	samples := job.Samples()
	assert.Len(t, samples, 2)
	assert.Equal(t, 100, samples[0].Counter)
	assert.Equal(t, 250, samples[0].EdgeCount)
	assert.Equal(t, 200, samples[1].Counter)
	assert.Equal(t, 510, samples[1].EdgeCount)
}

func TestStartResetsState(t *testing.T) {
	job := NewJob("test-job")
	job.Start()
	job.Counter = 5
	job.ProgressReport(1)

	job.Start()
	assert.Zero(t, job.Counter)
	assert.Empty(t, job.Samples())
}

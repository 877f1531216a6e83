package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/questlog/internal/tracker"
)

type fakeJobs struct {
	starts    int
	reminders int
	err       error
}

func (f *fakeJobs) Start(context.Context) (tracker.Status, error) {
	f.starts++
	return tracker.Status{Day: "2026-03-15"}, f.err
}

func (f *fakeJobs) Remind(context.Context) error {
	f.reminders++
	return f.err
}

func TestNewRejectsInvalidReminderHour(t *testing.T) {
	for _, hour := range []int{-1, 24} {
		_, err := New(&fakeJobs{}, time.UTC, hour, zap.NewNop())
		assert.Error(t, err, "hour %d", hour)
	}
}

func TestStartRegistersJobs(t *testing.T) {
	s, err := New(&fakeJobs{}, time.UTC, DefaultReminderHour, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.Start(t.Context()))
	defer s.Stop()

	assert.Len(t, s.scheduler.Jobs(), 2)
	assert.True(t, s.scheduler.IsRunning())
}

func TestJobsCallTracker(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "success"},
		{name: "failure is logged", err: errors.New("store unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := &fakeJobs{err: tt.err}
			s, err := New(jobs, time.UTC, 9, zap.NewNop())
			require.NoError(t, err)

			s.calendarCheck()
			s.remind()

			assert.Equal(t, 1, jobs.starts)
			assert.Equal(t, 1, jobs.reminders)
		})
	}
}

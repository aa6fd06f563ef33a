//go:build unit

package job_test

import (
	"testing"
	"time"

	"merch-store/internal/domain/job"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	requestID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		req, err := job.NewRequest(requestID, "run-1", "7", "a sunset", "Sunset tee", "outdoors", "vintage", 4, false)
		require.NoError(t, err)

		assert.Equal(t, requestID, req.RequestID)
		assert.Equal(t, "run-1", req.RunID)
		assert.Equal(t, "7", req.RowID)
		assert.Equal(t, 4, req.Count)
		assert.False(t, req.Mock)
	})

	t.Run("prompt is required", func(t *testing.T) {
		_, err := job.NewRequest(requestID, "", "", "", "", "", "", 1, false)
		assert.ErrorIs(t, err, job.ErrMissingPrompt)

		_, err = job.NewRequest(requestID, "", "", "   ", "", "", "", 1, false)
		assert.ErrorIs(t, err, job.ErrMissingPrompt)
	})

	t.Run("defaults fill missing fields", func(t *testing.T) {
		req, err := job.NewRequest(requestID, "", "", "a sunset", "", "", "", 0, false)
		require.NoError(t, err)

		assert.Equal(t, requestID.String(), req.RunID, "runId falls back to the request id")
		assert.Equal(t, "AI generated design", req.Title)
		assert.Equal(t, "general", req.Niche)
		assert.Equal(t, 1, req.Count)
	})

	t.Run("final prompt appends style", func(t *testing.T) {
		req, err := job.NewRequest(requestID, "", "", "a sunset", "", "", "vintage", 1, false)
		require.NoError(t, err)
		assert.Equal(t, "a sunset\n\nStyle: vintage", req.FinalPrompt())

		noStyle, err := job.NewRequest(requestID, "", "", "a sunset", "", "", "", 1, false)
		require.NoError(t, err)
		assert.Equal(t, "a sunset", noStyle.FinalPrompt())
	})
}

func TestClampCount(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{4, 4},
		{8, 8},
		{9, 8},
		{100, 8},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, job.ClampCount(c.in), "ClampCount(%d)", c.in)
	}
}

func TestJobLifecycle(t *testing.T) {
	newJob := func(t *testing.T) *job.Job {
		t.Helper()
		req, err := job.NewRequest(uuid.New(), "run-1", "7", "a sunset", "", "", "", 2, false)
		require.NoError(t, err)
		return job.NewJob(req, time.Now())
	}

	t.Run("starts pending", func(t *testing.T) {
		jb := newJob(t)
		assert.Equal(t, job.StatusPending, jb.Status())
		assert.Nil(t, jb.FinishedAt())
	})

	t.Run("complete", func(t *testing.T) {
		jb := newJob(t)
		at := time.Now()
		require.NoError(t, jb.Complete(2, at))

		assert.Equal(t, job.StatusDone, jb.Status())
		assert.Equal(t, 2, jb.GeneratedCount())
		require.NotNil(t, jb.FinishedAt())
		assert.Equal(t, at, *jb.FinishedAt())
	})

	t.Run("complete mock", func(t *testing.T) {
		jb := newJob(t)
		require.NoError(t, jb.CompleteMock(2, time.Now()))
		assert.Equal(t, job.StatusMockDone, jb.Status())
	})

	t.Run("fail records message", func(t *testing.T) {
		jb := newJob(t)
		require.NoError(t, jb.Fail("Daily limit reached", time.Now()))
		assert.Equal(t, job.StatusError, jb.Status())
		assert.Equal(t, "Daily limit reached", jb.ErrorMessage())
	})

	t.Run("terminal status is reached exactly once", func(t *testing.T) {
		jb := newJob(t)
		require.NoError(t, jb.Complete(1, time.Now()))

		assert.ErrorIs(t, jb.Complete(1, time.Now()), job.ErrAlreadyFinished)
		assert.ErrorIs(t, jb.CompleteMock(1, time.Now()), job.ErrAlreadyFinished)
		assert.ErrorIs(t, jb.Fail("late", time.Now()), job.ErrAlreadyFinished)
	})

	t.Run("duration uses finish time once set", func(t *testing.T) {
		req, err := job.NewRequest(uuid.New(), "", "", "a sunset", "", "", "", 1, false)
		require.NoError(t, err)

		start := time.Now()
		jb := job.NewJob(req, start)
		require.NoError(t, jb.Complete(1, start.Add(3*time.Second)))

		assert.Equal(t, int64(3000), jb.DurationMS(start.Add(time.Hour)))
	})
}

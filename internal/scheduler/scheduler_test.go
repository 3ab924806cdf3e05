package scheduler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshare-settlement/internal/config"
	"carshare-settlement/internal/jobs"
)

func newRunner(t *testing.T, schedule string) (*jobs.JobRunner, string) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"cars": [], "rentals": []}`), 0o644))

	cfg := config.Default()
	cfg.Batch.Input = input
	cfg.Batch.Output = filepath.Join(dir, "output.json")
	cfg.Scheduler.Settle = schedule
	return jobs.NewJobRunner(cfg, nil), cfg.Batch.Output
}

func TestNewScheduler(t *testing.T) {
	t.Run("Registers the settlement job", func(t *testing.T) {
		jr, _ := newRunner(t, "0 0 1 * * *")

		s, err := NewScheduler(jr)
		require.NoError(t, err)
		assert.True(t, s.IsRunning())
		assert.True(t, s.Next().IsZero())
	})

	t.Run("Invalid schedule", func(t *testing.T) {
		jr, _ := newRunner(t, "every day")

		_, err := NewScheduler(jr)
		assert.Error(t, err)
	})
}

func TestScheduler_StartStop(t *testing.T) {
	jr, output := newRunner(t, "* * * * * *")

	s, err := NewScheduler(jr)
	require.NoError(t, err)

	s.Start()
	assert.False(t, s.Next().IsZero())
	assert.Eventually(t, func() bool {
		_, err := os.Stat(output)
		return err == nil
	}, 3*time.Second, 50*time.Millisecond)
	s.Stop()

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rentals": []}`, string(data))
}

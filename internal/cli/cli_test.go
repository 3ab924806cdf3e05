package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshare-settlement/internal/domain"
)

const input = `{
  "cars": [{ "id": 1, "price_per_day": 2000, "price_per_km": 10 }],
  "rentals": [
    { "id": 1, "car_id": 1, "start_date": "2015-12-08", "end_date": "2015-12-08", "distance": 100, "deductible_reduction": true }
  ]
}`

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&nopWriter{})
	cmd.SetErr(&nopWriter{})
	return cmd.Execute()
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))

	t.Run("Flags select the documents and mode", func(t *testing.T) {
		out := filepath.Join(dir, "commission.json")
		require.NoError(t, execute(t, "run", "--input", in, "--output", out, "--mode", "commission"))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.JSONEq(t, `{"rentals": [{
			"id": 1,
			"price": 3000,
			"options": {"deductible_reduction": 400},
			"commission": {"insurance_fee": 450, "assistance_fee": 100, "drivy_fee": 350}
		}]}`, string(data))
	})

	t.Run("Config file supplies the batch", func(t *testing.T) {
		out := filepath.Join(dir, "from-config.json")
		cfgPath := filepath.Join(dir, "settle.toml")
		require.NoError(t, os.WriteFile(cfgPath, []byte(
			"[batch]\ninput = \""+in+"\"\noutput = \""+out+"\"\nmode = \"price\"\n"), 0o644))

		require.NoError(t, execute(t, "run", "--config", cfgPath))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.JSONEq(t, `{"rentals": [{"id": 1, "price": 3000}]}`, string(data))
	})

	t.Run("Flags override the config file", func(t *testing.T) {
		out := filepath.Join(dir, "override.json")
		cfgPath := filepath.Join(dir, "settle.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("batch:\n  mode: price\n"), 0o644))

		require.NoError(t, execute(t, "run", "--config", cfgPath, "-i", in, "-o", out, "-m", "actions"))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"actions"`)
	})

	t.Run("Settlement errors fail the command", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"cars": [], "rentals": [{"id": 1, "car_id": 2, "start_date": "2015-12-08", "end_date": "2015-12-08"}]}`), 0o644))
		out := filepath.Join(dir, "bad-output.json")

		err := execute(t, "run", "-i", bad, "-o", out)
		assert.ErrorIs(t, err, domain.ErrCarNotFound)
		assert.NoFileExists(t, out)
	})

	t.Run("Unreadable config", func(t *testing.T) {
		err := execute(t, "run", "--config", filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("Positional arguments are rejected", func(t *testing.T) {
		err := execute(t, "run", "extra")
		assert.Error(t, err)
	})
}

func TestScheduleCommand_InvalidSchedule(t *testing.T) {
	t.Setenv("SCHEDULE_SETTLE", "not a cron expression")
	err := execute(t, "schedule")
	assert.Error(t, err)
}

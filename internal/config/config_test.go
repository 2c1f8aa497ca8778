package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[database]
user = "booking"
password = "secret"
dbname = "booking_service"
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Booking.SlotMinutes)
	assert.Equal(t, "08:00", cfg.Booking.WindowOpen)
	assert.Equal(t, "20:00", cfg.Booking.WindowClose)
	assert.Equal(t, 7, cfg.Booking.HorizonDays)
	assert.Equal(t, "Asia/Dhaka", cfg.Booking.Timezone)
	assert.Equal(t, 300, cfg.Booking.CompletionSweepInterval)
	assert.Contains(t, cfg.Database.DSN(), "dbname=booking_service")
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9000

[booking]
slot_minutes = 60
window_open = "09:00"
window_close = "18:00"
horizon_days = 14
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, 60, cfg.Booking.SlotMinutes)
	assert.Equal(t, 14, cfg.Booking.HorizonDays)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "slot size does not divide a day",
			body: "[booking]\nslot_minutes = 7\n",
		},
		{
			name: "inverted window",
			body: "[booking]\nwindow_open = \"20:00\"\nwindow_close = \"08:00\"\n",
		},
		{
			name: "bad window format",
			body: "[booking]\nwindow_open = \"8am\"\n",
		},
		{
			name: "unknown timezone",
			body: "[booking]\ntimezone = \"Mars/Olympus\"\n",
		},
		{
			name: "zero horizon",
			body: "[booking]\nhorizon_days = 0\n",
		},
		{
			name: "bad port",
			body: "[server]\nhttp_port = 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestSchedulePolicy(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	policy, err := cfg.Booking.SchedulePolicy()
	require.NoError(t, err)

	assert.Equal(t, 30, policy.SlotMinutes)
	assert.Equal(t, "Asia/Dhaka", policy.Location.String())
}

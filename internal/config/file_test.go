package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/galaxy-visualization/internal/galaxy"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.False(t, s.Sound)
	assert.False(t, s.Watch)

	want := galaxy.DefaultParameters()
	assert.Equal(t, want.Count, s.Params.Count)
	assert.Equal(t, want.Branches, s.Params.Branches)
	assert.Equal(t, want.InsideColor.Hex(), s.Params.InsideColor.Hex())
	assert.Equal(t, want.OutsideColor.Hex(), s.Params.OutsideColor.Hex())
}

func TestParseOverrides(t *testing.T) {
	s, err := Parse([]byte(`
log_level = "debug"
sound = true

[galaxy]
count = 5000
branches = 5
spin = -1.5
inside_color = "#ffffff"
`))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.True(t, s.Sound)
	assert.Equal(t, 5000, s.Params.Count)
	assert.Equal(t, 5, s.Params.Branches)
	assert.Equal(t, -1.5, s.Params.Spin)
	assert.Equal(t, "#ffffff", s.Params.InsideColor.Hex())
	// untouched fields keep their defaults
	assert.Equal(t, 4.0, s.Params.Radius)
	assert.Equal(t, "#1b3984", s.Params.OutsideColor.Hex())
}

func TestParseClampsToSliderRanges(t *testing.T) {
	s, err := Parse([]byte(`
[galaxy]
count = 1
branches = 100
radius = 40
randomness_power = 1
`))
	require.NoError(t, err)
	assert.Equal(t, 1000, s.Params.Count)
	assert.Equal(t, 8, s.Params.Branches)
	assert.Equal(t, 4.0, s.Params.Radius)
	assert.Equal(t, 3.0, s.Params.RandomnessPower)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field": "colour = 1",
		"bad color":     "[galaxy]\ninside_color = \"red\"",
		"bad level":     `log_level = "loud"`,
		"syntax":        "count = ",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaxy.toml")
	require.NoError(t, os.WriteFile(path, []byte("[galaxy]\ncount = 2000\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Settings, 4)
	done := make(chan error, 1)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	go func() {
		done <- Watch(ctx, path, log, func(s Settings) { got <- s })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[galaxy]\ncount = 3000\n"), 0o644))

	select {
	case s := <-got:
		assert.Equal(t, 3000, s.Params.Count)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

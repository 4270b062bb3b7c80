package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/iburimskiy/galaxy-visualization/internal/galaxy"
)

// File mirrors the TOML config file.
type File struct {
	LogLevel string `toml:"log_level"`
	Sound    bool   `toml:"sound"`
	Watch    bool   `toml:"watch"`
	Galaxy   Galaxy `toml:"galaxy"`
}

// Galaxy is the [galaxy] table.
type Galaxy struct {
	Count           int     `toml:"count"`
	Size            float64 `toml:"size"`
	Radius          float64 `toml:"radius"`
	Branches        int     `toml:"branches"`
	Spin            float64 `toml:"spin"`
	Randomness      float64 `toml:"randomness"`
	RandomnessPower float64 `toml:"randomness_power"`
	InsideColor     string  `toml:"inside_color"`
	OutsideColor    string  `toml:"outside_color"`
}

// Settings is a resolved configuration.
type Settings struct {
	LogLevel slog.Level
	Sound    bool
	Watch    bool
	Params   galaxy.Parameters
}

// DefaultFile returns the values used for anything the file leaves out.
func DefaultFile() File {
	p := galaxy.DefaultParameters()
	return File{
		LogLevel: "info",
		Galaxy: Galaxy{
			Count:           p.Count,
			Size:            p.Size,
			Radius:          p.Radius,
			Branches:        p.Branches,
			Spin:            p.Spin,
			Randomness:      p.Randomness,
			RandomnessPower: p.RandomnessPower,
			InsideColor:     p.InsideColor.Hex(),
			OutsideColor:    p.OutsideColor.Hex(),
		},
	}
}

// Load reads path. An empty path yields the defaults.
func Load(path string) (Settings, error) {
	if path == "" {
		return DefaultFile().Resolve()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a TOML document on top of the defaults.
func Parse(data []byte) (Settings, error) {
	f := DefaultFile()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Settings{}, err
	}
	return f.Resolve()
}

// Resolve converts f into Settings, clamping the galaxy parameters into
// their slider ranges.
func (f File) Resolve() (Settings, error) {
	var s Settings
	if err := s.LogLevel.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return Settings{}, fmt.Errorf("log_level: %w", err)
	}
	inside, err := galaxy.ParseColor(f.Galaxy.InsideColor)
	if err != nil {
		return Settings{}, fmt.Errorf("inside_color: %w", err)
	}
	outside, err := galaxy.ParseColor(f.Galaxy.OutsideColor)
	if err != nil {
		return Settings{}, fmt.Errorf("outside_color: %w", err)
	}
	s.Sound = f.Sound
	s.Watch = f.Watch
	s.Params = galaxy.Parameters{
		Count:           f.Galaxy.Count,
		Size:            f.Galaxy.Size,
		Radius:          f.Galaxy.Radius,
		Branches:        f.Galaxy.Branches,
		Spin:            f.Galaxy.Spin,
		Randomness:      f.Galaxy.Randomness,
		RandomnessPower: f.Galaxy.RandomnessPower,
		InsideColor:     inside,
		OutsideColor:    outside,
	}.Clamp()
	return s, nil
}

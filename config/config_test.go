package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.World.NumOfChunks != 0 {
		t.Errorf("default num_of_chunks = %d, want a single chunk", cfg.World.NumOfChunks)
	}
	if cfg.World.Terrain != TerrainRamp {
		t.Errorf("default terrain = %q, want %q", cfg.World.Terrain, TerrainRamp)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("  ")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Error("empty path should return the defaults")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1600
  height: 900
  vsync: false
world:
  num_of_chunks: 2
  terrain: noise
  seed: 99
camera:
  reach: 8
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1600 || cfg.Window.Height != 900 || cfg.Window.Vsync {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.Title != Default().Window.Title {
		t.Errorf("title = %q, want default", cfg.Window.Title)
	}
	if cfg.World.NumOfChunks != 2 || cfg.World.Terrain != TerrainNoise || cfg.World.Seed != 99 {
		t.Errorf("world = %+v", cfg.World)
	}
	if cfg.World.Noise != Default().World.Noise {
		t.Errorf("noise = %+v, want defaults", cfg.World.Noise)
	}
	if cfg.Camera.Reach != 8 || cfg.Camera.FOV != Default().Camera.FOV {
		t.Errorf("camera = %+v", cfg.Camera)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"terrain":   "world:\n  terrain: caves\n",
		"radius":    "world:\n  num_of_chunks: -1\n",
		"window":    "window:\n  width: 0\n",
		"clip":      "camera:\n  near: 10\n  far: 5\n",
		"log level": "log_level: loud\n",
		"noise":     "world:\n  terrain: noise\n  noise:\n    scale: 0\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "window: [1, 2"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !os.IsNotExist(err) {
		t.Errorf("err = %v, want not exist", err)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v,%v, want %v", in, got, err, want)
		}
	}
}

func TestNewLoggerDebugFlag(t *testing.T) {
	cfg := Default()
	cfg.Debug = true
	var buf bytes.Buffer
	cfg.NewLogger(&buf).Debug("mesh rebuilt", "faces", 6)
	if !strings.Contains(buf.String(), "faces=6") {
		t.Errorf("debug output missing: %q", buf.String())
	}

	buf.Reset()
	Default().NewLogger(&buf).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logger wrote debug output: %q", buf.String())
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	TerrainRamp  = "ramp"
	TerrainNoise = "noise"
)

type Config struct {
	Window   Window `yaml:"window"`
	World    World  `yaml:"world"`
	Camera   Camera `yaml:"camera"`
	Assets   Assets `yaml:"assets"`
	Debug    bool   `yaml:"debug"`
	LogLevel string `yaml:"log_level"`
}

type Window struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	Vsync   bool   `yaml:"vsync"`
	Samples int    `yaml:"samples"`
}

type World struct {
	// NumOfChunks is the lattice radius around chunk (0,0); 0 is a single chunk.
	NumOfChunks int    `yaml:"num_of_chunks"`
	Terrain     string `yaml:"terrain"`
	Seed        int64  `yaml:"seed"`
	Noise       Noise  `yaml:"noise"`
}

type Noise struct {
	Base        int     `yaml:"base"`
	Amplitude   float32 `yaml:"amplitude"`
	Octaves     int     `yaml:"octaves"`
	Lacunarity  float32 `yaml:"lacunarity"`
	Persistence float32 `yaml:"persistence"`
	Scale       float32 `yaml:"scale"`
}

type Camera struct {
	FOV         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Position    [3]float32 `yaml:"position"`
	MoveSpeed   float32    `yaml:"move_speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Reach       float32    `yaml:"reach"`
	Flying      bool       `yaml:"flying"`
}

type Assets struct {
	Texture   string `yaml:"texture"`
	ShaderDir string `yaml:"shader_dir"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:   800,
			Height:  600,
			Title:   "Voxel Chunk",
			Vsync:   true,
			Samples: 8,
		},
		World: World{
			NumOfChunks: 0,
			Terrain:     TerrainRamp,
			Seed:        12,
			Noise: Noise{
				Base:        32,
				Amplitude:   30,
				Octaves:     4,
				Lacunarity:  1.5,
				Persistence: 0.5,
				Scale:       100,
			},
		},
		Camera: Camera{
			FOV:         70,
			Near:        0.1,
			Far:         350,
			Position:    [3]float32{-5, 40, -5},
			MoveSpeed:   4,
			Sensitivity: 0.3,
			Reach:       6,
			Flying:      true,
		},
		Assets: Assets{
			Texture:   "assets/textures/grass.png",
			ShaderDir: "shaders",
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.World.NumOfChunks < 0 {
		errs = append(errs, fmt.Errorf("num_of_chunks %d must not be negative", c.World.NumOfChunks))
	}
	switch c.World.Terrain {
	case TerrainRamp:
	case TerrainNoise:
		if c.World.Noise.Scale == 0 {
			errs = append(errs, errors.New("noise scale must not be zero"))
		}
		if c.World.Noise.Octaves <= 0 {
			errs = append(errs, fmt.Errorf("noise octaves %d must be positive", c.World.Noise.Octaves))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown terrain %q", c.World.Terrain))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip range %v..%v is invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v out of range", c.Camera.FOV))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

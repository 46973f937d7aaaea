package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultPath is where the renderer looks for optional overrides.
const DefaultPath = "settings.json"

type Settings struct {
	Window  WindowSettings `json:"window"`
	Volume  VolumeSettings `json:"volume"`
	Camera  CameraSettings `json:"camera"`
	Shaders ShaderSettings `json:"shaders"`
	Log     LogSettings    `json:"log"`
}

type WindowSettings struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	VSync  bool   `json:"vsync"`
}

type VolumeSettings struct {
	Size int `json:"size"`
}

type CameraSettings struct {
	FOV          float32 `json:"fovDegrees"`
	Near         float32 `json:"near"`
	Far          float32 `json:"far"`
	OrbitFactor  float32 `json:"orbitFactor"` // orbit radius in multiples of the volume size
	Sensitivity  float32 `json:"sensitivity"`
	InitialYaw   float32 `json:"initialYaw"`
	InitialPitch float32 `json:"initialPitch"`
}

type ShaderSettings struct {
	Vertex   string `json:"vertex"`
	Fragment string `json:"fragment"`
	Compute  string `json:"compute"`
}

type LogSettings struct {
	Level string `json:"level"`
	Quiet bool   `json:"quiet"`
}

// Default returns the reference configuration.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
			Title:  "VoxelRenderer",
			VSync:  true,
		},
		Volume: VolumeSettings{
			Size: 64,
		},
		Camera: CameraSettings{
			FOV:          45,
			Near:         0.1,
			Far:          100,
			OrbitFactor:  5,
			Sensitivity:  4,
			InitialYaw:   315,
			InitialPitch: 60,
		},
		Shaders: ShaderSettings{
			Vertex:   "assets/shaders/default.vert",
			Fragment: "assets/shaders/default.frag",
			Compute:  "assets/shaders/default.comp",
		},
		Log: LogSettings{
			Level: "trace",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error;
// found reports whether the file existed.
func Load(path string) (s Settings, found bool, err error) {
	s = Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, false, nil
		}
		return s, false, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return s, true, fmt.Errorf("error parsing %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return s, true, fmt.Errorf("invalid %s: %w", path, err)
	}
	return s, true, nil
}

// Validate rejects settings the renderer cannot start with.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	case s.Volume.Size <= 0:
		return fmt.Errorf("volume size %d must be positive", s.Volume.Size)
	case s.Camera.FOV <= 0 || s.Camera.FOV >= 180:
		return fmt.Errorf("camera fov %.1f must be in (0, 180)", s.Camera.FOV)
	case s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near:
		return fmt.Errorf("camera clip range [%g, %g] must satisfy 0 < near < far", s.Camera.Near, s.Camera.Far)
	case s.Camera.OrbitFactor <= 0:
		return fmt.Errorf("orbit factor %g must be positive", s.Camera.OrbitFactor)
	case s.Shaders.Vertex == "" || s.Shaders.Fragment == "" || s.Shaders.Compute == "":
		return errors.New("all shader paths must be set")
	}
	return nil
}

// OrbitRadius is the camera's distance from the volume center.
func (s Settings) OrbitRadius() float32 {
	return float32(s.Volume.Size) * s.Camera.OrbitFactor
}

// Aspect is the window's width over height.
func (s Settings) Aspect() float32 {
	return float32(s.Window.Width) / float32(s.Window.Height)
}

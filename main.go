package main

import (
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"voxelrenderer/config"
	"voxelrenderer/core"
	"voxelrenderer/gpu"
	"voxelrenderer/logging"
	"voxelrenderer/rendering/opengl"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	log := logging.New(os.Stdout, logging.LevelTrace)

	settings, found, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
		return 1
	}
	level, err := logging.ParseLevel(settings.Log.Level)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
		return 1
	}
	log.Level, log.Quiet = level, settings.Log.Quiet
	if !found {
		log.Debugf("No %s found, using defaults", config.DefaultPath)
	}

	n := settings.Volume.Size
	volume := core.NewSphereVolume(n)
	buffer := gpu.NewVoxelBuffer(volume)
	log.Infof("Volume: %dx%dx%d sphere", n, n, n)

	renderer, err := opengl.NewVoxelRenderer(settings.Window, log)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
		return 1
	}
	defer renderer.Terminate()

	if err := renderer.LoadShaders(settings.Shaders); err != nil {
		log.Fatalf("Failed to load shaders: %v", err)
		return 1
	}
	renderer.CreateBuffers(buffer)

	camera := core.NewCamera(settings.Aspect(), log)
	camera.SetPerspective(mgl32.DegToRad(settings.Camera.FOV), settings.Camera.Near, settings.Camera.Far)

	orbit := core.NewOrbit(
		settings.Camera.InitialYaw,
		settings.Camera.InitialPitch,
		settings.OrbitRadius(),
		settings.Camera.Sensitivity,
	)
	rig := core.NewOrbitRig(camera, orbit)

	frameCount := 0
	lastFPSTime := renderer.Time()

	// Main loop
	for !renderer.ShouldClose() {
		now := renderer.Time()
		x, y := renderer.CursorPos()
		frame := rig.Step(now, x, y)

		renderer.Render(opengl.FrameUniforms{
			ClipToCamera:    frame.ClipToCamera,
			CameraToWorld:   frame.CameraToWorld,
			Time:            float32(now),
			VolumeDimension: buffer.Dimension,
		})
		renderer.PollEvents()

		// FPS counter
		frameCount++
		if elapsed := now - lastFPSTime; elapsed >= 1.0 {
			log.Debugf("FPS: %.1f | yaw %.1f pitch %.1f", float64(frameCount)/elapsed, orbit.Yaw, orbit.Pitch)
			frameCount = 0
			lastFPSTime = now
		}
	}

	log.Infof("Shutting down...")
	return 0
}

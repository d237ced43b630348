package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"voxel-terrain/internal/config"
	"voxel-terrain/internal/geometry"
	"voxel-terrain/internal/graphics"
	"voxel-terrain/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

func init() {
	runtime.LockOSThread()
}

func main() {
	fs := flag.NewFlagSet("terrain-viewer", flag.ExitOnError)
	fov := fs.Float64("fov", 60, "vertical field of view in degrees")
	orbit := fs.Float64("orbit-speed", 0.1, "camera orbit speed in radians per second")
	fps := fs.Int("fps", 60, "frame rate cap (0 = unlimited)")
	cfg, err := config.Resolve(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(cfg, float32(*fov), float32(*orbit), *fps, log); err != nil {
		log.Error("viewer failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Terrain, fov, orbit float32, fps int, log *slog.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(fps)
	if err != nil {
		return err
	}

	scn, err := graphics.NewScene()
	if err != nil {
		return err
	}
	defer scn.Dispose()

	mgr, err := terrain.NewManager(cfg, geometry.NewBuilder(), log)
	if err != nil {
		return err
	}
	if _, err := mgr.Build(scn); err != nil {
		return fmt.Errorf("build terrain: %w", err)
	}
	log.Info("terrain ready", "meshes", scn.Len(), "timings", mgr.Recorder().TopN(4))

	settings := config.NewRenderSettings()
	settings.SetFOV(fov)
	settings.SetOrbitSpeed(orbit)

	cam := graphics.NewCamera(windowWidth, windowHeight, settings)
	half := cfg.ChunkSize * cfg.ChunksInLine / 2
	cam.Target = mgl32.Vec3{float32(half), float32(mgr.SurfaceHeightAt(half, half)), float32(half)}
	cam.Distance = float32(half) * 1.5

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
		cam.SetViewport(w, h)
	})

	gl.ClearColor(0.53, 0.75, 0.92, 1.0)
	limiter := graphics.NewFrameLimiter(fps)
	last := time.Now()
	for !window.ShouldClose() {
		// close on Esc
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		now := time.Now()
		cam.Update(now.Sub(last).Seconds())
		last = now

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		scn.Render(cam)

		window.SwapBuffers()
		glfw.PollEvents()
		limiter.Wait()
	}
	return nil
}

func setupWindow(fps int) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "voxel-terrain", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}
	// the limiter paces frames when a cap is set
	if fps > 0 {
		glfw.SwapInterval(0)
	} else {
		glfw.SwapInterval(1)
	}

	return window, nil
}

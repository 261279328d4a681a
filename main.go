package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"VoxelGolang/config"
	"VoxelGolang/physics"
	"VoxelGolang/terrain"
	"VoxelGolang/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const tickUpdateRate = float32(1.0 / 60.0)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

type app struct {
	cfg    config.Config
	window *glfw.Window
	world  *world.World
	meshes []*glMesh

	camera   *camera
	body     *physics.Body
	previous mgl32.Vec3
	eye      mgl32.Vec3

	width, height int
	flying        bool
	showDebug     bool
	cursorLocked  bool
	firstMouse    bool
	lastX, lastY  float64

	blockProgram uint32
	textProgram  uint32
	texture      uint32
	overlay      *overlay
	fps          fpsCounter
}

type fpsCounter struct {
	frames int
	start  time.Time
	text   string
}

func (f *fpsCounter) update(now time.Time) {
	f.frames++
	elapsed := now.Sub(f.start)
	if elapsed < 100*time.Millisecond {
		return
	}
	fps := float64(f.frames) / elapsed.Seconds()
	f.text = "FPS: " + strconv.FormatFloat(mgl64.Round(fps, 1), 'f', -1, 64)
	f.frames = 0
	f.start = now
}

func lerp(a, b mgl32.Vec3, alpha float32) mgl32.Vec3 {
	return b.Sub(a).Mul(alpha).Add(a)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "path", *configPath, "err", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	if err := run(cfg); err != nil {
		slog.Error("voxel", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, cfg.Window.Samples)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.Vsync {
		glfw.SwapInterval(1)
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	slog.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	a, err := newApp(cfg, window)
	if err != nil {
		return err
	}
	defer a.release()

	a.loop()
	return nil
}

func newApp(cfg config.Config, window *glfw.Window) (*app, error) {
	a := &app{
		cfg:        cfg,
		window:     window,
		width:      cfg.Window.Width,
		height:     cfg.Window.Height,
		flying:     cfg.Camera.Flying,
		showDebug:  cfg.Debug,
		firstMouse: true,
		camera:     newCamera(),
		body:       physics.NewBody(mgl32.Vec3(cfg.Camera.Position)),
		fps:        fpsCounter{start: time.Now()},
	}
	a.previous = a.body.Position
	a.eye = a.body.Position

	var err error
	if a.blockProgram, err = newProgram(cfg.Assets.ShaderDir, "block.vert", "block.frag"); err != nil {
		return nil, err
	}
	if a.textProgram, err = newProgram(cfg.Assets.ShaderDir, "text.vert", "text.frag"); err != nil {
		return nil, err
	}
	a.texture = loadTexture(cfg.Assets.Texture)
	if a.overlay, err = newOverlay(); err != nil {
		return nil, err
	}

	height, err := terrain.FromConfig(cfg.World, world.ChunkHeight-1)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	a.world = world.NewWorld(cfg.World.NumOfChunks, height, func(world.ChunkPos) world.MeshSink {
		m := newGLMesh()
		a.meshes = append(a.meshes, m)
		return m
	})
	slog.Info("meshes uploaded", "chunks", len(a.meshes), "elapsed", time.Since(start))

	window.SetKeyCallback(a.onKey)
	window.SetCursorPosCallback(a.onCursorPos)
	window.SetMouseButtonCallback(a.onMouseButton)
	window.SetFocusCallback(a.onFocus)
	window.SetFramebufferSizeCallback(a.onResize)
	a.lockCursor(true)

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	return a, nil
}

func (a *app) release() {
	for _, m := range a.meshes {
		m.delete()
	}
	a.overlay.delete()
	gl.DeleteTextures(1, &a.texture)
	gl.DeleteProgram(a.blockProgram)
	gl.DeleteProgram(a.textProgram)
}

func (a *app) loop() {
	previousFrame := time.Now()
	var tickAccumulator float32

	for !a.window.ShouldClose() {
		now := time.Now()
		deltaTime := float32(now.Sub(previousFrame).Seconds())
		previousFrame = now
		tickAccumulator += deltaTime

		glfw.PollEvents()
		a.fps.update(now)
		a.movement(deltaTime)

		for tickAccumulator >= tickUpdateRate {
			a.previous = a.body.Position
			a.tick()
			tickAccumulator -= tickUpdateRate
		}
		a.eye = lerp(a.previous, a.body.Position, mgl32.Clamp(tickAccumulator/tickUpdateRate, 0, 1))

		gl.ClearColor(0.2, 0.2, 0.2, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		a.drawWorld()
		if a.showDebug {
			a.drawOverlay()
		}
		a.window.SwapBuffers()
	}
}

func (a *app) tick() {
	a.body.Damp(physics.DefaultDamping, a.flying)
	if a.flying {
		a.body.OnGround = false
		a.body.Position = a.body.Position.Add(a.body.Velocity)
		return
	}
	a.body.Step(a.world.Solid, physics.DefaultGravity)
}

func (a *app) drawWorld() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	gl.UseProgram(a.blockProgram)
	projection := a.camera.projection(a.cfg.Camera, a.width, a.height)
	view := a.camera.view(a.eye)
	setMat4(a.blockProgram, "projection", projection)
	setMat4(a.blockProgram, "view", view)
	gl.Uniform1i(uniform(a.blockProgram, "blockTexture"), 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, a.texture)
	for _, m := range a.meshes {
		m.draw()
	}
}

func (a *app) drawOverlay() {
	faces := 0
	for _, c := range a.world.Chunks() {
		faces += c.Faces()
	}
	mode := "walking"
	if a.flying {
		mode = "flying"
	}
	p := a.body.Position
	lines := []string{
		a.fps.text,
		fmt.Sprintf("Position: %.2f, %.2f, %.2f", p.X(), p.Y(), p.Z()),
		fmt.Sprintf("Chunk: %s", chunkLabel(a.world.ChunkAt(floorInt(p.X()), floorInt(p.Z())))),
		fmt.Sprintf("Mode: %s  Grounded: %t", mode, a.body.OnGround),
		fmt.Sprintf("Chunks: %d  Faces: %d", len(a.world.Chunks()), faces),
	}
	if err := a.overlay.update(lines); err != nil {
		slog.Warn("overlay text", "err", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	a.overlay.draw(a.textProgram, a.width, a.height)
	gl.Disable(gl.BLEND)
}

func floorInt(v float32) int {
	return int(math.Floor(float64(v)))
}

func chunkLabel(c *world.Chunk) string {
	if c == nil {
		return "none"
	}
	return c.Position().String()
}

package main

import (
	"flag"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpyramid/config"
	"github.com/bloeys/glpyramid/controller"
	"github.com/bloeys/glpyramid/engine"
	"github.com/bloeys/glpyramid/hotreload"
	"github.com/bloeys/glpyramid/input"
	"github.com/bloeys/glpyramid/logging"
	"github.com/bloeys/glpyramid/renderer"
	"github.com/bloeys/glpyramid/renderer/rend3dgl"
	"github.com/bloeys/glpyramid/timing"
	nmageimgui "github.com/bloeys/glpyramid/ui/imgui"
	"github.com/bloeys/glpyramid/ui/panel"
	"github.com/veandco/go-sdl2/sdl"
)

type Game struct {
	Cfg config.Config
	Win *engine.Window

	Rend    *rend3dgl.Rend3DGL
	Pyramid *renderer.Pyramid
	Ctrl    *controller.Controller
	Panel   *panel.Panel

	ShaderWatcher *hotreload.Watcher
}

func main() {

	configPath := flag.String("config", "pyramid.toml", "path to the TOML config file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error), overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logging.ErrLog.Fatalln("Invalid log level. Err:", err)
	}

	//Init engine
	err = engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}
	defer sdl.Quit()

	//Create window
	window, err := engine.CreateOpenGLWindowCentered(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, engine.WindowFlags_RESIZABLE|engine.WindowFlags_ALLOW_HIGHDPI)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}
	defer window.Destroy()

	engine.SetMSAA(cfg.Window.MSAA)
	engine.SetVSync(cfg.Window.VSync)

	imguiInfo, err := nmageimgui.NewImGui(cfg.Shaders.Imgui)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init imgui. Err:", err)
	}
	defer imguiInfo.Delete()

	game := newGame(cfg, window)
	window.EventCallbacks = append(window.EventCallbacks, game.handleWindowEvents)
	err = engine.Run(game, window, imguiInfo, game.Rend)
	if err != nil {
		// Fatal skips deferred calls, so release what we can first
		imguiInfo.Delete()
		window.Destroy()
		logging.ErrLog.Fatalln("Failed to start. Err:", err)
	}
}

func newGame(cfg config.Config, win *engine.Window) *Game {

	ctrlOpts := controller.Options{
		InitialZoom: cfg.View.InitialZoom,
		ZoomStep:    cfg.View.ZoomStep,
	}
	copy(ctrlOpts.InitialColor[:], cfg.View.InitialColor)

	rendOpts := renderer.DefaultOptions()
	rendOpts.ApplyZRotation = cfg.View.ApplyZRotation
	rendOpts.ClearColor = gglm.NewVec4(cfg.View.ClearColor[0], cfg.View.ClearColor[1], cfg.View.ClearColor[2], cfg.View.ClearColor[3])
	if cfg.View.Primitive == config.PrimitiveStrip {
		rendOpts.Primitive = renderer.Primitive_TriangleStrip
	}

	g := &Game{
		Cfg:  cfg,
		Win:  win,
		Rend: rend3dgl.NewRend3DGL(),
		Ctrl: controller.New(ctrlOpts, win.RequestRedraw),
	}
	g.Pyramid = renderer.NewPyramid(g.Rend, rendOpts)
	g.Panel = panel.New(g.Ctrl, ctrlOpts.InitialColor)

	return g
}

func (g *Game) handleWindowEvents(e sdl.Event) {

	switch e := e.(type) {
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			logging.DebugLog.With("window resized", "width", e.Data1, "height", e.Data2)
		}
	}
}

func (g *Game) Init() error {

	src, err := renderer.LoadShaderSources(g.Cfg.Shaders.Vertex, g.Cfg.Shaders.Fragment)
	if err != nil {
		return err
	}

	if err := g.Pyramid.Initialize(src); err != nil {
		g.Pyramid.Delete()
		return err
	}

	g.Win.Pointer = g.Ctrl
	g.Win.Viewport = g.Pyramid

	if g.Cfg.Shaders.Watch {
		g.startShaderWatcher()
	}

	g.Win.RequestRedraw()
	return nil
}

func (g *Game) startShaderWatcher() {

	paths := []string{g.Cfg.Shaders.Vertex, g.Cfg.Shaders.Fragment}

	var err error
	g.ShaderWatcher, err = hotreload.New(paths, hotreload.DefaultDebounce, func() {
		g.Win.RunOnMainThread(g.reloadShaders)
	})
	if err != nil {
		logging.WarnLog.Printf("Shader hot reload disabled. Err: %v\n", err)
		return
	}

	logging.InfoLog.With("watching shaders", "vertex", paths[0], "fragment", paths[1])
}

func (g *Game) reloadShaders() {

	src, err := renderer.LoadShaderSources(g.Cfg.Shaders.Vertex, g.Cfg.Shaders.Fragment)
	if err == nil {
		err = g.Pyramid.ReloadShaders(src)
	}

	if err != nil {
		logging.ErrLog.Printf("Shader reload failed, keeping the previous program. Err: %v\n", err)
		return
	}

	logging.InfoLog.Println("Shaders reloaded")
	g.Win.RequestRedraw()
}

func (g *Game) Update() {

	if input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
		return
	}

	if input.KeyClicked(sdl.K_HOME) {
		g.Ctrl.Reset()
	}

	g.Panel.Build()
}

func (g *Game) Render() {
	g.Pyramid.Draw(g.Ctrl.State())
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {

	if g.ShaderWatcher != nil {
		if err := g.ShaderWatcher.Close(); err != nil {
			logging.WarnLog.Printf("Failed to close shader watcher. Err: %v\n", err)
		}
	}

	g.Panel.Close()
	g.Pyramid.Delete()

	logging.InfoLog.With("viewer closed", "uptime_s", timing.ElapsedTime())
}

// Package game implements the viewer's main loop: it feeds input to the state
// machine and draws whatever the current state exposes.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/engine/debug"
	"github.com/Faultbox/terragen/internal/engine/input"
	"github.com/Faultbox/terragen/internal/engine/lighting"
	"github.com/Faultbox/terragen/internal/engine/renderer"
	"github.com/Faultbox/terragen/internal/engine/window"
	"github.com/Faultbox/terragen/internal/game/states"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/internal/pipeline"
	"github.com/Faultbox/terragen/internal/terrain"
)

// Title is the window title prefix.
const Title = "terragen"

// Game is the viewer instance.
type Game struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	ctx     *states.Context
	capture *debug.Capture

	uploaded *terrain.Mesh
	shotDue  bool
}

// New creates the window, renderer and state machine. onError, when set, is
// called with generation failures.
func New(cfg *config.Config, p *pipeline.Pipeline, onError func(error)) (*Game, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{cfg: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	width, height := g.window.Size()
	g.renderer, err = renderer.New(renderer.DefaultConfig(width, height))
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.renderer.LightDir = lighting.LightDirection(cfg.Graphics.SunLongitude, cfg.Graphics.SunLatitude)

	g.input = input.New()
	g.capture = debug.NewCapture(cfg.Graphics.ScreenshotDir, Title)

	g.ctx = &states.Context{
		Manager:   states.NewManager(),
		Pipeline:  p,
		Camera:    cfg.Camera,
		OnError:   onError,
		Wireframe: cfg.Graphics.Wireframe,
	}
	g.ctx.Manager.Change(states.NewMenuState(g.ctx))

	logger.Info("viewer initialized")
	return g, nil
}

// Run runs the main loop until the window closes or the user quits.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		if err := g.handleEvents(); err != nil {
			return fmt.Errorf("input error: %w", err)
		}

		if err := g.ctx.Manager.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		if g.ctx.QuitRequested {
			g.running = false
		}

		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if g.shotDue {
			g.screenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			g.updateTitle()
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (g *Game) Close() {
	logger.Info("closing viewer")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// keyActions maps key presses to state actions.
var keyActions = map[sdl.Scancode]states.Action{
	sdl.SCANCODE_RETURN: states.ActionConfirm,
	sdl.SCANCODE_SPACE:  states.ActionConfirm,
	sdl.SCANCODE_N:      states.ActionNewSeed,
	sdl.SCANCODE_ESCAPE: states.ActionBack,
	sdl.SCANCODE_F:      states.ActionToggleWireframe,
}

func (g *Game) handleEvents() error {
	_, inGame := g.ctx.Manager.Current().(*states.InGameState)

	for _, event := range g.input.Events() {
		var err error
		switch event.Type {
		case input.EventWindowResize:
			width, height := g.window.Size()
			g.renderer.Resize(width, height)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_F12:
				g.shotDue = true
				continue
			case sdl.SCANCODE_P:
				g.exportHeightmap()
				continue
			}
			if a, ok := keyActions[event.Key]; ok {
				// Space is the fly camera's climb key in game.
				if inGame && event.Key == sdl.SCANCODE_SPACE {
					continue
				}
				err = g.ctx.Manager.HandleInput(a)
			}
		case input.EventMouseDown:
			if inGame && event.Button == sdl.BUTTON_LEFT {
				err = g.ctx.Manager.HandleInput(states.ActionGrabCursor)
			}
		case input.EventMouseWheel:
			if done, ok := g.ctx.Manager.Current().(*states.GenDoneState); ok {
				done.Orbit.HandleZoom(float32(event.Wheel))
			}
		}
		if err != nil {
			return err
		}
	}

	if inGame {
		dx, dy := g.input.MouseDelta()
		return g.ctx.Manager.HandleInput(states.Controls{
			Forward: g.input.Axis(sdl.SCANCODE_S, sdl.SCANCODE_W),
			Right:   g.input.Axis(sdl.SCANCODE_A, sdl.SCANCODE_D),
			Up:      g.input.Axis(sdl.SCANCODE_LSHIFT, sdl.SCANCODE_SPACE),
			LookX:   float32(dx),
			LookY:   float32(dy),
		})
	}
	return nil
}

func (g *Game) render() error {
	g.renderer.Begin()
	defer g.renderer.End()

	width, height := g.renderer.Size()
	proj := g.renderer.Projection()

	switch s := g.ctx.Manager.Current().(type) {
	case *states.MenuState:
		g.syncCursor(false)
		g.renderer.DrawPreview(renderer.PreviewRect(width, height))

	case *states.GenRunState:
		g.syncCursor(false)
		if hf, ok := s.TakePreview(); ok {
			g.renderer.UploadPreview(hf.ToImage(g.cfg.Terrain.HeightScale, g.cfg.Terrain.WaterHeight))
		}
		g.renderer.DrawPreview(renderer.PreviewRect(width, height))
		g.renderer.DrawProgress(s.Percent() / 100)

	case *states.GenDoneState:
		g.syncCursor(false)
		if err := g.ensureTerrain(s.Mesh()); err != nil {
			return err
		}
		g.renderer.DrawTerrain(proj.Mul(s.Orbit.ViewMatrix()), g.ctx.Wireframe)

	case *states.InGameState:
		g.syncCursor(s.CursorLocked)
		if err := g.ensureTerrain(s.Mesh()); err != nil {
			return err
		}
		g.renderer.DrawTerrain(proj.Mul(s.Camera.ViewMatrix()), g.ctx.Wireframe)
	}

	return g.ctx.Manager.Render()
}

// ensureTerrain uploads mesh once per generation run.
func (g *Game) ensureTerrain(mesh *terrain.Mesh) error {
	if mesh == g.uploaded {
		return nil
	}
	if err := g.renderer.UploadTerrain(mesh, g.cfg.Terrain.WaterLine()); err != nil {
		return fmt.Errorf("upload terrain: %w", err)
	}
	g.uploaded = mesh
	return nil
}

// screenshot saves the frame just rendered, before it is swapped out.
func (g *Game) screenshot() {
	g.shotDue = false
	pixels, width, height := g.renderer.ReadPixels()
	path, err := g.capture.SavePixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// exportHeightmap saves the current heightmap as a grey-scale PNG with the
// water tint.
func (g *Game) exportHeightmap() {
	hf := g.ctx.Pipeline.Heightmap()
	path, err := g.capture.SaveImage(hf.ToImage(g.cfg.Terrain.HeightScale, g.cfg.Terrain.WaterHeight))
	if err != nil {
		logger.Warn("heightmap export failed", zap.Error(err))
		return
	}
	logger.Info("heightmap exported", zap.String("path", path), zap.Uint64("seed", g.ctx.Pipeline.Seed()))
}

func (g *Game) syncCursor(locked bool) {
	if g.input.CursorLocked() != locked {
		g.input.SetCursorLocked(locked)
	}
}

func (g *Game) updateTitle() {
	p := g.ctx.Pipeline
	g.window.SetTitle(fmt.Sprintf("%s - seed %d - %s %.0f%%", Title, p.Seed(), p.StageName(), p.Percent()))
}

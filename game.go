package starfield

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// RunConfig holds window and loop options for Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool

	// ShowOverlay starts with the F3 stats overlay visible.
	ShowOverlay bool

	// ScrollStep is the virtual scroll distance per wheel notch in pixels.
	ScrollStep float64
	// ScrollPages bounds the virtual scroll in viewport heights.
	ScrollPages float64

	// Reload, when set, delivers replacement configs (see ConfigWatcher).
	// They are applied between ticks.
	Reload <-chan Config

	// ExitWhenScriptDone ends the loop once an attached test script has run
	// and its screenshots are written.
	ExitWhenScriptDone bool
}

// DefaultRunConfig returns a resizable 1280x800 window.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:       "starfield",
		Width:       1280,
		Height:      800,
		Resizable:   true,
		ScrollStep:  defaultScrollStep,
		ScrollPages: defaultScrollPages,
	}
}

// Game adapts a Scene to ebiten.Game. Update samples live input (unless
// synthetic input is pending) and advances the scene one tick; Draw renders
// through an EbitenCanvas; Layout forwards surface size changes.
type Game struct {
	scene  *Scene
	cfg    RunConfig
	canvas *EbitenCanvas
	input  inputState

	overlay     statsOverlay
	showOverlay bool
}

// NewGame wraps scene for use with ebiten.RunGame.
func NewGame(scene *Scene, cfg RunConfig) *Game {
	return &Game{
		scene:       scene,
		cfg:         cfg,
		showOverlay: cfg.ShowOverlay,
	}
}

// Scene returns the wrapped scene.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.applyReload()
	if !g.scene.Injecting() {
		g.sampleInput()
	}
	g.scene.Update()

	if g.cfg.ExitWhenScriptDone && g.scene.testRunner != nil &&
		g.scene.testRunner.Done() && len(g.scene.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// applyReload drains at most one pending config without blocking.
func (g *Game) applyReload() {
	if g.cfg.Reload == nil {
		return
	}
	select {
	case cfg, ok := <-g.cfg.Reload:
		if !ok {
			g.cfg.Reload = nil
			return
		}
		g.scene.Reconfigure(cfg)
		ebiten.SetTPS(cfg.TickRate)
	default:
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = NewEbitenCanvas(screen)
	} else {
		g.canvas.SetTarget(screen)
	}
	g.scene.Draw(g.canvas)
	if g.showOverlay {
		g.overlay.draw(screen, g.scene)
	}
	g.scene.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical surface always matches the
// window, and any change of size regenerates the scene.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the window is closed. It
// blocks and must be called from the main goroutine.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultRunConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(scene.cfg.TickRate)

	g := NewGame(scene, cfg)
	scene.logger.Info("starting",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("tps", scene.cfg.TickRate))

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

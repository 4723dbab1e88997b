// Package starfield renders an animated night-sky background for
// [Ebitengine]: a population of drifting, twinkling stars with fading trails,
// invisible vortices that swirl them, a pointer that stirs nearby stars,
// occasional shooting stars, and a crescent moon. Everything dims as the
// viewer scrolls down the page.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := starfield.NewScene(starfield.DefaultConfig())
//	starfield.Run(scene, starfield.DefaultRunConfig())
//
// For full control, implement [ebiten.Game] yourself and drive the scene
// directly. The scene draws onto any [Canvas]:
//
//	type Game struct {
//		scene  *starfield.Scene
//		canvas *starfield.EbitenCanvas
//	}
//
//	func (g *Game) Update() error { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) {
//		g.canvas.SetTarget(s)
//		g.scene.Draw(g.canvas)
//	}
//	func (g *Game) Layout(w, h int) (int, int) { g.scene.Resize(w, h); return w, h }
//
// # Simulation
//
// The scene advances in fixed ticks, nominally 60 per second. Each tick may
// spawn a shooting star, moves every star (twinkle, vortex forces, pointer
// force, damping, drift, wrap, trail sample), and then ages shooting stars
// and drops the dead ones. Motion is per tick, not per second: a host that
// ticks slower runs the sky slower.
//
// The population, vortex layout and moon are derived from the surface size.
// [Scene.Resize] with a new size regenerates all of them.
//
// # Input
//
// Input arrives as samples: [Scene.SetPointer], [Scene.ClearPointer] and
// [Scene.SetScroll]. The next tick observes the latest sample. [Game] feeds
// these from the mouse, touch and wheel; tests and scripts can queue the
// same events with [Scene.InjectPointer] and friends, or with a JSON
// [TestRunner].
//
// # Rendering
//
// [Renderer] issues a fixed sequence of Canvas operations each frame: clear,
// moon glow, moon body, moon shadow, then every star (trail, body, halo) and
// every shooting star. Two canvases are provided: [EbitenCanvas] for the
// GPU path and [RasterCanvas], a software rasterizer for headless export.
//
// # Configuration
//
// [Config] carries every tunable. [LoadConfig] reads YAML over
// [DefaultConfig] and validates the result; [ConfigWatcher] reloads it on
// change for live tuning.
//
// [Ebitengine]: https://ebitengine.org
package starfield

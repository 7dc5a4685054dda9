//go:build ebiten

package app

import (
	"log/slog"
	"slices"
	"time"

	"genart/internal/config"
	"genart/internal/core"
	"genart/internal/render"
	"genart/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a scene driver to the ebiten.Game interface. Scenes paint
// into a persistent offscreen image during Update; Draw only presents it.
type Game struct {
	cfg     *config.Config
	log     *slog.Logger
	driver  *core.Driver
	screen  *render.Screen
	hud     *ui.HUD
	overlay *ui.Overlay

	paused   bool
	tickOnce bool

	cursor  core.Point
	pending core.Size
	touches []ebiten.TouchID
}

// New constructs a Game running cfg.Scene.
func New(cfg *config.Config, logger *slog.Logger) (*Game, error) {
	scene, err := NewScene(cfg, cfg.Scene)
	if err != nil {
		return nil, err
	}
	screen := render.NewScreen(cfg.Window.Width, cfg.Window.Height)
	return &Game{
		cfg:     cfg,
		log:     logger,
		driver:  core.NewDriver(scene, screen, cfg.Seed),
		screen:  screen,
		hud:     ui.NewHUD(),
		overlay: ui.NewOverlay(),
		cursor:  core.OffCanvas,
	}, nil
}

// Reset reinitializes the scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.driver.Reset(seed)
	g.tickOnce = false
	g.log.Info("reset", "scene", g.driver.Scene().Name(), "seed", seed)
}

// Update handles input and advances the scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.driver.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Visible = !g.hud.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.nextScene()
	}
	g.overlay.Update()

	g.applyResize()
	g.pollPointer()

	if !g.paused || g.tickOnce {
		g.driver.Tick()
		g.tickOnce = false
	}

	g.hud.Update(g.driver.Scene(), ui.Status{Seed: g.driver.Seed(), Ticks: g.driver.Ticks(), Paused: g.paused})
	return nil
}

// Draw presents the offscreen canvas and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Blit(screen)
	g.overlay.Draw(screen, g.driver.Scene())
	g.hud.Draw(screen)
}

// Layout follows the window size; the change is applied on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (core.Size{W: outsideWidth, H: outsideHeight}) != g.screen.Size() {
		g.pending = core.Size{W: outsideWidth, H: outsideHeight}
	}
	if g.pending != (core.Size{}) {
		return g.pending.W, g.pending.H
	}
	size := g.screen.Size()
	return size.W, size.H
}

func (g *Game) applyResize() {
	if g.pending == (core.Size{}) {
		return
	}
	size := g.pending
	g.pending = core.Size{}
	if err := g.driver.Resize(size.W, size.H); err != nil {
		g.log.Error("resize failed", "width", size.W, "height", size.H, "err", err)
		return
	}
	g.log.Debug("resized", "width", size.W, "height", size.H)
}

// pollPointer maps mouse and touch state onto the driver. The pointer leaves
// the canvas when the cursor exits the window or the last touch ends.
func (g *Game) pollPointer() {
	size := g.screen.Size()
	inside := func(p core.Point) bool {
		return p.X >= 0 && p.Y >= 0 && p.X < float64(size.W) && p.Y < float64(size.H)
	}

	mx, my := ebiten.CursorPosition()
	cursor := core.Point{X: float64(mx), Y: float64(my)}
	if !ebiten.IsFocused() || !inside(cursor) {
		cursor = core.OffCanvas
	}
	if cursor != g.cursor {
		g.cursor = cursor
		g.driver.SetPointer(cursor)
	}
	if cursor != core.OffCanvas && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.driver.Trigger(cursor)
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.driver.Trigger(core.Point{X: float64(x), Y: float64(y)})
	}
	active := ebiten.AppendTouchIDs(g.touches[:0])
	g.touches = active
	if len(active) > 0 {
		x, y := ebiten.TouchPosition(active[0])
		g.driver.SetPointer(core.Point{X: float64(x), Y: float64(y)})
		return
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		g.driver.ClearPointer()
	}
}

func (g *Game) nextScene() {
	names := SceneNames()
	i := slices.Index(names, g.driver.Scene().Name())
	name := names[(i+1)%len(names)]

	scene, err := NewScene(g.cfg, name)
	if err != nil {
		g.log.Error("switching scene failed", "scene", name, "err", err)
		return
	}
	size := g.screen.Size()
	if scene.Size() != size {
		scene.Resize(size.W, size.H)
	}
	g.driver.SetScene(scene)
	g.log.Info("scene", "name", name, "seed", g.driver.Seed())
}

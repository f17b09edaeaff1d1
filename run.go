package viewport

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background fills the window before the image is drawn. Nil means
	// opaque black.
	Background color.Color

	// OnUpdate runs every frame after input has been delivered. Returning
	// a non-nil error stops the loop.
	OnUpdate func(now time.Time) error
	// PostDraw runs after the image layer is drawn, for overlays.
	PostDraw func(screen *ebiten.Image)
}

// runGame adapts a Viewport to ebiten.Game. The whole window is the
// container.
type runGame struct {
	vp    *Viewport
	tex   *ebiten.Image
	cfg   RunConfig
	input *Input
	size  Size
}

func (g *runGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	g.input.Poll(g.vp, now)
	g.vp.Update(now)
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate(now)
	}
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	g.vp.Draw(screen, g.tex, g.input.Origin)
	if g.cfg.PostDraw != nil {
		g.cfg.PostDraw(screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.size = Size{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// Run opens a window showing tex through vp and blocks until the window is
// closed or Escape is pressed. The window becomes vp's container.
func Run(vp *Viewport, tex *ebiten.Image, cfg RunConfig) error {
	if vp == nil {
		return fmt.Errorf("run viewport: nil viewport")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 800
	}
	if cfg.Background == nil {
		cfg.Background = color.Black
	}

	g := &runGame{
		vp:    vp,
		tex:   tex,
		cfg:   cfg,
		input: NewInput(Vec2{}),
		size:  Size{Width: float64(cfg.Width), Height: float64(cfg.Height)},
	}
	vp.SetContainerFunc(func() Size { return g.size })

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run viewport: %w", err)
	}
	return nil
}

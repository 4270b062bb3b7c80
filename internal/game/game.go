package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/galaxy-visualization/internal/audio"
	"github.com/iburimskiy/galaxy-visualization/internal/config"
	"github.com/iburimskiy/galaxy-visualization/internal/galaxy"
	"github.com/iburimskiy/galaxy-visualization/internal/render"
)

// ColorPicker asks the user for a color. It may block.
type ColorPicker func(title string, initial galaxy.Color) (galaxy.Color, error)

// Options configures a Game.
type Options struct {
	Params galaxy.Parameters
	Logger *slog.Logger

	// Source overrides the generator's random source.
	Source galaxy.Source
	// Chime, when set, plays after every regeneration.
	Chime *audio.Chime
	// Updates delivers parameter sets from outside the window, e.g. a
	// watched config file. They are committed like a panel edit.
	Updates <-chan galaxy.Parameters
	// Picker defaults to the native color dialog.
	Picker ColorPicker
}

type colorPick struct {
	row   int
	color galaxy.Color
	err   error
}

// Game is the galaxy window: it owns the live galaxy, camera and tweak panel.
type Game struct {
	log     *slog.Logger
	gen     *galaxy.Generator
	params  galaxy.Parameters
	surface *render.Surface
	camera  *render.Camera
	panel   *panel
	timings *timings
	chime   *audio.Chime

	updates <-chan galaxy.Parameters
	picker  ColorPicker
	picks   chan colorPick
	picking bool

	// pointer state
	orbiting  bool
	lastX     int
	lastY     int
	lastClick time.Time

	elapsed float64
	paused  bool
	lastErr error
}

// New builds a game and generates its first galaxy.
func New(opts Options) (*Game, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	picker := opts.Picker
	if picker == nil {
		picker = pickColor
	}
	g := &Game{
		log:     log,
		gen:     galaxy.NewGenerator(opts.Source),
		surface: render.NewSurface(),
		camera:  render.NewCamera(),
		panel:   newPanel(opts.Params),
		timings: newTimings(config.TimingRingSize),
		chime:   opts.Chime,
		updates: opts.Updates,
		picker:  picker,
		picks:   make(chan colorPick, 1),
	}
	if err := g.Regenerate(opts.Params); err != nil {
		return nil, err
	}
	return g, nil
}

// Params returns the parameters of the installed galaxy.
func (g *Game) Params() galaxy.Parameters { return g.params }

// Points returns the installed galaxy mesh.
func (g *Game) Points() *render.Points { return g.surface.Points() }

// Regenerate builds a new galaxy from p and installs it in place of the
// current one. On error the current galaxy is kept.
func (g *Game) Regenerate(p galaxy.Parameters) error {
	start := time.Now()
	buf, err := g.gen.Generate(p)
	if err != nil {
		g.log.Error("galaxy generation failed", "err", err)
		return fmt.Errorf("regenerate: %w", err)
	}
	g.surface.Install(render.NewPoints(buf, p.Size))
	g.params = p
	g.panel.sync(p)

	took := time.Since(start)
	g.timings.add(took)
	g.log.Debug("galaxy regenerated", "count", p.Count, "branches", p.Branches, "took", took)
	g.chime.Play()
	return nil
}

// commit clamps p into the slider ranges and regenerates.
func (g *Game) commit(p galaxy.Parameters) {
	if err := g.Regenerate(p.Clamp()); err != nil {
		g.lastErr = err
		return
	}
	g.lastErr = nil
}

// Close releases the installed galaxy.
func (g *Game) Close() {
	g.surface.Dispose()
}

func (g *Game) Update() error {
	g.drainExternal()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.open = !g.panel.open
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.commit(g.params)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	g.handlePointer()

	g.camera.Update()
	if !g.paused {
		g.elapsed += 1.0 / float64(ebiten.TPS())
	}
	return nil
}

// drainExternal applies config updates and finished color picks without
// blocking.
func (g *Game) drainExternal() {
	for {
		select {
		case p, ok := <-g.updates:
			if !ok {
				g.updates = nil
				continue
			}
			g.log.Info("applying parameters from config")
			g.commit(p)
		case pick := <-g.picks:
			g.picking = false
			switch {
			case errors.Is(pick.err, zenity.ErrCanceled):
			case pick.err != nil:
				g.log.Warn("color picker", "err", pick.err)
				g.lastErr = pick.err
			default:
				g.commit(g.panel.setColor(pick.row, pick.color))
			}
		default:
			return
		}
	}
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !g.panel.press(mx, my) {
			g.orbiting = true
			if time.Since(g.lastClick) < config.DoubleClickInterval {
				ebiten.SetFullscreen(!ebiten.IsFullscreen())
				g.lastClick = time.Time{}
			} else {
				g.lastClick = time.Now()
			}
		}
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.orbiting {
			g.camera.Orbit(float32(mx-g.lastX), float32(my-g.lastY))
		} else {
			g.panel.drag(mx)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.orbiting = false
		if p, ok := g.panel.release(); ok {
			g.commit(p)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if row := g.panel.colorRowAt(mx, my); row >= 0 {
			g.startPick(row)
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 && !g.panel.contains(mx, my) {
		g.camera.Zoom(float32(wy))
	}
	g.lastX, g.lastY = mx, my
}

// startPick opens the color dialog on its own goroutine; the result comes
// back through g.picks.
func (g *Game) startPick(row int) {
	if g.picking {
		return
	}
	g.picking = true
	c := &g.panel.controls[row]
	initial := c.getColor(&g.panel.draft)
	go func() {
		picked, err := g.picker(c.label, initial)
		g.picks <- colorPick{row: row, color: picked, err: err}
	}()
}

func pickColor(title string, initial galaxy.Color) (galaxy.Color, error) {
	c, err := zenity.SelectColor(zenity.Title(title), zenity.Color(initial))
	if err != nil {
		return galaxy.Color{}, err
	}
	return galaxy.ColorFrom(c), nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.surface.Draw(screen, g.camera, float32(g.elapsed*config.RotationSpeed))
	g.panel.draw(screen)

	status := fmt.Sprintf("FPS: %0.1f  particles: %d  generated in %s (avg %s)",
		ebiten.ActualFPS(), g.Points().Len(),
		formatDuration(g.timings.last()), formatDuration(g.timings.mean()))
	if g.paused {
		status += "  | paused"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

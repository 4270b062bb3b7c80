package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/galaxy-visualization/internal/config"
	"github.com/iburimskiy/galaxy-visualization/internal/galaxy"
)

const (
	valueWidth = 64
	trackInset = 8
	hueSteps   = 36
)

// control is one row of the tweak panel.
type control struct {
	label string
	rng   galaxy.Range
	get   func(*galaxy.Parameters) float64
	set   func(*galaxy.Parameters, float64)

	// color rows use these instead of rng/get/set
	getColor func(*galaxy.Parameters) galaxy.Color
	setColor func(*galaxy.Parameters, galaxy.Color)
}

func (c *control) isColor() bool { return c.getColor != nil }

func galaxyControls() []control {
	return []control{
		{
			label: "Particle Count", rng: galaxy.Bounds.Count,
			get: func(p *galaxy.Parameters) float64 { return float64(p.Count) },
			set: func(p *galaxy.Parameters, v float64) { p.Count = int(math.Round(v)) },
		},
		{
			label: "Particle Size", rng: galaxy.Bounds.Size,
			get: func(p *galaxy.Parameters) float64 { return p.Size },
			set: func(p *galaxy.Parameters, v float64) { p.Size = v },
		},
		{
			label: "Radius", rng: galaxy.Bounds.Radius,
			get: func(p *galaxy.Parameters) float64 { return p.Radius },
			set: func(p *galaxy.Parameters, v float64) { p.Radius = v },
		},
		{
			label: "Galaxy Branches", rng: galaxy.Bounds.Branches,
			get: func(p *galaxy.Parameters) float64 { return float64(p.Branches) },
			set: func(p *galaxy.Parameters, v float64) { p.Branches = int(math.Round(v)) },
		},
		{
			label: "Galaxy Spin", rng: galaxy.Bounds.Spin,
			get: func(p *galaxy.Parameters) float64 { return p.Spin },
			set: func(p *galaxy.Parameters, v float64) { p.Spin = v },
		},
		{
			label: "Randomness", rng: galaxy.Bounds.Randomness,
			get: func(p *galaxy.Parameters) float64 { return p.Randomness },
			set: func(p *galaxy.Parameters, v float64) { p.Randomness = v },
		},
		{
			label: "RandomnessPower", rng: galaxy.Bounds.RandomnessPower,
			get: func(p *galaxy.Parameters) float64 { return p.RandomnessPower },
			set: func(p *galaxy.Parameters, v float64) { p.RandomnessPower = v },
		},
		{
			label:    "InsideColor",
			getColor: func(p *galaxy.Parameters) galaxy.Color { return p.InsideColor },
			setColor: func(p *galaxy.Parameters, c galaxy.Color) { p.InsideColor = c },
		},
		{
			label:    "OutsideColor",
			getColor: func(p *galaxy.Parameters) galaxy.Color { return p.OutsideColor },
			setColor: func(p *galaxy.Parameters, c galaxy.Color) { p.OutsideColor = c },
		},
	}
}

// panel is the tweak panel. While a row is dragged only the draft changes;
// the draft is handed out for regeneration when the drag is released.
type panel struct {
	controls []control
	open     bool
	draft    galaxy.Parameters
	active   int
}

func newPanel(p galaxy.Parameters) *panel {
	return &panel{
		controls: galaxyControls(),
		draft:    p,
		active:   -1,
	}
}

// sync replaces the draft with the committed parameters. During a drag the
// row being dragged keeps its draft value.
func (pn *panel) sync(p galaxy.Parameters) {
	if pn.active < 0 {
		pn.draft = p
		return
	}
	c := &pn.controls[pn.active]
	if c.isColor() {
		col := c.getColor(&pn.draft)
		pn.draft = p
		c.setColor(&pn.draft, col)
		return
	}
	v := c.get(&pn.draft)
	pn.draft = p
	c.set(&pn.draft, v)
}

func (pn *panel) height() int {
	if !pn.open {
		return config.PanelHeaderH
	}
	return config.PanelHeaderH + len(pn.controls)*config.PanelRowHeight
}

// contains reports whether (x, y) is over the panel.
func (pn *panel) contains(x, y int) bool {
	return x >= config.PanelX && x < config.PanelX+config.PanelWidth &&
		y >= config.PanelY && y < config.PanelY+pn.height()
}

func trackBounds() (x0, x1 int) {
	return config.PanelX + config.PanelLabelW, config.PanelX + config.PanelWidth - valueWidth - trackInset
}

// rowAt returns the control index under (x, y) or -1.
func (pn *panel) rowAt(x, y int) int {
	if !pn.open || !pn.contains(x, y) {
		return -1
	}
	i := (y - config.PanelY - config.PanelHeaderH) / config.PanelRowHeight
	if y < config.PanelY+config.PanelHeaderH || i >= len(pn.controls) {
		return -1
	}
	return i
}

// colorRowAt returns the color control index under (x, y) or -1.
func (pn *panel) colorRowAt(x, y int) int {
	i := pn.rowAt(x, y)
	if i < 0 || !pn.controls[i].isColor() {
		return -1
	}
	return i
}

// press handles a left button press and reports whether the panel used it.
func (pn *panel) press(x, y int) bool {
	if !pn.contains(x, y) {
		return false
	}
	if y < config.PanelY+config.PanelHeaderH {
		pn.open = !pn.open
		return true
	}
	x0, x1 := trackBounds()
	if i := pn.rowAt(x, y); i >= 0 && x >= x0 && x <= x1 {
		pn.active = i
		pn.drag(x)
	}
	return true
}

// drag moves the active row to pointer position x.
func (pn *panel) drag(x int) {
	if pn.active < 0 {
		return
	}
	x0, x1 := trackBounds()
	frac := clamp01(float64(x-x0) / float64(x1-x0))
	c := &pn.controls[pn.active]
	if c.isColor() {
		c.setColor(&pn.draft, withHue(c.getColor(&pn.draft), frac*359))
		return
	}
	c.set(&pn.draft, c.rng.Snap(c.rng.Min+frac*(c.rng.Max-c.rng.Min)))
}

// release ends a drag. It returns the draft and true when a row was being
// edited, which is the moment the edit commits.
func (pn *panel) release() (galaxy.Parameters, bool) {
	if pn.active < 0 {
		return galaxy.Parameters{}, false
	}
	pn.active = -1
	return pn.draft, true
}

// setColor commits a color picked outside the panel.
func (pn *panel) setColor(row int, c galaxy.Color) galaxy.Parameters {
	pn.controls[row].setColor(&pn.draft, c)
	return pn.draft
}

var (
	panelBg     = color.RGBA{R: 26, G: 26, B: 26, A: 220}
	panelHeader = color.RGBA{R: 0, G: 0, B: 0, A: 230}
	panelBorder = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	trackBg     = color.RGBA{R: 48, G: 48, B: 48, A: 255}
	trackFill   = color.RGBA{R: 47, G: 161, B: 214, A: 255}
	activeFill  = color.RGBA{R: 90, G: 200, B: 250, A: 255}
)

func (pn *panel) draw(screen *ebiten.Image) {
	x, y := float32(config.PanelX), float32(config.PanelY)
	w := float32(config.PanelWidth)

	vector.DrawFilledRect(screen, x, y, w, float32(pn.height()), panelBg, false)
	vector.DrawFilledRect(screen, x, y, w, config.PanelHeaderH, panelHeader, false)
	vector.StrokeRect(screen, x, y, w, float32(pn.height()), 1, panelBorder, false)

	header := "Open Controls"
	if pn.open {
		header = "Close Controls"
	}
	ebitenutil.DebugPrintAt(screen, header, config.PanelX+(config.PanelWidth-len(header)*6)/2, config.PanelY+4)
	if !pn.open {
		return
	}

	x0, x1 := trackBounds()
	trackW := float32(x1 - x0)
	for i := range pn.controls {
		c := &pn.controls[i]
		rowY := config.PanelY + config.PanelHeaderH + i*config.PanelRowHeight
		ty := float32(rowY + 6)
		th := float32(config.PanelRowHeight - 12)

		ebitenutil.DebugPrintAt(screen, c.label, config.PanelX+6, rowY+7)

		if c.isColor() {
			col := c.getColor(&pn.draft)
			segW := trackW / hueSteps
			for s := 0; s < hueSteps; s++ {
				hue := float64(s) / hueSteps * 360
				vector.DrawFilledRect(screen, float32(x0)+float32(s)*segW, ty, segW+1, th, hsvToRgb(hue, 1, 1), false)
			}
			mark := float32(x0) + float32(hueOf(col)/359)*trackW
			vector.StrokeLine(screen, mark, ty-2, mark, ty+th+2, 2, color.White, false)

			sx := float32(x1 + trackInset)
			vector.DrawFilledRect(screen, sx, ty, valueWidth-6, th, toRGBA(col), false)
			ebitenutil.DebugPrintAt(screen, col.Hex(), x1+trackInset+2, rowY+7)
			continue
		}

		v := c.get(&pn.draft)
		frac := float32((v - c.rng.Min) / (c.rng.Max - c.rng.Min))
		fill := trackFill
		if i == pn.active {
			fill = activeFill
		}
		vector.DrawFilledRect(screen, float32(x0), ty, trackW, th, trackBg, false)
		vector.DrawFilledRect(screen, float32(x0), ty, frac*trackW, th, fill, false)
		ebitenutil.DebugPrintAt(screen, formatValue(v, c.rng.Step), x1+trackInset+2, rowY+7)
	}
}

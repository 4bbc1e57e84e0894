package blobs

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/blob-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	EnemyChar    = '●'
	SplitterChar = '◆'
	WallChar     = '▓'
	EdgeChar     = '│'
)

const hudHeight = 2

// viewport maps world coordinates onto screen cells.
// Terminal cells are about twice as tall as they are wide.
type viewport struct {
	cellW, cellH float64
	cols, rows   int
	offX, offY   int
}

func newViewport(screenW, screenH int, worldW, worldH float64) (viewport, bool) {
	fieldW, fieldH := screenW-2, screenH-hudHeight
	if fieldW < 4 || fieldH < 4 || worldW <= 0 || worldH <= 0 {
		return viewport{}, false
	}
	cellW := math.Max(worldW/float64(fieldW), worldH/(2*float64(fieldH)))
	v := viewport{
		cellW: cellW,
		cellH: 2 * cellW,
	}
	v.cols = min(int(worldW/v.cellW), fieldW)
	v.rows = min(int(worldH/v.cellH), fieldH)
	v.offX = (screenW - v.cols) / 2
	v.offY = hudHeight
	return v, true
}

// cell returns the field cell containing a world point.
func (v viewport) cell(wx, wy float64) (int, int) {
	return int(math.Floor(wx / v.cellW)), int(math.Floor(wy / v.cellH))
}

func (v viewport) inField(cx, cy int) bool {
	return cx >= 0 && cx < v.cols && cy >= 0 && cy < v.rows
}

func (v viewport) set(dst *core.Screen, cx, cy int, r rune, c core.Color) {
	if v.inField(cx, cy) {
		dst.SetColored(v.offX+cx, v.offY+cy, r, c)
	}
}

// Draw renders a snapshot: HUD on top, the world scaled into the rest.
func Draw(dst *core.Screen, snap Snapshot, worldW, worldH float64) {
	drawHUD(dst, snap)

	v, ok := newViewport(dst.Width(), dst.Height(), worldW, worldH)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}

	for y := 0; y < v.rows; y++ {
		dst.SetColored(v.offX-1, v.offY+y, EdgeChar, core.ColorGray)
		dst.SetColored(v.offX+v.cols, v.offY+y, EdgeChar, core.ColorGray)
	}

	for _, e := range snap.Entities {
		switch e.Kind {
		case KindEnemy:
			drawDisc(dst, v, e, EnemyChar)
		case KindSplitter:
			cx, cy := v.cell(e.X, e.Y)
			v.set(dst, cx, cy, SplitterChar, e.Primary)
		case KindTunnel:
			drawTunnel(dst, v, e)
		}
	}
	if snap.Player.Radius > 0 {
		drawDisc(dst, v, snap.Player, PlayerChar)
	}

	switch snap.State {
	case StateLost:
		drawOverlay(dst, "Game over", snap.LossReason, "Press <Space> to play again")
	case StateWon:
		drawOverlay(dst, "You win!", fmt.Sprintf("Final score: %d", snap.Score), "Press <Space> to play again")
	default:
		if m := snap.Message; m != nil {
			color := core.ColorWhite
			if m.Opacity < 0.5 {
				color = core.ColorGray
			}
			drawNotice(dst, m.Title, m.Body, color)
		}
	}
}

// drawDisc fills every cell whose center lies inside the circle, and always
// the cell holding the center so small blobs stay visible.
func drawDisc(dst *core.Screen, v viewport, e EntityView, r rune) {
	x0, y0 := v.cell(e.X-e.Radius, e.Y-e.Radius)
	x1, y1 := v.cell(e.X+e.Radius, e.Y+e.Radius)
	x0, x1 = max(x0, 0), min(x1, v.cols-1)
	y0, y1 = max(y0, 0), min(y1, v.rows-1)
	rsq := e.Radius * e.Radius
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			dx := (float64(cx)+0.5)*v.cellW - e.X
			dy := (float64(cy)+0.5)*v.cellH - e.Y
			if dx*dx+dy*dy <= rsq {
				v.set(dst, cx, cy, r, e.Primary)
			}
		}
	}
	cx, cy := v.cell(e.X, e.Y)
	v.set(dst, cx, cy, r, e.Primary)
}

// drawTunnel draws the wall band, leaving the gap open.
func drawTunnel(dst *core.Screen, v viewport, e EntityView) {
	_, top := v.cell(0, e.Y-e.Height)
	_, bottom := v.cell(0, math.Nextafter(e.Y, math.Inf(-1)))
	for cy := max(top, 0); cy <= min(bottom, v.rows-1); cy++ {
		for cx := 0; cx < v.cols; cx++ {
			wx := (float64(cx) + 0.5) * v.cellW
			if wx < e.Start || wx > e.End {
				v.set(dst, cx, cy, WallChar, e.Primary)
			}
		}
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	var b strings.Builder
	fmt.Fprintf(&b, " Blobs  L%d/%d %s  Score: %d  Size: %.1f  Target: %s",
		snap.Level, snap.LevelCount, snap.Title, snap.Score, snap.Radius, snap.Target)
	if snap.TimeLeft >= 0 {
		fmt.Fprintf(&b, "  Time: %.0fs", math.Ceil(snap.TimeLeft))
	}
	if snap.Cycle > 0 {
		fmt.Fprintf(&b, "  Cycle: %d", snap.Cycle+1)
	}
	fmt.Fprintf(&b, "  %3.0f%%", snap.Progress*100)
	dst.DrawText(0, 0, b.String())
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// drawNotice shows a HUD message in the upper third of the field.
func drawNotice(dst *core.Screen, title, body string, color core.Color) {
	y := hudHeight + (dst.Height()-hudHeight)/3
	dst.DrawTextCentered(y, title, color)
	if body != "" {
		dst.DrawTextCentered(y+1, body, color)
	}
}

// drawOverlay draws a boxed message in the middle of the screen.
func drawOverlay(dst *core.Screen, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(r.Y+1+i, l, color)
	}
}

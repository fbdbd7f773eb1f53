package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Frame is everything the renderer needs for one picture. It holds copies
// only; the renderer never touches the live world.
type Frame struct {
	World     world.World
	CameraX   float64
	Status    game.Status
	State     game.State
	Outcome   game.Outcome
	BestScore int
	NewRecord bool
	Title     string
}

// Renderer maps world pixels onto terminal cells.
type Renderer struct {
	cellW      float64
	cellH      float64
	viewHeight float64
	tick       int
}

// NewRenderer creates a renderer from the viewport section.
func NewRenderer(v config.Viewport) *Renderer {
	r := &Renderer{cellW: v.CellWidth, cellH: v.CellHeight, viewHeight: v.Height}
	if r.cellW <= 0 {
		r.cellW = 10
	}
	if r.cellH <= 0 {
		r.cellH = 20
	}
	return r
}

// Draw renders f into scr.
func (r *Renderer) Draw(scr *core.Screen, f Frame) {
	r.tick++
	scr.Clear()

	r.drawPlatforms(scr, f)
	r.drawCastle(scr, f)
	r.drawCoins(scr, f)
	r.drawEnemies(scr, f)
	r.drawPlayer(scr, f)
	r.drawHUD(scr, f)

	switch f.State {
	case game.StatePaused:
		r.drawOverlay(scr, []string{"PAUSED", "", "P: resume   B: levels"}, core.ColorBrightCyan)
	case game.StateEnded:
		r.drawOverlay(scr, endLines(f), endColor(f.Outcome))
	}
}

// cellRect converts a world box to screen cells. A box always covers at
// least one cell.
func (r *Renderer) cellRect(scr *core.Screen, b core.Box, camX float64) core.Rect {
	x0 := int(math.Floor((b.X - camX) / r.cellW))
	x1 := int(math.Ceil((b.Right() - camX) / r.cellW))
	y0 := r.row(scr, b.Y)
	y1 := r.row(scr, b.Bottom()-0.001) + 1
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// row maps a world y to a screen row. The bottom of the viewport is
// anchored to the bottom of the screen.
func (r *Renderer) row(scr *core.Screen, y float64) int {
	fieldRows := scr.Height() - hudRows
	viewRows := int(math.Ceil(r.viewHeight / r.cellH))
	offset := hudRows + fieldRows - viewRows
	return offset + int(math.Floor(y/r.cellH))
}

func (r *Renderer) col(x, camX float64) int {
	return int(math.Floor((x - camX) / r.cellW))
}

func (r *Renderer) drawPlatforms(scr *core.Screen, f Frame) {
	for _, p := range f.World.Platforms {
		rect := r.cellRect(scr, p.Box, f.CameraX)
		switch p.Kind {
		case level.TypeGround:
			scr.DrawRect(rect, '█', core.ColorBrown)
			scr.DrawHLine(rect.X, rect.Y, rect.W, '▀', core.ColorGreen)
		case level.TypeSecret:
			scr.DrawRect(rect, '░', core.ColorGray)
		default:
			scr.DrawRect(rect, '▒', core.ColorOrange)
		}
	}
}

func (r *Renderer) drawCastle(scr *core.Screen, f Frame) {
	c := f.World.Castle
	rect := r.cellRect(scr, c.Box, f.CameraX)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			ch := '#'
			if y == rect.Y && (x-rect.X)%2 == 1 {
				ch = ' '
			}
			scr.SetColored(x, y, ch, core.ColorGray)
		}
	}
	door := rect.X + rect.W/2
	scr.SetColored(door, rect.Bottom()-1, '∩', core.ColorWhite)

	flag := core.ColorRed
	if f.World.CastleOpen() {
		flag = core.ColorBrightGreen
	}
	scr.SetColored(door, rect.Y-1, '▶', flag)
	scr.SetColored(door, rect.Y, '|', core.ColorWhite)
}

func (r *Renderer) drawCoins(scr *core.Screen, f Frame) {
	for _, c := range f.World.Coins {
		if c.Collected {
			continue
		}
		ch := 'o'
		if (r.tick/15+int(c.Phase*10))%2 == 1 {
			ch = 'O'
		}
		scr.SetColored(r.col(c.X, f.CameraX), r.row(scr, c.Y), ch, core.ColorBrightYellow)
	}
}

func (r *Renderer) drawEnemies(scr *core.Screen, f Frame) {
	for i := range f.World.Enemies {
		e := &f.World.Enemies[i]
		if !e.Active {
			continue
		}
		rect := r.cellRect(scr, e.Box(), f.CameraX)
		scr.DrawRect(rect, 'M', core.ColorRed)
		eye := rect.X
		if e.Direction > 0 {
			eye = rect.Right() - 1
		}
		scr.SetColored(eye, rect.Y, 'ö', core.ColorBrightRed)
	}
}

func (r *Renderer) drawPlayer(scr *core.Screen, f Frame) {
	p := f.World.Player
	if p.Invulnerable > 0 && (r.tick/4)%2 == 1 {
		return
	}
	rect := r.cellRect(scr, p.Box(), f.CameraX)
	scr.DrawRect(rect, '█', core.ColorBrightCyan)
	head := '☺'
	scr.SetColored(rect.X+rect.W/2, rect.Y, head, core.ColorWhite)
	if !p.Grounded {
		scr.SetColored(rect.X+rect.W/2, rect.Bottom()-1, '^', core.ColorCyan)
	}
}

func (r *Renderer) drawHUD(scr *core.Screen, f Frame) {
	scr.DrawHLine(0, 0, scr.Width(), ' ', core.ColorDefault)
	s := f.Status
	hud := fmt.Sprintf(" SCORE %06d  COINS %d/%d  TIME %03d  LIVES %s  BEST %d",
		s.Score, s.CoinsCollected, s.TotalCoins, s.TimeLeft, hearts(s.Lives), f.BestScore)
	scr.DrawTextColored(0, 0, hud, core.ColorBrightYellow)

	if title := f.Title; title != "" {
		x := scr.Width() - len([]rune(title)) - 1
		if x > len([]rune(hud))+1 {
			scr.DrawTextColored(x, 0, title, core.ColorGray)
		}
	}
}

func hearts(n int) string {
	if n <= 0 {
		return "-"
	}
	if n > 5 {
		return fmt.Sprintf("♥x%d", n)
	}
	return strings.Repeat("♥", n)
}

func (r *Renderer) drawOverlay(scr *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	box := core.NewRect((scr.Width()-width-4)/2, (scr.Height()-len(lines)-2)/2, width+4, len(lines)+2)
	scr.DrawRect(box, ' ', core.ColorDefault)
	scr.DrawBox(box)
	for i, l := range lines {
		x := box.X + 2 + (width-len([]rune(l)))/2
		scr.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

func endLines(f Frame) []string {
	title := "GAME OVER"
	if f.Outcome == game.OutcomeWin {
		title = "LEVEL CLEAR!"
	}
	lines := []string{
		title,
		"",
		fmt.Sprintf("Score %d", f.Status.Score),
		fmt.Sprintf("Best  %d", f.BestScore),
	}
	if f.NewRecord {
		lines = append(lines, "NEW RECORD!")
	}
	return append(lines, "", "Enter: retry   B: levels")
}

func endColor(o game.Outcome) core.Color {
	if o == game.OutcomeWin {
		return core.ColorBrightGreen
	}
	return core.ColorBrightRed
}

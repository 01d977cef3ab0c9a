package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '●'
	BeakChar      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '═'
)

// Render draws the current snapshot into dst. The world is scaled to fill
// every row but the last, which holds the ground.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.cfg.World.Width, g.cfg.World.Height, g.cfg.Obstacles.Width, g.cfg.Player.Size)
}

// RenderSnapshot draws a snapshot without needing the Game that produced it.
func RenderSnapshot(dst *core.Screen, snap Snapshot, worldW, worldH, pipeW, playerSize float64) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 4 || h < 4 {
		return
	}

	fieldH := h - 1
	sc := core.NewScale(worldW, worldH, w, fieldH)
	dst.DrawHLine(0, fieldH, w, GroundChar, core.ColorGreen)

	if snap.Mode != ModeMenu {
		for _, o := range snap.Obstacles {
			drawPipe(dst, sc, o, pipeW, fieldH)
		}
		drawPlayer(dst, sc, snap.Player, playerSize)
		dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score), core.ColorBrightWhite)
	}

	switch snap.Mode {
	case ModeMenu:
		drawCenteredMessage(dst, core.ColorBrightGreen,
			"Ready to Fly?",
			"SPACE or click to flap",
			"P pause · R restart")
	case ModePaused:
		drawCenteredMessage(dst, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	case ModeGameOver:
		lines := []string{"Game Over!", fmt.Sprintf("Final Score: %d", snap.Score)}
		if snap.Score > 0 && snap.Score == snap.Best {
			lines = append(lines, "New High Score!")
		}
		lines = append(lines, "SPACE or R to play again")
		drawCenteredMessage(dst, core.ColorOrange, lines...)
	}
}

// drawPipe renders one obstacle: upper pipe, lower pipe and their caps.
func drawPipe(dst *core.Screen, sc core.Scale, o Obstacle, pipeW float64, fieldH int) {
	x0 := sc.X(o.X)
	x1 := core.Max(sc.X(o.X+pipeW), x0+1)
	top := sc.Y(o.GapTop)
	bottom := core.Max(sc.Y(o.GapBottom), top+1)

	for x := x0; x < x1; x++ {
		for y := 0; y < top-1; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if top > 0 {
			dst.SetColored(x, top-1, PipeCapTop, core.ColorBrightGreen)
		}
		if bottom < fieldH {
			dst.SetColored(x, bottom, PipeCapBottom, core.ColorBrightGreen)
		}
		for y := bottom + 1; y < fieldH; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
	}
}

func drawPlayer(dst *core.Screen, sc core.Scale, p Player, size float64) {
	cx := sc.X(p.X + size/2)
	cy := sc.Y(p.Y + size/2)
	dst.SetColored(cx, cy, PlayerChar, core.ColorBrightYellow)
	dst.SetColored(cx+1, cy, BeakChar, core.ColorOrange)
}

// drawCenteredMessage draws a boxed, centered block of lines.
func drawCenteredMessage(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := core.Min(width+4, dst.Width())
	boxH := core.Min(len(lines)+2, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}

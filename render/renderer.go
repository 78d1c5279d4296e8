package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/core"
	"github.com/lixenwraith/mongoose/engine"
)

// TerminalRenderer draws the arena, creatures, and scoreboard to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen

	// top-left corner of the arena interior, in screen coordinates
	originX int
	originY int
}

// NewTerminalRenderer creates a renderer for the given screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		originX: 1,
		originY: 1,
	}
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(w *engine.World) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.drawBorder(w, defaultStyle)
	r.drawArena(w, defaultStyle)
	r.drawScoreboard(w, defaultStyle)

	r.screen.Show()
}

// toScreen maps an arena cell to screen coordinates. Arena Y grows
// upward while the terminal's grows downward, so rows are flipped.
func (r *TerminalRenderer) toScreen(w *engine.World, c core.Cell) (int, int) {
	return r.originX + c.X, r.originY + (w.Config.Height - 1 - c.Y)
}

func (r *TerminalRenderer) drawBorder(w *engine.World, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	right := r.originX + w.Config.Width
	bottom := r.originY + w.Config.Height

	for x := r.originX - 1; x <= right; x++ {
		r.screen.SetContent(x, r.originY-1, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := r.originY - 1; y <= bottom; y++ {
		r.screen.SetContent(r.originX-1, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(r.originX-1, r.originY-1, '┌', nil, style)
	r.screen.SetContent(right, r.originY-1, '┐', nil, style)
	r.screen.SetContent(r.originX-1, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *TerminalRenderer) drawArena(w *engine.World, defaultStyle tcell.Style) {
	for y := 0; y < w.Config.Height; y++ {
		for x := 0; x < w.Config.Width; x++ {
			c := core.Cell{X: x, Y: y}
			occ, ok := w.Arena.OccupantAt(c)
			if !ok {
				continue
			}
			head := false
			if seg, found := w.Components.Segmented.GetComponent(occ.Entity); found {
				head = seg.Head == c
			}
			glyph, style := creatureGlyph(occ.Kind, head, defaultStyle)
			sx, sy := r.toScreen(w, c)
			r.screen.SetContent(sx, sy, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawScoreboard(w *engine.World, defaultStyle tcell.Style) {
	s := w.Scoreboard
	line := fmt.Sprintf("berries %d/%d  mice %d/%d  escaped %d  snakes %d",
		s.BerriesEatenByMongoose, s.BerriesEatenBySnakes,
		s.MiceEatenByMongoose, s.MiceEatenBySnakes,
		s.MiceEscaped, s.SnakesKilled)

	style := defaultStyle.Foreground(RgbScoreText)
	y := r.originY + w.Config.Height + 1
	for i, ch := range line {
		r.screen.SetContent(r.originX-1+i, y, ch, nil, style)
	}
}

// creatureGlyph picks the rune and style for an occupant. Heads of
// segmented creatures render distinct from their trailing body.
func creatureGlyph(kind component.Kind, head bool, defaultStyle tcell.Style) (rune, tcell.Style) {
	switch kind {
	case component.KindBerry:
		return '●', defaultStyle.Foreground(RgbBerry)
	case component.KindMouse:
		if head {
			return 'm', defaultStyle.Foreground(RgbMouse).Bold(true)
		}
		return 'm', defaultStyle.Foreground(RgbMouse)
	case component.KindSnake:
		if head {
			return 'S', defaultStyle.Foreground(RgbSnake).Bold(true)
		}
		return 's', defaultStyle.Foreground(RgbSnake)
	case component.KindCobra:
		if head {
			return 'C', defaultStyle.Foreground(RgbCobra).Bold(true)
		}
		return 'c', defaultStyle.Foreground(RgbCobra)
	case component.KindMongoose:
		if head {
			return 'M', defaultStyle.Foreground(RgbMongoose).Bold(true)
		}
		return 'o', defaultStyle.Foreground(RgbMongoose)
	}
	return '?', defaultStyle
}

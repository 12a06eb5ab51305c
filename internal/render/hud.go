package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"maze-crawler/internal/locale"
)

// messageRows is how many of the most recent messages the HUD shows.
const messageRows = 3

// StatusLine formats the HUD status line for v.
func (r *Renderer) StatusLine(v View) string {
	h := v.Hero
	return r.text.Get(locale.MsgStatus, v.Floor, h.Health.Current, h.Health.Max,
		r.text.Name(h.Weapon.Name), h.Weapon.Bonus)
}

// drawHUD renders the status bar, legend and message log at the bottom of the screen.
func (r *Renderer) drawHUD(v View) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, colorSeparator)
	r.drawText(0, hudY+1, r.StatusLine(v), tcell.StyleDefault.Foreground(colorStatus).Bold(true))
	r.drawText(0, hudY+2, r.text.Get(locale.MsgLegend), tcell.StyleDefault.Foreground(colorLegend))

	msgs := v.Messages
	if len(msgs) > messageRows {
		msgs = msgs[len(msgs)-messageRows:]
	}
	for i, msg := range msgs {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(colorMessage))
	}
	if v.Prompt != "" {
		r.drawText(0, screenH-1, v.Prompt, tcell.StyleDefault.Foreground(colorPrompt).Bold(true))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text left to right, advancing two columns for wide runes.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}

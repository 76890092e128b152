package game

import (
	"image/color"

	"color-game/internal/ui"
)

// drawRound renders one frame of the guessing screen: swatch, buttons and status line.
func drawRound(s ui.Surface, swatch color.RGBA, buttons []*ui.Button, st State) {
	w, _ := s.Size()
	s.BeginFrame()
	s.Clear(ui.White)

	sq := ui.SwatchRect(w)
	s.FillRect(sq, swatch)
	s.StrokeRect(sq, 2, ui.Black)

	for _, b := range buttons {
		b.Draw(s)
	}
	s.DrawText(st.Status(), ui.StatusX, ui.StatusY, ui.FontSize, ui.Black)
	s.EndFrame()
}

// drawMessage renders a full-screen message centered in the window.
func drawMessage(s ui.Surface, msg string) {
	w, h := s.Size()
	s.BeginFrame()
	s.Clear(ui.White)
	ui.DrawTextCentered(s, msg, w/2, h/2, ui.BigFontSize, ui.Black)
	s.EndFrame()
}

package graphics

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws optional runtime counters (FPS, heap) in the top-right corner. Off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	font         rl.Font // optional; zero texture ID = raylib default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// NewOverlay returns an overlay with all counters hidden.
func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) SetShowFPS(show bool)      { o.ShowFPS = show }
func (o *Overlay) SetShowMemAlloc(show bool) { o.ShowMemAlloc = show }
func (o *Overlay) SetFont(font rl.Font)      { o.font = font }

// Draw renders the enabled counters. Call last in the frame, before EndDrawing.
func (o *Overlay) Draw() {
	if !o.ShowFPS && !o.ShowMemAlloc {
		return
	}
	o.frameCount++
	update := o.frameCount%updateInterval == 0
	if (o.ShowFPS && o.lastFpsText == "") || (o.ShowMemAlloc && o.lastMemText == "") {
		update = true
	}

	y := int32(fpsPadding)
	if o.ShowFPS {
		if update {
			o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		o.drawRight(o.lastFpsText, y)
		y += fpsLineHeight
	}
	if o.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&o.lastMemStats)
			o.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(o.lastMemStats.Alloc)/(1024*1024))
		}
		o.drawRight(o.lastMemText, y)
	}
}

func (o *Overlay) drawRight(text string, y int32) {
	screenW := int32(rl.GetScreenWidth())
	if o.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(o.font, text, sz, 1).X-float32(fpsPadding), float32(y))
		rl.DrawTextEx(o.font, text, pos, sz, 1, rl.DarkGreen)
		return
	}
	x := screenW - rl.MeasureText(text, fpsFontSize) - fpsPadding
	rl.DrawText(text, x, y, fpsFontSize, rl.DarkGreen)
}

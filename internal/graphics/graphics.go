package graphics

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"color-game/internal/fonts"
	"color-game/internal/ui"
)

const (
	textSpacing = 1
	// fontLoadSize is the glyph atlas size; larger text is scaled from it.
	fontLoadSize = 64
)

// Options describes the window to open.
type Options struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
	ShowFPS   bool
	// Font is a font file path or family name looked up under assets/fonts. Empty uses raylib's default font.
	Font   string
	Logger *log.Logger
}

// Window is a fixed-size raylib window. It implements ui.Surface and ui.EventSource.
// raylib-go locks the main OS thread in its init, so all methods must be called from main.
type Window struct {
	width, height int
	font          rl.Font
	overlay       *Overlay
	log           *log.Logger
}

// Open creates the window. ESC is not an exit key; the window close button is the only quit.
func Open(opts Options) *Window {
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(opts.TargetFPS))

	w := &Window{
		width:   opts.Width,
		height:  opts.Height,
		overlay: NewOverlay(),
		log:     opts.Logger,
	}
	w.overlay.SetShowFPS(opts.ShowFPS)
	w.overlay.SetShowMemAlloc(opts.ShowFPS)
	if opts.Font != "" {
		w.loadFont(opts.Font)
	}
	return w
}

// loadFont must run after InitWindow so the glyph texture has a GL context.
func (w *Window) loadFont(nameOrPath string) {
	path, err := fonts.Resolve(nameOrPath)
	if err != nil {
		w.warn("font not found, using default font", "font", nameOrPath, "error", err)
		return
	}
	f := rl.LoadFontEx(path, fontLoadSize, nil)
	if f.Texture.ID == 0 {
		w.warn("font failed to load, using default font", "path", path)
		return
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	w.font = f
	w.overlay.SetFont(f)
	if w.log != nil {
		w.log.Debug("font loaded", "path", path)
	}
}

func (w *Window) warn(msg string, kv ...interface{}) {
	if w.log != nil {
		w.log.Warn(msg, kv...)
	}
}

// Close releases the font and closes the window.
func (w *Window) Close() {
	if w.font.Texture.ID != 0 {
		rl.UnloadFont(w.font)
	}
	rl.CloseWindow()
}

func (w *Window) Size() (int, int) { return w.width, w.height }

func (w *Window) BeginFrame() { rl.BeginDrawing() }

// EndFrame draws the debug overlay on top and presents. raylib waits here to hold the target FPS.
func (w *Window) EndFrame() {
	w.overlay.Draw()
	rl.EndDrawing()
}

func (w *Window) Clear(c color.RGBA) { rl.ClearBackground(c) }

func (w *Window) FillRect(r image.Rectangle, c color.RGBA) {
	rl.DrawRectangle(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()), c)
}

func (w *Window) StrokeRect(r image.Rectangle, thickness int, c color.RGBA) {
	rect := rl.NewRectangle(float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()))
	rl.DrawRectangleLinesEx(rect, float32(thickness), c)
}

func (w *Window) MeasureText(text string, size int) int {
	if w.font.Texture.ID != 0 {
		return int(rl.MeasureTextEx(w.font, text, float32(size), textSpacing).X)
	}
	return int(rl.MeasureText(text, int32(size)))
}

func (w *Window) DrawText(text string, x, y, size int, c color.RGBA) {
	if w.font.Texture.ID != 0 {
		rl.DrawTextEx(w.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), textSpacing, c)
		return
	}
	rl.DrawText(text, int32(x), int32(y), int32(size), c)
}

// PollEvents reports the window close request and left-button presses since the last frame.
// raylib gathers input in EndDrawing, so call this after EndFrame.
func (w *Window) PollEvents() []ui.Event {
	var events []ui.Event
	if rl.WindowShouldClose() {
		events = append(events, ui.Quit())
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		events = append(events, ui.Click(image.Pt(int(pos.X), int(pos.Y))))
	}
	return events
}

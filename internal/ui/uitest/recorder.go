// Package uitest provides a headless ui.Surface that records draw calls, for tests.
package uitest

import (
	"image"
	"image/color"
	"strings"
)

// CharWidth is the fixed per-rune advance MeasureText uses.
const CharWidth = 10

// Op is one recorded draw call.
type Op struct {
	Kind  string // "clear", "fill", "stroke", "text"
	Rect  image.Rectangle
	Text  string
	Pos   image.Point
	Size  int
	Color color.RGBA
}

// Frame is the list of draw calls between BeginFrame and EndFrame.
type Frame struct {
	Ops []Op
}

// Texts returns every string drawn in the frame, in order.
func (f Frame) Texts() []string {
	var out []string
	for _, op := range f.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether s was drawn in the frame.
func (f Frame) HasText(s string) bool {
	for _, t := range f.Texts() {
		if t == s {
			return true
		}
	}
	return false
}

// Recorder is an in-memory ui.Surface.
type Recorder struct {
	Width, Height int
	Frames        []Frame
	current       *Frame
}

// NewRecorder returns a recorder with the given logical size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) BeginFrame() { r.current = &Frame{} }

func (r *Recorder) EndFrame() {
	if r.current == nil {
		return
	}
	r.Frames = append(r.Frames, *r.current)
	r.current = nil
}

func (r *Recorder) record(op Op) {
	if r.current == nil {
		r.current = &Frame{}
	}
	r.current.Ops = append(r.current.Ops, op)
}

func (r *Recorder) Clear(c color.RGBA) {
	r.record(Op{Kind: "clear", Color: c})
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.RGBA) {
	r.record(Op{Kind: "fill", Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect image.Rectangle, thickness int, c color.RGBA) {
	r.record(Op{Kind: "stroke", Rect: rect, Size: thickness, Color: c})
}

func (r *Recorder) MeasureText(text string, size int) int {
	return len([]rune(text)) * CharWidth
}

func (r *Recorder) DrawText(text string, x, y, size int, c color.RGBA) {
	r.record(Op{Kind: "text", Text: text, Pos: image.Pt(x, y), Size: size, Color: c})
}

// LastFrame returns the most recently presented frame.
func (r *Recorder) LastFrame() Frame {
	if len(r.Frames) == 0 {
		return Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}

// AnyFrameHasText reports whether any presented frame drew s.
func (r *Recorder) AnyFrameHasText(s string) bool {
	for _, f := range r.Frames {
		if f.HasText(s) {
			return true
		}
	}
	return false
}

// AnyFrameHasPrefix reports whether any presented frame drew a string starting with prefix.
func (r *Recorder) AnyFrameHasPrefix(prefix string) bool {
	for _, f := range r.Frames {
		for _, t := range f.Texts() {
			if strings.HasPrefix(t, prefix) {
				return true
			}
		}
	}
	return false
}

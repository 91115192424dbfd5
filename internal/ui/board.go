package ui

import (
	"image/color"
	"sync"

	"Sketchpad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const strokeWidth = 1

// SketchWidget is the drawing surface. Pointer events are fed into the
// sketch and every stroke is rendered as connected line segments.
type SketchWidget struct {
	widget.BaseWidget
	sketch *state.Sketch

	mu   sync.Mutex
	held bool

	// OnChanged is called after the sketch has been modified.
	OnChanged func()
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)

func NewSketchWidget(s *state.Sketch) *SketchWidget {
	w := &SketchWidget{sketch: s}
	w.ExtendBaseWidget(w)
	return w
}

// Sketch returns the state behind the widget.
func (w *SketchWidget) Sketch() *state.Sketch {
	return w.sketch
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func (w *SketchWidget) changed() {
	w.Refresh()
	if w.OnChanged != nil {
		w.OnChanged()
	}
}

func (w *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.mu.Lock()
	w.held = true
	w.mu.Unlock()

	w.sketch.Press(toPoint(e.Position))
	w.changed()
}

func (w *SketchWidget) Dragged(e *fyne.DragEvent) {
	w.mu.Lock()
	held := w.held
	w.mu.Unlock()
	if !held {
		return
	}
	w.sketch.Drag(toPoint(e.Position))
	w.changed()
}

// MouseUp seals the active stroke on the release of any button.
func (w *SketchWidget) MouseUp(*desktop.MouseEvent) {
	w.mu.Lock()
	w.held = false
	w.mu.Unlock()

	w.sketch.Release()
	w.changed()
}

func (w *SketchWidget) MouseIn(*desktop.MouseEvent) {}
func (w *SketchWidget) MouseOut() {}
func (w *SketchWidget) MouseMoved(*desktop.MouseEvent) {}

// DragEnd seals the stroke when the button was released off the canvas,
// where no MouseUp reaches the widget.
func (w *SketchWidget) DragEnd() {
	w.mu.Lock()
	held := w.held
	w.held = false
	w.mu.Unlock()
	if !held {
		return
	}

	w.sketch.Release()
	w.changed()
}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchRenderer{
		sketch:     w,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
		caption:    canvas.NewText("draw here!", theme.Color(theme.ColorNameForeground)),
	}
	r.rebuild()
	return r
}

type sketchRenderer struct {
	sketch     *SketchWidget
	background *canvas.Rectangle
	caption    *canvas.Text
	objects    []fyne.CanvasObject

	// lines of completed strokes, which never change once sealed
	sealed      []fyne.CanvasObject
	sealedCount int
}

func strokeLines(s state.Stroke) []fyne.CanvasObject {
	segs := state.Segments(s)
	lines := make([]fyne.CanvasObject, 0, len(segs))
	for _, seg := range segs {
		line := canvas.NewLine(color.Color(s.Color))
		line.StrokeWidth = strokeWidth
		line.Position1 = fyne.NewPos(seg[0].X, seg[0].Y)
		line.Position2 = fyne.NewPos(seg[1].X, seg[1].Y)
		lines = append(lines, line)
	}
	return lines
}

func (r *sketchRenderer) rebuild() {
	for _, s := range r.sketch.sketch.CompletedSince(r.sealedCount) {
		r.sealed = append(r.sealed, strokeLines(s)...)
		r.sealedCount++
	}
	active := strokeLines(r.sketch.sketch.Active())

	objects := make([]fyne.CanvasObject, 0, 2+len(r.sealed)+len(active))
	objects = append(objects, r.background, r.caption)
	objects = append(objects, r.sealed...)
	r.objects = append(objects, active...)
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sketchRenderer) Refresh() {
	r.background.FillColor = theme.Color(theme.ColorNameBackground)
	r.caption.Color = theme.Color(theme.ColorNameForeground)
	r.rebuild()
	canvas.Refresh(r.sketch)
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	pad := theme.Padding()
	r.caption.Move(fyne.NewPos(pad, pad))
	r.caption.Resize(r.caption.MinSize())
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sketchRenderer) Destroy() {}

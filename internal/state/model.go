package state

import (
	"image/color"
	"unsafe"
)

// Point is a single pointer sample in canvas coordinates.
type Point struct{ X, Y float32 }

// Stroke is one continuous drag: its samples in drawing order and a color.
type Stroke struct {
	ID     string
	Points []Point
	Color  color.NRGBA
}

var (
	Red   = color.NRGBA{R: 255, A: 255}
	Blue  = color.NRGBA{B: 255, A: 255}
	Green = color.NRGBA{G: 255, A: 255}
	Gold  = color.NRGBA{R: 255, G: 215, A: 255}
)

// Palette holds the colors a new stroke is picked from.
var Palette = [4]color.NRGBA{Red, Blue, Green, Gold}

// pointSize is the in-memory footprint of one Point.
const pointSize = int(unsafe.Sizeof(Point{}))

// PaletteColor picks the palette entry for the given millisecond count.
func PaletteColor(ms int64) color.NRGBA {
	if ms < 0 {
		ms = -ms
	}
	return Palette[ms%int64(len(Palette))]
}

// Segments returns the pairs of consecutive points that make up the
// stroke's polyline. Strokes with fewer than two points have none.
func Segments(s Stroke) [][2]Point {
	if len(s.Points) < 2 {
		return nil
	}
	segs := make([][2]Point, 0, len(s.Points)-1)
	for i := 1; i < len(s.Points); i++ {
		segs = append(segs, [2]Point{s.Points[i-1], s.Points[i]})
	}
	return segs
}

// Size is the number of bytes taken by the stroke's point data.
func (s Stroke) Size() int {
	return len(s.Points) * pointSize
}

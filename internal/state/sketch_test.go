package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSketch_PointsAccumulateWhileHeld(t *testing.T) {
	s := NewSketch(&ManualClock{})

	s.Press(Point{X: 1, Y: 1})
	s.Drag(Point{X: 2, Y: 3})
	s.Drag(Point{X: 4, Y: 5})

	active := s.Active()
	assert.Equal(t, []Point{{1, 1}, {2, 3}, {4, 5}}, active.Points)
	assert.Empty(t, s.Completed())
	assert.Equal(t, Red, active.Color, "first stroke starts red")
}

func TestSketch_ReleaseSealsAndStartsNewStroke(t *testing.T) {
	clock := &ManualClock{}
	s := NewSketch(clock)

	s.Press(Point{X: 0, Y: 0})
	s.Drag(Point{X: 10, Y: 10})
	first := s.Active()

	clock.Set(1002 * time.Millisecond)
	s.Release()

	completed := s.Completed()
	require.Len(t, completed, 1)
	assert.Equal(t, first.ID, completed[0].ID)
	assert.Equal(t, first.Points, completed[0].Points)

	next := s.Active()
	assert.Empty(t, next.Points)
	assert.NotEqual(t, first.ID, next.ID)
	assert.Equal(t, Green, next.Color)
}

func TestSketch_PaletteCyclesWithElapsedTime(t *testing.T) {
	clock := &ManualClock{}
	s := NewSketch(clock)

	want := []struct {
		ms    time.Duration
		color any
	}{
		{0, Red},
		{1, Blue},
		{2, Green},
		{3, Gold},
		{4, Red},
		{1337, Blue},
	}
	for _, tc := range want {
		clock.Set(tc.ms * time.Millisecond)
		s.Press(Point{})
		s.Release()
		assert.Equal(t, tc.color, s.Active().Color, "elapsed %dms", tc.ms)
	}
}

func TestSketch_CompletedStrokesAreNotAffectedByLaterInput(t *testing.T) {
	s := NewSketch(&ManualClock{})
	s.Press(Point{X: 1, Y: 1})
	s.Release()

	s.Press(Point{X: 9, Y: 9})
	s.Drag(Point{X: 8, Y: 8})

	completed := s.Completed()
	require.Len(t, completed, 1)
	assert.Equal(t, []Point{{1, 1}}, completed[0].Points)
}

func TestSketch_CopiesDoNotAlias(t *testing.T) {
	s := NewSketch(&ManualClock{})
	s.Press(Point{X: 1, Y: 1})

	a := s.Active()
	a.Points[0] = Point{X: 100, Y: 100}
	assert.Equal(t, Point{X: 1, Y: 1}, s.Active().Points[0])

	s.Release()
	c := s.Completed()
	c[0].Color = Gold
	assert.Equal(t, Red, s.Completed()[0].Color)
}

func TestSketch_HeldAndReleasedInOneFrame(t *testing.T) {
	s := NewSketch(&ManualClock{})
	s.Update(Input{Pos: Point{X: 3, Y: 4}, HasPos: true, Held: true, Released: true})

	completed := s.Completed()
	require.Len(t, completed, 1)
	assert.Equal(t, []Point{{3, 4}}, completed[0].Points)
	assert.Empty(t, s.Active().Points)
}

func TestSketch_ReleaseWithoutPointsSealsEmptyStroke(t *testing.T) {
	s := NewSketch(&ManualClock{})
	s.Release()

	completed := s.Completed()
	require.Len(t, completed, 1)
	assert.Empty(t, completed[0].Points)
}

func TestSketch_HeldWithoutPositionPanics(t *testing.T) {
	s := NewSketch(&ManualClock{})
	assert.PanicsWithValue(t, ErrNoPointerPosition, func() {
		s.Update(Input{Held: true})
	})
}

func TestSketch_SizeOfStrokes(t *testing.T) {
	s := NewSketch(&ManualClock{})
	assert.Zero(t, s.SizeOfStrokes())

	s.Press(Point{})
	s.Drag(Point{})
	s.Release()
	s.Press(Point{})

	assert.Equal(t, 3*8, s.SizeOfStrokes())
}

func TestSegments(t *testing.T) {
	assert.Nil(t, Segments(Stroke{}))
	assert.Nil(t, Segments(Stroke{Points: []Point{{1, 1}}}))

	segs := Segments(Stroke{Points: []Point{{0, 0}, {1, 1}, {2, 0}}})
	assert.Equal(t, [][2]Point{
		{{0, 0}, {1, 1}},
		{{1, 1}, {2, 0}},
	}, segs)
}

func TestManualClock(t *testing.T) {
	c := &ManualClock{}
	c.Advance(time.Second)
	c.Advance(500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, c.Elapsed())

	c.Set(time.Millisecond)
	assert.Equal(t, time.Millisecond, c.Elapsed())
}

func TestNewClockMovesForward(t *testing.T) {
	c := NewClock()
	assert.GreaterOrEqual(t, c.Elapsed(), time.Duration(0))
}

func TestSketch_CompletedSince(t *testing.T) {
	s := NewSketch(&ManualClock{})
	assert.Nil(t, s.CompletedSince(0))

	for i := 0; i < 3; i++ {
		s.Press(Point{X: float32(i)})
		s.Release()
	}

	all := s.Completed()
	assert.Equal(t, all, s.CompletedSince(0))
	assert.Equal(t, all[1:], s.CompletedSince(1))
	assert.Nil(t, s.CompletedSince(3))
	assert.Equal(t, all, s.CompletedSince(-1))
}

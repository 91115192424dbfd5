package state

import (
	"errors"
	"image/color"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNoPointerPosition is the panic value when the pointer is held but the
// host supplied no position for it.
var ErrNoPointerPosition = errors.New("pointer held without a position")

// Input is the pointer state for a single frame.
type Input struct {
	Pos      Point
	HasPos   bool
	Held     bool // primary button is down
	Released bool // a button went up during this frame
	Elapsed  time.Duration
}

// Sketch holds the completed strokes plus the one stroke being drawn.
type Sketch struct {
	mu        sync.RWMutex
	clock     Clock
	logger    *slog.Logger
	completed []Stroke
	active    Stroke
}

func NewSketch(clock Clock) *Sketch {
	if clock == nil {
		clock = NewClock()
	}
	return &Sketch{
		clock:  clock,
		logger: slog.Default(),
		active: newStroke(Red),
	}
}

// SetLogger replaces the logger used for stroke events.
func (s *Sketch) SetLogger(l *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = l
}

func newStroke(c color.NRGBA) Stroke {
	return Stroke{ID: uuid.NewString(), Color: c}
}

// Update applies one frame of pointer input. A held button appends the
// pointer position to the active stroke; a release then seals the active
// stroke and starts a new one colored from the palette by elapsed time.
func (s *Sketch) Update(in Input) {
	if in.Held && !in.HasPos {
		panic(ErrNoPointerPosition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Held {
		s.active.Points = append(s.active.Points, in.Pos)
	}
	if in.Released {
		sealed := s.active
		s.completed = append(s.completed, sealed)
		s.active = newStroke(PaletteColor(in.Elapsed.Milliseconds()))
		s.logger.Debug("stroke committed",
			slog.String("stroke_id", sealed.ID),
			slog.Int("points", len(sealed.Points)),
			slog.Int("strokes", len(s.completed)))
	}
}

// Press records the position where the primary button went down.
func (s *Sketch) Press(p Point) {
	s.Update(Input{Pos: p, HasPos: true, Held: true, Elapsed: s.clock.Elapsed()})
}

// Drag records a pointer position while the primary button stays down.
func (s *Sketch) Drag(p Point) {
	s.Update(Input{Pos: p, HasPos: true, Held: true, Elapsed: s.clock.Elapsed()})
}

// Release seals the active stroke.
func (s *Sketch) Release() {
	s.Update(Input{Released: true, Elapsed: s.clock.Elapsed()})
}

// Completed returns the sealed strokes in drawing order.
func (s *Sketch) Completed() []Stroke {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Stroke, len(s.completed))
	copy(out, s.completed)
	return out
}

// CompletedSince returns the sealed strokes from index n onwards.
func (s *Sketch) CompletedSince(n int) []Stroke {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	if n >= len(s.completed) {
		return nil
	}
	out := make([]Stroke, len(s.completed)-n)
	copy(out, s.completed[n:])
	return out
}

// Active returns a copy of the stroke being drawn.
func (s *Sketch) Active() Stroke {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a := s.active
	a.Points = append([]Point(nil), s.active.Points...)
	return a
}

// SizeOfStrokes estimates the bytes held by all point data.
func (s *Sketch) SizeOfStrokes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := s.active.Size()
	for _, st := range s.completed {
		total += st.Size()
	}
	return total
}

package ui

import (
	"context"
	"fmt"
	"log/slog"

	"Sketchpad/internal/state"
	"Sketchpad/internal/usage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// RSSReader reports the resident memory of the process.
type RSSReader interface {
	RSS(ctx context.Context) (uint64, error)
}

// Header is the status bar above the canvas.
type Header struct {
	sketch  *state.Sketch
	rss     RSSReader
	logger  *slog.Logger
	memory  *widget.Label
	process *widget.Label
	content fyne.CanvasObject
	failing bool
}

// NewHeader builds the status bar. rss may be nil, in which case the
// process memory label is left out.
func NewHeader(s *state.Sketch, rss RSSReader, logger *slog.Logger) *Header {
	h := &Header{
		sketch:  s,
		rss:     rss,
		logger:  logger,
		memory:  widget.NewLabel(""),
		process: widget.NewLabel(""),
	}

	objects := []fyne.CanvasObject{
		widget.NewLabel("controls here!"),
		widget.NewSeparator(),
		h.memory,
	}
	if rss != nil {
		objects = append(objects, widget.NewSeparator(), h.process)
	}
	objects = append(objects, layout.NewSpacer())
	h.content = container.NewHBox(objects...)

	h.Update(context.Background())
	return h
}

// Content returns the canvas object to place in the window.
func (h *Header) Content() fyne.CanvasObject {
	return h.content
}

// MemoryText is the text currently shown for the stroke data estimate.
func (h *Header) MemoryText() string {
	return h.memory.Text
}

// ProcessText is the text currently shown for the process RSS.
func (h *Header) ProcessText() string {
	return h.process.Text
}

// Update recomputes both memory labels.
func (h *Header) Update(ctx context.Context) {
	h.memory.SetText(fmt.Sprintf("memory usage: %s", usage.FormatMB(h.sketch.SizeOfStrokes())))

	if h.rss == nil {
		return
	}
	rss, err := h.rss.RSS(ctx)
	if err != nil {
		if !h.failing {
			h.logger.Warn("process memory unavailable", slog.String("error", err.Error()))
		}
		h.failing = true
		h.process.SetText("process: n/a")
		return
	}
	h.failing = false
	h.process.SetText(fmt.Sprintf("process: %s", usage.FormatMB(rss)))
}

package ui

import (
	"context"
	"log/slog"

	"Sketchpad/internal/config"
	"Sketchpad/internal/state"
	"Sketchpad/internal/usage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// Build assembles the window content: the header on top and the drawing
// surface filling the rest.
func Build(ctx context.Context, sketch *state.Sketch, rss RSSReader, logger *slog.Logger) (fyne.CanvasObject, *SketchWidget, *Header) {
	board := NewSketchWidget(sketch)
	header := NewHeader(sketch, rss, logger)
	board.OnChanged = func() {
		header.Update(ctx)
	}
	return container.NewBorder(header.Content(), nil, nil, nil, board), board, header
}

// RunApp opens the main window and blocks until it is closed.
func RunApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	myApp := app.New()
	myApp.Settings().SetTheme(newTheme(cfg.Window.Theme))

	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	myWindow.CenterOnScreen()

	sketch := state.NewSketch(state.NewClock())
	sketch.SetLogger(logger)

	var rss RSSReader
	sampler, err := usage.NewSampler(cfg.Usage.Interval)
	if err != nil {
		logger.Warn("process memory sampling disabled", slog.String("error", err.Error()))
	} else {
		rss = sampler
	}

	content, _, _ := Build(ctx, sketch, rss, logger)
	myWindow.SetContent(content)

	logger.Info("window opened",
		slog.String("title", cfg.Window.Title),
		slog.String("theme", cfg.Window.Theme))
	myWindow.ShowAndRun()

	logger.Info("window closed", slog.Int("strokes", len(sketch.Completed())))
	return nil
}

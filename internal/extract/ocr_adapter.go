package extract

import (
	"context"
	"log/slog"

	"github.com/mikocoral05/viscera/internal/ocr"
)

// OCRAdapter adapts the tesseract engine to the TextRecognizer boundary.
type OCRAdapter struct {
	e      *ocr.Engine
	logger *slog.Logger
}

func NewOCRAdapter(e *ocr.Engine, logger *slog.Logger) *OCRAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRAdapter{e: e, logger: logger}
}

func (a *OCRAdapter) Recognize(ctx context.Context, image ImageRef, opts RecognizeOptions) (RecognizedDocument, error) {
	doc, err := a.e.Recognize(ctx, image.Path, image.Data, opts.Language, opts.PSM)
	if err != nil {
		return RecognizedDocument{}, err
	}
	a.logger.Debug("text recognized",
		"language", doc.Language,
		"words", len(doc.Words),
		"lines", len(doc.Lines),
		"warnings", len(doc.Warnings),
		"duration_ms", doc.Duration.Milliseconds(),
	)

	words := make([]Word, len(doc.Words))
	for i, w := range doc.Words {
		words[i] = Word{Text: w.Text, Confidence: w.Confidence, BBox: toBox(w.BBox)}
	}
	lines := make([]Line, len(doc.Lines))
	for i, ln := range doc.Lines {
		lines[i] = Line{Text: ln.Text, Confidence: ln.Confidence, BBox: toBox(ln.BBox)}
	}
	return RecognizedDocument{Text: doc.Text, Words: words, Lines: lines}, nil
}

func toBox(b *ocr.Box) *Box {
	if b == nil {
		return nil
	}
	return &Box{X0: b.X0, Y0: b.Y0, X1: b.X1, Y1: b.Y1}
}

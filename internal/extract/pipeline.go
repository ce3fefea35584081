package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/common"
	"github.com/mikocoral05/viscera/internal/preset"
)

// Options configures a single pipeline invocation.
type Options struct {
	// Category selects which preset parses the recognized text. Empty means
	// no structured parsing; an unregistered value is not an error either.
	Category constants.Category

	// Remaining fields pass through to the OCR collaborator.
	Language string
	PSM      int
}

// Result is the assembled output of one pipeline invocation.
type Result struct {
	Text          string        `json:"text"`
	ConfidenceAvg *float64      `json:"confidence_avg,omitempty"`
	Words         []Word        `json:"words"`
	Parsed        preset.Record `json:"parsed,omitempty"`
}

// Pipeline orchestrates OCR, confidence aggregation and preset dispatch.
// Invocations are independent and share no mutable state, so one Pipeline is
// safe to use from many goroutines.
type Pipeline struct {
	recognizer TextRecognizer
	logger     *slog.Logger
}

func NewPipeline(recognizer TextRecognizer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{recognizer: recognizer, logger: logger}
}

// Run recognizes the image and, when a known category was requested, parses
// the text through its preset. OCR failure is the only error path; a preset
// field that finds nothing is simply absent from the record.
func (p *Pipeline) Run(ctx context.Context, image ImageRef, opts Options) (Result, error) {
	doc, err := p.recognizer.Recognize(ctx, image, RecognizeOptions{
		Language: opts.Language,
		PSM:      opts.PSM,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", common.ErrOCR, err)
	}

	words := doc.Words
	if len(words) == 0 && len(doc.Lines) > 0 {
		words = synthesizeWords(doc.Lines)
	}

	res := Result{
		Text:          doc.Text,
		ConfidenceAvg: AverageConfidence(words),
		Words:         words,
	}

	if opts.Category != "" {
		if parse, ok := preset.Lookup(opts.Category); ok {
			res.Parsed = parse(doc.Text)
		} else {
			p.logger.Warn("unknown category requested, skipping parse", "category", opts.Category)
		}
	}
	return res, nil
}

// synthesizeWords builds word observations from line-level ones, for engines
// that only report lines. One observation per line, confidence copied over.
func synthesizeWords(lines []Line) []Word {
	words := make([]Word, 0, len(lines))
	for _, ln := range lines {
		words = append(words, Word{Text: ln.Text, Confidence: ln.Confidence, BBox: ln.BBox})
	}
	return words
}

package extract

import (
	"context"
)

// ImageRef is an opaque reference to pixel data, passed through untouched to
// the OCR collaborator. Either a path or an in-memory buffer.
type ImageRef struct {
	Path string
	Data []byte
}

// Box is a bounding rectangle in image pixel coordinates.
type Box struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Word is a single recognized unit of text. Confidence is in [0,100]; nil
// means the engine reported none.
type Word struct {
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
	BBox       *Box     `json:"bbox,omitempty"`
}

// Line is a line-level observation; some engines only report these.
type Line struct {
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
	BBox       *Box     `json:"bbox,omitempty"`
}

// RecognizedDocument is what the OCR collaborator produces: raw text plus
// word-level (and optionally line-level) observations. Immutable once built.
type RecognizedDocument struct {
	Text  string
	Words []Word
	Lines []Line
}

// RecognizeOptions is forwarded verbatim to the OCR collaborator; the
// extraction engine does not interpret these fields.
type RecognizeOptions struct {
	Language string
	PSM      int
}

// TextRecognizer is the OCR collaborator boundary: image in, recognized text
// out. Implementations may block; everything downstream is pure computation.
type TextRecognizer interface {
	Recognize(ctx context.Context, image ImageRef, opts RecognizeOptions) (RecognizedDocument, error)
}

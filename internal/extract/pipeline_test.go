package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/common"
	"github.com/mikocoral05/viscera/internal/preset"
)

// stubRecognizer returns a canned document or error.
type stubRecognizer struct {
	doc RecognizedDocument
	err error
}

func (s stubRecognizer) Recognize(_ context.Context, _ ImageRef, _ RecognizeOptions) (RecognizedDocument, error) {
	return s.doc, s.err
}

func TestPipelineRunOCRFailure(t *testing.T) {
	cause := errors.New("tesseract exited 1")
	p := NewPipeline(stubRecognizer{err: cause}, nil)

	_, err := p.Run(context.Background(), ImageRef{Path: "x.jpg"}, Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "ocr failed")
	assert.ErrorIs(t, err, common.ErrOCR)
	assert.ErrorIs(t, err, cause)
}

func TestPipelineRunParsesKnownCategory(t *testing.T) {
	text := "GCash\nYou have sent ₱1,500.00\nTo: Juan Dela Cruz"
	p := NewPipeline(stubRecognizer{doc: RecognizedDocument{
		Text:  text,
		Words: []Word{{Text: "GCash", Confidence: fptr(95)}},
	}}, nil)

	res, err := p.Run(context.Background(), ImageRef{Path: "x.jpg"}, Options{
		Category: constants.MobileReceipt,
	})
	require.NoError(t, err)
	assert.Equal(t, text, res.Text)

	require.NotNil(t, res.ConfidenceAvg)
	assert.InDelta(t, 95, *res.ConfidenceAvg, 1e-9)

	require.NotNil(t, res.Parsed)
	rec, ok := res.Parsed.(preset.MobileReceiptRecord)
	require.True(t, ok)
	assert.Equal(t, "gcash", rec.Platform)
	require.NotNil(t, rec.Amount)
	assert.Equal(t, 1500.0, *rec.Amount)
}

func TestPipelineRunNoCategorySkipsParsing(t *testing.T) {
	p := NewPipeline(stubRecognizer{doc: RecognizedDocument{Text: "hello"}}, nil)

	res, err := p.Run(context.Background(), ImageRef{Path: "x.jpg"}, Options{})
	require.NoError(t, err)
	assert.Nil(t, res.Parsed)
	assert.Nil(t, res.ConfidenceAvg, "no words means no confidence, not zero")
}

func TestPipelineRunUnknownCategoryIsNotAnError(t *testing.T) {
	p := NewPipeline(stubRecognizer{doc: RecognizedDocument{Text: "hello"}}, nil)

	res, err := p.Run(context.Background(), ImageRef{Path: "x.jpg"}, Options{
		Category: constants.GenericText,
	})
	require.NoError(t, err)
	assert.Nil(t, res.Parsed)
}

func TestPipelineRunSynthesizesWordsFromLines(t *testing.T) {
	p := NewPipeline(stubRecognizer{doc: RecognizedDocument{
		Text: "one\ntwo",
		Lines: []Line{
			{Text: "one", Confidence: fptr(80)},
			{Text: "two", Confidence: fptr(60)},
		},
	}}, nil)

	res, err := p.Run(context.Background(), ImageRef{Path: "x.jpg"}, Options{})
	require.NoError(t, err)
	require.Len(t, res.Words, 2)
	assert.Equal(t, "one", res.Words[0].Text)
	require.NotNil(t, res.ConfidenceAvg)
	assert.InDelta(t, 70, *res.ConfidenceAvg, 1e-9)
}

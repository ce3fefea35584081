package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestAverageConfidence(t *testing.T) {
	tests := []struct {
		name  string
		words []Word
		want  *float64
	}{
		{"empty is nil not zero", nil, nil},
		{"empty slice is nil", []Word{}, nil},
		{"single word", []Word{{Text: "a", Confidence: fptr(90)}}, fptr(90)},
		{
			"mean of several",
			[]Word{
				{Text: "a", Confidence: fptr(80)},
				{Text: "b", Confidence: fptr(100)},
			},
			fptr(90),
		},
		{
			"missing confidence counts as zero",
			[]Word{
				{Text: "a", Confidence: fptr(90)},
				{Text: "b"},
			},
			fptr(45),
		},
		{"all missing averages to zero", []Word{{Text: "a"}, {Text: "b"}}, fptr(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageConfidence(tt.words)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

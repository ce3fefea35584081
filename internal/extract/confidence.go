package extract

// AverageConfidence reduces word observations to a single scalar in [0,100].
// It returns nil for an empty sequence: "no data" is not the same thing as
// zero confidence. A word with no reported confidence counts as 0.
func AverageConfidence(words []Word) *float64 {
	if len(words) == 0 {
		return nil
	}
	var total float64
	for _, w := range words {
		if w.Confidence != nil {
			total += *w.Confidence
		}
	}
	avg := total / float64(len(words))
	return &avg
}

package ocr

import (
	"strconv"
	"strings"
)

// parseTSV reads tesseract TSV output into word and line observations.
// Columns: level page block par line word left top width height conf text.
// Word rows are level 5; a conf of -1 means tesseract reported none.
func parseTSV(out []byte) ([]Word, []Line) {
	var words []Word

	type lineKey struct{ page, block, par, line int }
	type lineAcc struct {
		key   lineKey
		texts []string
		conf  float64
		n     int
		box   Box
	}
	var lineOrder []lineKey
	lineMap := map[lineKey]*lineAcc{}

	rows := strings.Split(string(out), "\n")
	for i, row := range rows {
		if i == 0 || row == "" {
			continue // skip header
		}
		cols := strings.Split(row, "\t")
		if len(cols) < 12 {
			continue // defensive
		}
		level, err := strconv.Atoi(cols[0])
		if err != nil || level != 5 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}

		w := Word{Text: text}
		if box, ok := parseBox(cols[6:10]); ok {
			w.BBox = &box
		}
		if conf, err := strconv.ParseFloat(cols[10], 64); err == nil && conf >= 0 {
			w.Confidence = &conf
		}
		words = append(words, w)

		key := lineKey{atoiCol(cols[1]), atoiCol(cols[2]), atoiCol(cols[3]), atoiCol(cols[4])}
		acc, ok := lineMap[key]
		if !ok {
			acc = &lineAcc{key: key}
			if w.BBox != nil {
				acc.box = *w.BBox
			}
			lineMap[key] = acc
			lineOrder = append(lineOrder, key)
		}
		acc.texts = append(acc.texts, text)
		if w.Confidence != nil {
			acc.conf += *w.Confidence
		}
		acc.n++
		if w.BBox != nil {
			acc.box = unionBox(acc.box, *w.BBox)
		}
	}

	lines := make([]Line, 0, len(lineOrder))
	for _, key := range lineOrder {
		acc := lineMap[key]
		ln := Line{Text: strings.Join(acc.texts, " ")}
		if acc.n > 0 {
			mean := acc.conf / float64(acc.n)
			ln.Confidence = &mean
		}
		box := acc.box
		ln.BBox = &box
		lines = append(lines, ln)
	}
	return words, lines
}

func parseBox(cols []string) (Box, bool) {
	left, err1 := strconv.Atoi(cols[0])
	top, err2 := strconv.Atoi(cols[1])
	width, err3 := strconv.Atoi(cols[2])
	height, err4 := strconv.Atoi(cols[3])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return Box{}, false
	}
	return Box{X0: left, Y0: top, X1: left + width, Y1: top + height}, true
}

func unionBox(a, b Box) Box {
	if b.X0 < a.X0 {
		a.X0 = b.X0
	}
	if b.Y0 < a.Y0 {
		a.Y0 = b.Y0
	}
	if b.X1 > a.X1 {
		a.X1 = b.X1
	}
	if b.Y1 > a.Y1 {
		a.Y1 = b.Y1
	}
	return a
}

func atoiCol(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

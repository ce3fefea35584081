package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Amount is a currency-qualified numeric quantity.
type Amount struct {
	Value  float64
	Symbol string // "₱", "$", "€", "£"; empty when no symbol was printed
}

// Formatted renders the amount for display callers, with grouping separators
// restored. Raw-number callers read Value directly.
func (a Amount) Formatted() string {
	s := humanize.CommafWithDigits(a.Value, 2)
	if a.Symbol != "" {
		return a.Symbol + s
	}
	return s
}

// AmountMatcher finds a number anchored to one of a fixed set of keywords.
// Strict mode requires a two-digit decimal fraction, which keeps transaction
// amounts from capturing unrelated integers such as quantities.
type AmountMatcher struct {
	re *regexp.Regexp
}

func NewAmountMatcher(keywords []string, strict bool) AmountMatcher {
	num := `([\d,]+(?:\.\d+)?)`
	if strict {
		num = `([\d,]+\.\d{2})`
	}
	// The keyword, symbol and number must share a line.
	re := regexp.MustCompile(
		`(?i:` + joinAlternates(keywords) + `)` +
			`[^0-9₱$€£\n]{0,10}` + `(₱|\$|€|£)?[ \t]*` + num)
	return AmountMatcher{re: re}
}

func (m AmountMatcher) Match(text string) (Amount, bool) {
	g := m.re.FindStringSubmatch(text)
	if g == nil {
		return Amount{}, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(g[2], ",", ""), 64)
	if err != nil {
		return Amount{}, false
	}
	return Amount{Value: v, Symbol: g[1]}, true
}

// joinAlternates builds a regex alternation from literal keywords, tolerating
// run-together whitespace inside multi-word keywords.
func joinAlternates(keywords []string) string {
	parts := make([]string, 0, len(keywords))
	for _, k := range keywords {
		parts = append(parts, strings.ReplaceAll(regexp.QuoteMeta(k), " ", `\s+`))
	}
	return strings.Join(parts, "|")
}

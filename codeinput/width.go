package codeinput

import "github.com/mattn/go-runewidth"

// WidthMetrics are the measurements used to size a line input without an explicit width
type WidthMetrics struct {
	CharWidth      float64
	SeparatorWidth float64
	LetterSpacing  float64
	PaddingLeft    float64
	PaddingRight   float64
}

// AutoWidth returns
//
//	charWidth*n + letterSpacing*(n-1) + separators*(separatorWidth+letterSpacing) + padding
func AutoWidth(n, separators int, m WidthMetrics) float64 {
	if n <= 0 {
		return m.PaddingLeft + m.PaddingRight
	}
	return m.CharWidth*float64(n) +
		m.LetterSpacing*float64(n-1) +
		float64(separators)*(m.SeparatorWidth+m.LetterSpacing) +
		m.PaddingLeft + m.PaddingRight
}

// Proportional-font estimates for a glyph relative to its font size
const (
	charWidthRatio      = 0.65
	separatorWidthRatio = 0.6
)

// FontMetrics estimates pixel metrics for a proportional font of fontSize
func FontMetrics(fontSize, letterSpacing, paddingLeft, paddingRight float64) WidthMetrics {
	return WidthMetrics{
		CharWidth:      fontSize * charWidthRatio,
		SeparatorWidth: fontSize * separatorWidthRatio,
		LetterSpacing:  letterSpacing,
		PaddingLeft:    paddingLeft,
		PaddingRight:   paddingRight,
	}
}

// CellMetrics measures terminal columns. sample holds characters the field is
// expected to show; the widest sets CharWidth, with a floor of one column.
func CellMetrics(sample, separator string, letterSpacing, paddingLeft, paddingRight int) WidthMetrics {
	charW := 1
	for _, g := range Graphemes(sample) {
		charW = max(charW, runewidth.StringWidth(g))
	}
	return WidthMetrics{
		CharWidth:      float64(charW),
		SeparatorWidth: float64(max(1, runewidth.StringWidth(separator))),
		LetterSpacing:  float64(letterSpacing),
		PaddingLeft:    float64(paddingLeft),
		PaddingRight:   float64(paddingRight),
	}
}

package codeinput

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Graphemes splits s into extended grapheme clusters
func Graphemes(s string) []string {
	out := make([]string, 0, len(s))
	state := -1
	cluster := ""
	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// GraphemeLen returns the number of grapheme clusters in s
func GraphemeLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// firstGrapheme returns the leading cluster of s, "" for empty input
func firstGrapheme(s string) string {
	if s == "" {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster
}

// truncateGraphemes keeps at most n clusters of s
func truncateGraphemes(s string, n int) []string {
	g := Graphemes(s)
	if len(g) > n {
		g = g[:n]
	}
	return g
}

// IsPrintable reports whether s would insert a visible character
func IsPrintable(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && !unicode.IsControl(r)
}

func join(g []string) string {
	return strings.Join(g, "")
}

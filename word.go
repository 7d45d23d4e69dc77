package caption

import "strings"

// Word is one spoken word with its time interval in seconds.
type Word struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Contains reports whether t lies in the closed interval [Start, End].
func (w Word) Contains(t float64) bool {
	return w.Start <= t && t <= w.End
}

// Window is a fixed-size group of consecutive words shown together.
type Window struct {
	Index int
	Words []Word
	Start float64
	End   float64
}

// Text returns the window's words joined by single spaces.
func (w Window) Text() string {
	parts := make([]string, len(w.Words))
	for i, word := range w.Words {
		parts[i] = word.Text
	}
	return strings.Join(parts, " ")
}

// Texts returns the text of each word.
func (w Window) Texts() []string {
	out := make([]string, len(w.Words))
	for i, word := range w.Words {
		out[i] = word.Text
	}
	return out
}

// Contains reports whether t lies in the closed interval [Start, End].
func (w Window) Contains(t float64) bool {
	return w.Start <= t && t <= w.End
}

// Highlight returns the index of the first word containing t, or -1.
func (w Window) Highlight(t float64) int {
	for i, word := range w.Words {
		if word.Contains(t) {
			return i
		}
	}
	return -1
}

// Segment chunks words left to right into windows of n words. The last
// window may be shorter. A window spans from its first word's start to its
// last word's end. n <= 0 uses the default of 3.
func Segment(words []Word, n int) []Window {
	if n <= 0 {
		n = defaultWordsPerWindow
	}
	windows := make([]Window, 0, (len(words)+n-1)/n)
	for i := 0; i < len(words); i += n {
		chunk := words[i:min(i+n, len(words))]
		windows = append(windows, Window{
			Index: len(windows),
			Words: chunk,
			Start: chunk[0].Start,
			End:   chunk[len(chunk)-1].End,
		})
	}
	return windows
}

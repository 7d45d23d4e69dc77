// Package transcript reads word timestamp files and writes SRT sidecars.
package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/caption"
)

// ErrFormat is returned for JSON that is neither a transcript object nor a
// bare word array.
var ErrFormat = errors.New("transcript: unrecognized format")

// Transcript is a speech recognition result with word timings.
type Transcript struct {
	Text  string         `json:"transcript,omitempty"`
	Words []caption.Word `json:"word_timestamps"`
}

// Load reads the transcript at path.
func Load(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("transcript: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a transcript object with a word_timestamps array, or a bare
// array of {word, start, end}. Words are NFC-normalized and trimmed; empty
// words are dropped. Timings are kept as given.
func Decode(r io.Reader) (*Transcript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("transcript: %w", err)
	}
	data = bytes.TrimSpace(data)

	var t Transcript
	switch {
	case len(data) > 0 && data[0] == '[':
		if err := json.Unmarshal(data, &t.Words); err != nil {
			return nil, fmt.Errorf("transcript: %w", err)
		}
	case len(data) > 0 && data[0] == '{':
		var doc struct {
			Transcript
			Words *[]caption.Word `json:"word_timestamps"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("transcript: %w", err)
		}
		if doc.Words == nil {
			return nil, fmt.Errorf("%w: missing word_timestamps", ErrFormat)
		}
		t.Text, t.Words = doc.Text, *doc.Words
	default:
		return nil, ErrFormat
	}

	t.Words = clean(t.Words)
	return &t, nil
}

func clean(words []caption.Word) []caption.Word {
	out := words[:0]
	for _, w := range words {
		w.Text = strings.TrimSpace(norm.NFC.String(w.Text))
		if w.Text == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Encode writes t as indented JSON.
func (t *Transcript) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

package typeface

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// Glyph is one positioned glyph of a shaped run, relative to the run's pen
// origin.
type Glyph struct {
	ID      sfnt.GlyphIndex
	X, Y    float64
	Advance float64
}

// Run is a shaped line of text.
type Run struct {
	Glyphs  []Glyph
	Advance float64
}

// HarfbuzzShaper is not safe for concurrent use; each Shape call borrows one.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

var english = language.NewLanguage("en")

// Shape converts s into positioned glyphs. Fonts go-text can read are shaped
// with HarfBuzz (kerning, ligatures); others use sfnt advances and kerning.
func (f *Face) Shape(s string) Run {
	if s == "" {
		return Run{}
	}
	if f.src.shaping != nil {
		return f.shapeHarfbuzz(s)
	}
	return f.shapeBuiltin(s)
}

func (f *Face) shapeHarfbuzz(s string) Run {
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.src.shaping),
		Size:      f.ppem,
		Script:    detectScript(runes),
		Language:  english,
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	run := Run{Glyphs: make([]Glyph, len(out.Glyphs))}
	var x float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		run.Glyphs[i] = Glyph{
			ID:      sfnt.GlyphIndex(uint16(g.GlyphID)), //nolint:gosec // glyph ids of a single font fit in uint16
			X:       x + fixedToFloat(g.XOffset),
			Y:       fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	run.Advance = x
	return run
}

func (f *Face) shapeBuiltin(s string) Run {
	buf := f.src.buffer()
	defer f.src.release(buf)

	var (
		run  Run
		x    float64
		prev sfnt.GlyphIndex
	)
	for i, r := range []rune(s) {
		gi, err := f.src.sfnt.GlyphIndex(buf, r)
		if err != nil {
			continue
		}
		if i > 0 {
			if k, err := f.src.sfnt.Kern(buf, prev, gi, f.ppem, xfont.HintingNone); err == nil {
				x += fixedToFloat(k)
			}
		}
		adv, err := f.src.sfnt.GlyphAdvance(buf, gi, f.ppem, xfont.HintingNone)
		if err != nil {
			adv = 0
		}
		run.Glyphs = append(run.Glyphs, Glyph{ID: gi, X: x, Advance: fixedToFloat(adv)})
		x += fixedToFloat(adv)
		prev = gi
	}
	run.Advance = x
	return run
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

package tqdm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

//go:generate stringer -type=StyleKind -linecomment

// StyleKind tags Style variants.
type StyleKind uint8

// Style kinds.
const (
	KindBlock   StyleKind = iota // block
	KindASCII                    // ascii
	KindBalloon                  // balloon
	KindHash                     // hash
	KindCustom                   // custom
)

// Style is an ordered glyph sequence from empty to full. It is either
// one of predefined sets or a custom sequence. Zero value renders as
// StyleBlock.
type Style struct {
	kind   StyleKind
	glyphs []string
}

// Predefined styles.
var (
	StyleBlock   = Style{KindBlock, splitGlyphs(" ▏▎▍▌▋▊▉█")}
	StyleASCII   = Style{KindASCII, splitGlyphs(" 123456789#")}
	StyleBalloon = Style{KindBalloon, splitGlyphs(".oO@*")}
	StyleHash    = Style{KindHash, splitGlyphs(" #")}
)

var predefinedStyles = map[string]Style{
	KindBlock.String():   StyleBlock,
	KindASCII.String():   StyleASCII,
	KindBalloon.String(): StyleBalloon,
	KindHash.String():    StyleHash,
}

// ParseStyle looks up predefined style by its name.
func ParseStyle(name string) (Style, error) {
	if s, ok := predefinedStyles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// StyleNames returns names of predefined styles in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(predefinedStyles))
	for name := range predefinedStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CustomStyle builds style from glyphs, where every rune is one glyph,
// first one is empty and last one is full. At least two single cell
// glyphs are required.
func CustomStyle(glyphs string) (Style, error) {
	g := splitGlyphs(glyphs)
	if len(g) < 2 {
		return Style{}, fmt.Errorf("%w: need at least 2 glyphs, got %d", ErrInvalidStyle, len(g))
	}
	for _, s := range g {
		if w := runewidth.StringWidth(s); w != 1 {
			return Style{}, fmt.Errorf("%w: glyph %q is %d cells wide", ErrInvalidStyle, s, w)
		}
	}
	return Style{KindCustom, g}, nil
}

// Kind returns style variant.
func (s Style) Kind() StyleKind {
	return s.kind
}

// Glyphs returns copy of the glyph sequence.
func (s Style) Glyphs() []string {
	return append([]string(nil), s.resolve()...)
}

func (s Style) String() string {
	if s.kind == KindCustom {
		return strings.Join(s.glyphs, "")
	}
	return s.kind.String()
}

func (s Style) resolve() []string {
	if len(s.glyphs) < 2 {
		return StyleBlock.glyphs
	}
	return s.glyphs
}

func splitGlyphs(s string) []string {
	glyphs := make([]string, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, string(r))
	}
	return glyphs
}

package tqdm

import (
	"io"
	"math/bits"
	"strings"

	"github.com/vbauerster/tqdm/decor"
)

// Fill writes exactly width glyphs. Whole cells are drawn with the last
// glyph, the boundary cell with one of the intermediate glyphs and the
// rest with the first one. Unbounded bars draw nothing.
func (s Style) Fill(w io.Writer, width int, stat decor.Statistics) error {
	if width <= 0 || !stat.Bounded {
		return nil
	}
	_, err := io.WriteString(w, s.fill(width, stat.Total, stat.Current))
	return err
}

func (s Style) fill(width int, total, current int64) string {
	if width <= 0 {
		return ""
	}
	glyphs := s.resolve()
	empty, full := glyphs[0], glyphs[len(glyphs)-1]
	partials := glyphs[:len(glyphs)-1]

	n, i := cells(width, total, current, len(partials))

	var b strings.Builder
	b.Grow(width * len(full))
	b.WriteString(strings.Repeat(full, n))
	if n < width {
		b.WriteString(partials[i])
		b.WriteString(strings.Repeat(empty, width-n-1))
	}
	return b.String()
}

// cells returns number of full cells floor(width*current/total) and
// index floor(frac*m) of the partial glyph for the boundary cell. Zero
// total counts as complete.
func cells(width int, total, current int64, m int) (int, int) {
	if total <= 0 || current >= total {
		return width, 0
	}
	if current <= 0 {
		return 0, 0
	}
	// width*current/total < width, so both quotients fit into 64 bits
	hi, lo := bits.Mul64(uint64(width), uint64(current))
	n, rem := bits.Div64(hi, lo, uint64(total))
	hi, lo = bits.Mul64(rem, uint64(m))
	i, _ := bits.Div64(hi, lo, uint64(total))
	return int(n), int(i)
}

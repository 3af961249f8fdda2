package cwriter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
)

// https://github.com/dylanaraps/pure-sh-bible#cursor-movement
const (
	escOpen    = "\x1b["
	cuu        = "A"
	cud        = "B"
	cup        = "H"
	ed         = "J"
	el2        = "2K"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// Default terminal size, used when real one cannot be determined.
const (
	DefaultColumns = 80
	DefaultRows    = 24
)

// ErrNotTTY not a TeleTYpewriter error.
var ErrNotTTY = errors.New("not a terminal")

// Writer is a buffered writer that updates the terminal. The contents
// of writer will be flushed when Flush is called. Writer is not safe
// for concurrent use, callers serialize access.
type Writer struct {
	*bytes.Buffer
	out      io.Writer
	fd       int
	terminal bool
	termSize func(int) (int, int, error)
	fallback [2]int
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	w := &Writer{
		Buffer: new(bytes.Buffer),
		out:    out,
		termSize: func(_ int) (int, int, error) {
			return -1, -1, ErrNotTTY
		},
		fallback: [2]int{DefaultColumns, DefaultRows},
	}
	if f, ok := out.(*os.File); ok {
		w.fd = int(f.Fd())
		if IsTerminal(w.fd) {
			w.terminal = true
			w.termSize = GetSize
			enableVirtualTerminal(w.fd)
		}
	}
	return w
}

// IsTerminal reports whether underlying output is a terminal.
func (w *Writer) IsTerminal() bool {
	return w.terminal
}

// SetFallbackSize overrides DefaultColumns x DefaultRows fallback.
// Non-positive values are ignored.
func (w *Writer) SetFallbackSize(columns, rows int) {
	if columns > 0 {
		w.fallback[0] = columns
	}
	if rows > 0 {
		w.fallback[1] = rows
	}
}

// GetTermSize returns WxH of underlying terminal.
func (w *Writer) GetTermSize() (width, height int, err error) {
	return w.termSize(w.fd)
}

// Size returns columns and rows of underlying terminal, or fallback
// size if it cannot be determined.
func (w *Writer) Size() (columns, rows int) {
	columns, rows, err := w.GetTermSize()
	if err != nil || columns <= 0 {
		return w.fallback[0], w.fallback[1]
	}
	if rows <= 0 {
		rows = w.fallback[1]
	}
	return columns, rows
}

// HideCursor makes cursor invisible.
func (w *Writer) HideCursor() {
	w.WriteString(hideCursor)
}

// ShowCursor makes cursor visible.
func (w *Writer) ShowCursor() {
	w.WriteString(showCursor)
}

// MoveTo moves cursor to zero based column and row of the screen.
func (w *Writer) MoveTo(column, row int) {
	if column < 0 {
		column = 0
	}
	if row < 0 {
		row = 0
	}
	w.csi(row+1, ";"+strconv.Itoa(column+1)+cup)
}

// CursorUp moves cursor n lines up.
func (w *Writer) CursorUp(n int) {
	if n > 0 {
		w.csi(n, cuu)
	}
}

// CursorDown moves cursor n lines down.
func (w *Writer) CursorDown(n int) {
	if n > 0 {
		w.csi(n, cud)
	}
}

// CarriageReturn moves cursor to the first column.
func (w *Writer) CarriageReturn() {
	w.WriteByte('\r')
}

// ClearDown clears screen from cursor down.
func (w *Writer) ClearDown() {
	w.WriteString(escOpen + ed)
}

// ClearLine clears current line, cursor position is not changed.
func (w *Writer) ClearLine() {
	w.WriteString(escOpen + el2)
}

// Flush flushes the underlying buffer.
func (w *Writer) Flush() error {
	if w.Len() == 0 {
		return nil
	}
	_, err := w.WriteTo(w.out)
	return err
}

// Discard drops buffered content without writing it.
func (w *Writer) Discard() {
	w.Reset()
}

func (w *Writer) csi(n int, suffix string) {
	var buf [24]byte
	b := append(buf[:0], escOpen...)
	b = strconv.AppendInt(b, int64(n), 10)
	b = append(b, suffix...)
	w.Write(b)
}

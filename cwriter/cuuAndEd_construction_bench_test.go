package cwriter

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"testing"
)

func BenchmarkWithFprintf(b *testing.B) {
	cuuAndEd := "\x1b[%dA\x1b[J"
	for i := 0; i < b.N; i++ {
		fmt.Fprintf(io.Discard, cuuAndEd, 4)
	}
}

func BenchmarkWithJoin(b *testing.B) {
	bCuuAndEd := [][]byte{[]byte("\x1b["), []byte("A\x1b[J")}
	for i := 0; i < b.N; i++ {
		_, _ = io.Discard.Write(bytes.Join(bCuuAndEd, []byte(strconv.Itoa(4))))
	}
}

func BenchmarkWithCsi(b *testing.B) {
	w := New(io.Discard)
	for i := 0; i < b.N; i++ {
		w.CursorUp(4)
		w.ClearDown()
		w.Discard()
	}
}

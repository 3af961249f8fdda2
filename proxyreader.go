package tqdm

import "io"

type proxyReader struct {
	io.ReadCloser
	bar *Bar
}

func (x proxyReader) Read(p []byte) (int, error) {
	n, err := x.ReadCloser.Read(p)
	x.bar.Advance(int64(n))
	return n, err
}

type proxyWriterTo struct {
	proxyReader
}

func (x proxyWriterTo) WriteTo(w io.Writer) (int64, error) {
	n, err := x.ReadCloser.(io.WriterTo).WriteTo(w)
	x.bar.Advance(n)
	return n, err
}

// ProxyReader wraps r so that every byte read advances the bar by one.
// If r is io.WriterTo, so is the returned reader. Closing the returned
// reader closes r if it is io.Closer, the bar stays open. Bar without
// unit is switched to decor.UnitKiB.
func (b *Bar) ProxyReader(r io.Reader) io.ReadCloser {
	if r == nil {
		return nil
	}
	b.byteUnit()
	rc := toReadCloser(r)
	pr := proxyReader{rc, b}
	if _, ok := r.(io.WriterTo); ok {
		return proxyWriterTo{pr}
	}
	return pr
}

func toReadCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	// io.NopCloser keeps io.WriterTo of r
	return io.NopCloser(r)
}

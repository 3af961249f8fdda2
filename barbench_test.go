package tqdm

import (
	"io"
	"sync"
	"testing"
	"time"
)

const total = 1000

func BenchmarkIncrementOneBar(b *testing.B) {
	benchBody(1, b)
}

func BenchmarkIncrementTwoBars(b *testing.B) {
	benchBody(2, b)
}

func BenchmarkIncrementThreeBars(b *testing.B) {
	benchBody(3, b)
}

func BenchmarkIncrementFourBars(b *testing.B) {
	benchBody(4, b)
}

func BenchmarkIncrementRendered(b *testing.B) {
	p := New(WithOutput(io.Discard), WithAutoRefresh(), WithWidth(80))
	bar, err := p.AddBar(int64(b.N), BarMinInterval(0))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for range b.N {
		bar.Increment()
	}
	b.StopTimer()
	bar.Close()
	p.Wait()
}

func BenchmarkRenderLine(b *testing.B) {
	now := time.Now()
	s := Snapshot{CreatedAt: now.Add(-time.Minute), Total: 1000, Current: 333, Rate: 5.55, RateKnown: true, Config: DefaultConfig()}
	b.ReportAllocs()
	for range b.N {
		_ = RenderLine(s, now, 120)
	}
}

func benchBody(n int, b *testing.B) {
	p := New(WithOutput(nil), WithWidth(80))
	wg := new(sync.WaitGroup)
	b.ResetTimer()
	for range b.N {
		for j := range n {
			bar, err := p.AddBar(total)
			if err != nil {
				b.Fatal(err)
			}
			switch j {
			case n - 1:
				complete(b, bar)
			default:
				wg.Add(1)
				go func() {
					complete(b, bar)
					wg.Done()
				}()
			}
		}
		wg.Wait()
	}
	p.Wait()
}

func complete(b *testing.B, bar *Bar) {
	for range total {
		bar.Increment()
	}
	bar.Close()
	if bar.Current() != total {
		b.Fail()
	}
}

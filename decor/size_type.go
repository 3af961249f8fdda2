package decor

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:generate stringer -type=Unit -linecomment

// Unit selects how Counters and Speed print amounts.
type Unit uint8

// Units.
const (
	UnitNone Unit = iota // none
	UnitKiB              // kib
	UnitKB               // kb
)

type sizeUnit struct {
	size int64
	name string
}

var (
	b1024Units = []sizeUnit{{1, "b"}, {1 << 10, "KiB"}, {1 << 20, "MiB"}, {1 << 30, "GiB"}, {1 << 40, "TiB"}}
	b1000Units = []sizeUnit{{1, "b"}, {1e3, "KB"}, {1e6, "MB"}, {1e9, "GB"}, {1e12, "TB"}}
)

// SizeB1024 is a byte count formatted with binary prefixes:
//
//	fmt.Sprintf("%.2f", SizeB1024(1536)) // "1.50KiB"
//	fmt.Sprintf("% d", SizeB1024(1536))  // "2 KiB"
type SizeB1024 int64

func (s SizeB1024) Format(st fmt.State, verb rune) {
	formatSize(st, verb, int64(s), b1024Units)
}

// SizeB1000 is a byte count formatted with decimal prefixes.
type SizeB1000 int64

func (s SizeB1000) Format(st fmt.State, verb rune) {
	formatSize(st, verb, int64(s), b1000Units)
}

func formatSize(st fmt.State, verb rune, v int64, units []sizeUnit) {
	prec := 6
	switch verb {
	case 'd', 's':
		prec = 0
	default:
		if p, ok := st.Precision(); ok {
			prec = p
		}
	}

	u := units[0]
	for _, next := range units[1:] {
		if v < next.size {
			break
		}
		u = next
	}

	var b strings.Builder
	b.WriteString(strconv.FormatFloat(float64(v)/float64(u.size), 'f', prec, 64))
	if st.Flag(' ') {
		b.WriteByte(' ')
	}
	b.WriteString(u.name)

	if w, ok := st.Width(); ok && b.Len() < w {
		pad := strings.Repeat(" ", w-b.Len())
		if st.Flag('-') {
			b.WriteString(pad)
		} else {
			io.WriteString(st, pad)
		}
	}
	io.WriteString(st, b.String())
}

// amount prints v in unit u, plain integer for UnitNone.
func (u Unit) amount(v int64) string {
	switch u {
	case UnitKiB:
		return fmt.Sprintf("%.2f", SizeB1024(v))
	case UnitKB:
		return fmt.Sprintf("%.2f", SizeB1000(v))
	}
	return strconv.FormatInt(v, 10)
}

// ParseUnit looks up unit by its name. Empty name is UnitNone.
func ParseUnit(name string) (Unit, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return UnitNone, true
	}
	for u := UnitNone; u <= UnitKB; u++ {
		if u.String() == name {
			return u, true
		}
	}
	return UnitNone, false
}

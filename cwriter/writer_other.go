//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos || windows)

package cwriter

// GetSize always fails on this platform.
func GetSize(int) (width, height int, err error) {
	return -1, -1, ErrNotTTY
}

// IsTerminal always reports false on this platform.
func IsTerminal(int) bool {
	return false
}

func enableVirtualTerminal(int) {}

//go:build windows || plan9 || js || wasip1

package tqdm

import "os"

// There is no resize signal, the console size is polled on every
// render instead.
func notifyResize() (<-chan os.Signal, func()) {
	return nil, func() {}
}

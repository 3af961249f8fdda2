//go:build !windows && !plan9 && !js && !wasip1

package tqdm

import (
	"os"
	"os/signal"
	"syscall"
)

func notifyResize() (<-chan os.Signal, func()) {
	winch := make(chan os.Signal, 2)
	signal.Notify(winch, syscall.SIGWINCH)
	return winch, func() { signal.Stop(winch) }
}

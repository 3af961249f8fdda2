// Command tqdm shows progress of data flowing through a pipe.
//
//	find / -name '*.go' | tqdm --desc files | wc -l
//	tqdm --bytes --total 1048576 < big.bin > copy.bin
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

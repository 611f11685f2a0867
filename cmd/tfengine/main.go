// Command tfengine is a command-line harness around the tfengine package:
// it ingests documents from a file, runs ranked queries against them, and
// reports match/removal/duplicate operations without a server process.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

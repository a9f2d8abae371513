package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

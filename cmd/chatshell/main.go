package main

import (
	"fmt"
	"os"
)

// version is overwritten at build time using -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

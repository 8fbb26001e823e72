package main

import (
	"os"

	"github.com/cotlang/cotup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

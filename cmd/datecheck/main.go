package main

import (
	"os"

	"github.com/crowmagnumb/parsers/internal/exitcode"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}

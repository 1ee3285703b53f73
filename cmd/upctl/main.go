package main

import (
	"fmt"
	"os"

	"uploadd/internal/upctl"
)

func main() {
	if err := upctl.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

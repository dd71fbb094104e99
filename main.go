package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/madhermit/pick/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "pick:", err)
		}
		os.Exit(1)
	}
}

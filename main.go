package main

import (
	"fmt"
	"os"

	"github.com/takenlabs/taken/internal/state"
	"github.com/takenlabs/taken/pkg/cmd/root"
)

func main() {
	s, err := state.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := root.NewCmdRoot(s).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	_ "github.com/brimdata/rusttype/cmd/rusttype/equal"
	_ "github.com/brimdata/rusttype/cmd/rusttype/merge"
	"github.com/brimdata/rusttype/cmd/rusttype/root"
)

func main() {
	if err := root.Rusttype.ExecRoot(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

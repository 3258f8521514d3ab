package main

import (
	"os"

	"github.com/alexandrebrg/warpscript-go/cmd/warpscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

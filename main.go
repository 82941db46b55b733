package main

import (
	"os"

	"github.com/pr1ncegupta/skillpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

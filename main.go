package main

import (
	"os"

	"github.com/zjrosen/audioreg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

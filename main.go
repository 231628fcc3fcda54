package main

import (
	"os"
)

func main() {
	if err := escrowdMain(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/gckit/gckit/cmd/gckit/command"
)

func main() {
	os.Exit(command.Execute())
}

package main

import (
	"github.com/custodia-labs/caselens/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}

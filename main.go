package main

import (
	"github.com/datebook/datebook/internal/cli"
)

func main() {
	cli.Execute()
}

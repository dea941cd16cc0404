package main

import (
	"github.com/hverr/drivedocs/cmd"
)

func main() {
	cmd.Execute()
}

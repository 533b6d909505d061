package main

import (
	"zonetext/cli"
)

func main() {
	cli.Start()
}

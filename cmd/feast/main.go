package main

import "github.com/mcoot/feastgame/internal/cli"

func main() {
	cli.Execute()
}

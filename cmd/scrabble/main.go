package main

import "github.com/mcoot/scrabble-go/internal/cli"

func main() {
	cli.Execute()
}

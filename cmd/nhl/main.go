package main

import "github.com/mcoot/nhlstats/internal/cli"

func main() {
	cli.Execute()
}

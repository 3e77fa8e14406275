package main

import "github.com/mcoot/kohlenschlagen/internal/cli"

func main() {
	cli.Execute()
}

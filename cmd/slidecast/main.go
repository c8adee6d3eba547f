package main

import "github.com/slidecast/slidecast/internal/cli"

func main() {
	cli.Main()
}

package main

import "lexfreq/internal/cli"

func main() {
	cli.Execute()
}

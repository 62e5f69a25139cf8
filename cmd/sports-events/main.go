package main

import "github.com/pfrederiksen/sports-events/internal/cli"

func main() {
	cli.Execute()
}

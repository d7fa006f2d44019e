package main

import "github.com/pfrederiksen/dcs-roster/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/xvierd/prank-cli/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/frontlint/frontlint/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/dinesim/dinesim/cmd"

func main() {
	cmd.Execute()
}

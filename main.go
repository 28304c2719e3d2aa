package main

import "github.com/ionut-t/tino/cmd"

func main() {
	cmd.Execute()
}

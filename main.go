package main

import "github.com/ionut-t/tourbillon/cmd"

func main() {
	cmd.Execute()
}

package main

import "martianoff/wrap/cmd/wrap/commands"

func main() {
	commands.Execute()
}

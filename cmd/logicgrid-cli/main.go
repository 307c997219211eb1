package main

import "logicgrid/cmd/logicgrid-cli/cmd"

func main() {
	cmd.Execute()
}

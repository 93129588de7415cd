package main

import "github.com/planweave/planweave/cmd"

func main() {
	cmd.Execute()
}

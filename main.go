package main

import "github.com/chenzhuyu2004/solarforest/cmd"

func main() {
	cmd.Execute()
}

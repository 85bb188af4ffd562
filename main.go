package main

import "mindmapai/mindweave/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/suchetkumbar/Syntara/cmd"

func main() {
	cmd.Execute()
}

package main

import "sizedsort/cmd"

func main() {
	cmd.Execute()
}

package main

import "go-fretboard/cmd"

func main() {
	cmd.Execute()
}

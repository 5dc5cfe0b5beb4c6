package main

import "github.com/brandoncanaday/1730sh/cmd"

func main() {
	cmd.Execute()
}

package main

import "pos/internal/cmd"

func main() {
	cmd.Execute()
}

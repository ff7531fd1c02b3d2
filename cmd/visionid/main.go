package main

import "github.com/AmoghShukla/VisionID/internal/cli"

func main() {
	cli.Execute()
}

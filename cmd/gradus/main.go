package main

import "github.com/apereda/gradus/internal/cli"

func main() {
	cli.Execute()
}

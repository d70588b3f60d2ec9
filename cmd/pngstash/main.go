package main

import "github.com/pngstash/pngstash/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/oh-lucy/themegen/internal/cli"

func main() {
	cli.Execute()
}

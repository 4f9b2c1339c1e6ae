package main

import "contraption/cli"

func main() {
	cli.Start()
}

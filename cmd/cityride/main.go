package main

import "github.com/nreyesp/cityride/internal/cli"

func main() {
	cli.Execute()
}

package main

import (
	"github.com/kcaldas/genie-skill/cmd/cli"
)

func main() {
	cli.Execute()
}

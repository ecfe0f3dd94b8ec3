package main

import (
	"os"

	"github.com/leapstack-labs/sqlex/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

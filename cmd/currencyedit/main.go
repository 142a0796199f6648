package main

import (
	"os"

	"github.com/msto63/currencyedit/cmd/currencyedit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/smack0007/bigc/cmd/bigc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

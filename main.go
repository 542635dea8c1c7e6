package main

import (
	"os"

	"github.com/saketh8887/medconnect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/lippytm/ai-sdk-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

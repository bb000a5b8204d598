// Package main provides the Subgrad ML CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Subgrad ML %s\n", version)
		return
	}

	fmt.Println("Subgrad ML - Subgradient Structured SVM Training for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/multiclass for a runnable training demo.")
}

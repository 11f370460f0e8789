package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/archup/pkg/style"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Errors are silenced on the command, so this is the one place
		// they reach the operator
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

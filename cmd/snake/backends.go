package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all renderer backends",
	Long:  `Shows a list of all renderer backends compiled into this binary.`,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

	// Print backends
	for _, b := range backends {
		title := b.Title
		if b.Name == registry.DefaultBackend {
			title += " [default]"
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, title)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --backend <name>' to use one.")
}

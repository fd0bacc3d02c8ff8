package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectx/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rule variants",
	Long:  `Shows every registered variant with its board size, line length and player count.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-4s  %-7s  %s\n", maxIDLen, "ID", "Board", "Line", "Players", "Title")
	fmt.Printf("  %-*s  %-7s  %-4s  %-7s  %s\n", maxIDLen, "--", "-----", "----", "-------", "-----")

	for _, v := range variants {
		size := fmt.Sprintf("%dx%d", v.Config.Rows, v.Config.Columns)
		marker := ""
		if v.ID == cfg.Game.Variant {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-7s  %-4d  %-7d  %s%s\n",
			maxIDLen, v.ID, size, v.Config.InARow, v.Config.Players, v.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'connectx replay --variant <id> --moves 3,3,4' to replay moves.")
}

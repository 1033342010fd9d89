// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus-wide statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	eng, store, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := eng.DatabaseStats(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return encodeJSON(stats)
	}
	if yamlOutput, _ := cmd.Flags().GetBool("yaml"); yamlOutput {
		return encodeYAML(stats)
	}

	fmt.Printf("Documents:  %d\n", stats.TotalDocuments)
	fmt.Printf("Professors: %d\n\n", stats.TotalProfessors)

	fmt.Println("Production types:")
	for _, e := range stats.ProductionTypes {
		fmt.Fprintf(os.Stdout, "  %-40s  %d\n", e.Name, e.Count)
	}
	fmt.Println("\nPublications per year:")
	for _, e := range stats.YearlyPublications {
		fmt.Fprintf(os.Stdout, "  %-6s  %d\n", e.Name, e.Count)
	}
	fmt.Println("\nTop categories:")
	for _, e := range stats.TopCategories {
		fmt.Fprintf(os.Stdout, "  %-40s  %d\n", e.Name, e.Count)
	}
	return nil
}

func init() {
	statsCmd.Flags().Bool("json", false, "output as JSON")
	statsCmd.Flags().Bool("yaml", false, "output as YAML")

	rootCmd.AddCommand(statsCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the corpus semantically",
	Long: `Search embeds the query and returns the closest publication records,
ranked by relevance. Structured filters narrow the result set.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	eng, store, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	filters := filtersFromFlags(cmd)

	resp, err := eng.Search(context.Background(), args[0], limit, filters)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return encodeJSON(resp)
	}
	if yamlOutput, _ := cmd.Flags().GetBool("yaml"); yamlOutput {
		return encodeYAML(resp)
	}

	if resp.TotalResults == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-9s  %-45s  %-25s  %-12s  %s\n",
		"Rank", "Score", "Title", "Professor", "Date", "Type")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for i, r := range resp.Results {
		title := r.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-9.3f  %-45s  %-25s  %-12s  %s\n",
			i+1, r.RelevanceScore, title, r.Professor, r.Date, r.ProductionType)
	}
	return nil
}

func filtersFromFlags(cmd *cobra.Command) *types.FilterSet {
	fs := &types.FilterSet{}
	fs.Professor, _ = cmd.Flags().GetString("professor")
	fs.ProductionType, _ = cmd.Flags().GetString("type")
	fs.Quartile, _ = cmd.Flags().GetString("quartile")

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if from != "" || to != "" {
		fs.DateRange = &types.DateRange{Start: from, End: to}
	}
	if cmd.Flags().Changed("min-impact") {
		minImpact, _ := cmd.Flags().GetFloat64("min-impact")
		fs.MinImpactFactor = &minImpact
	}

	if fs.IsZero() {
		return nil
	}
	return fs
}

func init() {
	searchCmd.Flags().Int("limit", 10, "maximum number of results")
	searchCmd.Flags().String("professor", "", "filter by exact professor name")
	searchCmd.Flags().String("type", "", "filter by production type")
	searchCmd.Flags().String("quartile", "", "filter by SJR quartile (e.g. Q1)")
	searchCmd.Flags().String("from", "", "date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "date range end (YYYY-MM-DD)")
	searchCmd.Flags().Float64("min-impact", 0, "minimum impact factor")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("yaml", false, "output results as YAML")

	rootCmd.AddCommand(searchCmd)
}

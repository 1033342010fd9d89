// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var professorsCmd = &cobra.Command{
	Use:   "professors",
	Short: "List professors and inspect their publication records",
}

var professorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all professors with publication counts",
	RunE:  runProfessorsList,
}

func runProfessorsList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	eng, store, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := eng.AllProfessors(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return encodeJSON(list)
	}
	if yamlOutput, _ := cmd.Flags().GetBool("yaml"); yamlOutput {
		return encodeYAML(list)
	}

	fmt.Printf("%d professor(s)\n\n", list.TotalProfessors)
	for _, p := range list.Professors {
		fmt.Fprintf(os.Stdout, "%-30s  %4d works\n", p.Name, p.TotalWorks)
	}
	return nil
}

var professorsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a professor's full profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfessorsShow,
}

func runProfessorsShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	eng, store, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	profile, err := eng.ProfessorProfile(context.Background(), args[0])
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("professor %q not found", args[0])
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return encodeJSON(profile)
	}
	if yamlOutput, _ := cmd.Flags().GetBool("yaml"); yamlOutput {
		return encodeYAML(profile)
	}

	fmt.Printf("%s\n%s\n", profile.Professor, strings.Repeat("=", len(profile.Professor)))
	fmt.Printf("Total works:  %d\n", profile.Stats.TotalWorks)
	fmt.Printf("Active years: %s\n", strings.Join(profile.Stats.ActiveYears, ", "))
	fmt.Printf("Categories:   %s\n\n", strings.Join(profile.Stats.Categories, "; "))
	fmt.Println("Recent works:")
	for _, w := range profile.Stats.RecentWorks {
		fmt.Fprintf(os.Stdout, "  %-12s  %s\n", w.Date, w.Title)
	}
	return nil
}

var professorsRankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the estimated availability ranking",
	RunE:  runProfessorsRanking,
}

func runProfessorsRanking(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	eng, store, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ranking, err := eng.AvailabilityRanking(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return encodeJSON(ranking)
	}
	if yamlOutput, _ := cmd.Flags().GetBool("yaml"); yamlOutput {
		return encodeYAML(ranking)
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-6s  %-7s  %s\n", "Professor", "Score", "Label", "Recent/Total")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 60))
	for _, e := range ranking {
		fmt.Fprintf(os.Stdout, "%-30s  %-6.2f  %-7s  %d/%d\n",
			e.Professor, e.AvailabilityScore, e.AvailabilityLabel,
			e.RecentPublications, e.TotalPublications)
	}
	return nil
}

func init() {
	for _, c := range []*cobra.Command{professorsListCmd, professorsShowCmd, professorsRankingCmd} {
		c.Flags().Bool("json", false, "output as JSON")
		c.Flags().Bool("yaml", false, "output as YAML")
	}

	professorsCmd.AddCommand(professorsListCmd, professorsShowCmd, professorsRankingCmd)
	rootCmd.AddCommand(professorsCmd)
}

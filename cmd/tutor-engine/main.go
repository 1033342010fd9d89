// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tutor-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tutor-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "tutor-engine",
	Short: "Semantic thesis-tutor recommendation engine",
	Long: `tutor-engine indexes professor publication records and serves semantic
search, per-professor analytics, availability rankings, and personalized
tutor recommendations over them.

Each stage is a subcommand: ingest loads publication CSVs into the corpus,
serve runs the HTTP API, and search, professors, and stats query the corpus
from the command line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; environment variables win over config files.
		if err := godotenv.Load(); err == nil {
			fmt.Fprintln(os.Stderr, "Loaded .env")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tutor-engine.yaml or ~/.config/tutor-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tutor-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tutor-engine"))
		}
	}

	viper.SetEnvPrefix("TUTOR_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

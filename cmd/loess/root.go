package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loess",
	Short: "Loess is a live content-collection pipeline",
	Long:  `Loess watches a directory of content collections, validates entries against their schemas, and serves them as virtual modules that stay fresh as files change.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "./content", "Content root directory")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

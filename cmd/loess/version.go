package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/loess"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of loess",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loess version %s\n", strings.TrimSpace(loess.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/loess"
	"github.com/aretw0/loess/internal/logging"
	"github.com/aretw0/loess/internal/presentation/tui"
	"github.com/aretw0/loess/pkg/vmod"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Load one content entry through the pipeline and render it",
	Long:  `Runs a single content file through the full pipeline (front-matter parsing, schema validation, module emission) and renders its body to the terminal. Useful to debug a failing entry.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		pipeline, err := loess.New(dir, loess.WithLogger(logging.NewNop()))
		if err != nil {
			fmt.Printf("Error initializing loess: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		if err := pipeline.Init(ctx); err != nil {
			fmt.Printf("Error during startup load: %v\n", err)
			os.Exit(1)
		}

		file, err := filepath.Abs(args[0])
		if err != nil {
			fmt.Printf("Invalid path: %v\n", err)
			os.Exit(1)
		}

		mod, err := pipeline.Load(ctx, file+"?"+vmod.ContentFlag)
		if err != nil {
			fmt.Printf("Load failed: %v\n", err)
			os.Exit(1)
		}
		if mod == nil {
			fmt.Printf("Not a content entry: %s\n", file)
			os.Exit(1)
		}

		fmt.Printf("collection: %s\nid:         %s\nslug:       %s\n", mod.Entry.Collection, mod.Entry.ID, mod.Entry.Slug)

		render := tui.NewRenderer()
		if out, err := render(mod.Body); err == nil {
			fmt.Println(out)
			return
		}
		fmt.Println(mod.Body)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

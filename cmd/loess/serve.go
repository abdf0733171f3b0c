package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/loess"
	"github.com/aretw0/loess/internal/adapters/fswatch"
	httpAdapter "github.com/aretw0/loess/internal/adapters/http"
	"github.com/aretw0/loess/internal/logging"
	"github.com/aretw0/loess/internal/metrics"
	"github.com/aretw0/loess/internal/presentation/tui"
	"github.com/aretw0/loess/pkg/adapters/memory"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the live content dev server",
	Long:  `Starts the content pipeline in dev mode: watches the content root, reloads schemas on change, and serves virtual content modules over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		port, _ := cmd.Flags().GetString("port")
		debug, _ := cmd.Flags().GetBool("debug")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		tui.PrintBanner(loess.Version)

		graph := memory.NewGraph()
		pipeline, err := loess.New(dir,
			loess.WithLogger(logger),
			loess.WithGraph(graph),
			loess.WithHooks(metrics.PipelineHooks()),
		)
		if err != nil {
			fmt.Printf("Error initializing loess: %v\n", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := pipeline.Init(ctx); err != nil {
			fmt.Printf("Error during startup load: %v\n", err)
			os.Exit(1)
		}

		watcher := fswatch.New(pipeline.QueueEvent, logger)
		if err := watcher.Start(ctx, pipeline.Paths.ContentDir); err != nil {
			fmt.Printf("Error starting watcher: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpAdapter.NewHandler(pipeline, graph, logger),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Loess dev server on %s\n", srv.Addr)
			fmt.Printf("Serving content from: %s\n", pipeline.Paths.ContentDir)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Let in-flight event batches finish before tearing down.
			cancel()
			pipeline.Settle()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Loess dev server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "4321", "Port to listen on")
}

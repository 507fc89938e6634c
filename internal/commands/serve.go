// internal/commands/serve.go
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mwiater/careerpath/internal/server"
)

var serveListen string

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long:  `The 'serve' command exposes career advice, timetables, terms, sessions and Prometheus metrics over HTTP until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		addr := a.cfg.ListenAddr()
		if serveListen != "" {
			addr = serveListen
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(a.service, a.store, a.metrics).Start(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"marketgenius/clipboard"
	"marketgenius/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI",
	Long:  "Start a local HTTP server with the generator form and result panel.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "http listen address (overrides config server_addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := buildApp(clipboard.NewSystem())
	if err != nil {
		return err
	}
	srv, err := server.New(a.form, a.result, a.cfg.RequestTimeout(), log.Default())
	if err != nil {
		return err
	}

	listen := a.cfg.ServerAddr
	if serveAddr != "" {
		listen = serveAddr
	}
	if listen == "" {
		listen = ":8080"
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log.Printf("[cli] starting web server on %s (provider=%s model=%s)", listen, a.cfg.LLM.Provider, a.cfg.LLM.Model)
	return srv.Run(ctx, listen)
}


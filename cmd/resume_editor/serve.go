package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor HTTP API",
	Long:  `Start an HTTP server exposing section edits, generation, live preview (SSE) and export.`,
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
		port := a.cfg.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv, err := server.New(server.Config{
			Port:        port,
			Session:     a.session,
			PDFRenderer: rendering.NewChromePDFRenderer(a.cfg.ChromePath),
			Template:    a.cfg.Template,
			TeXTemplate: a.cfg.TeXTemplate,
			Logger:      a.logger,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Start(ctx)
	}),
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lehigh-university-libraries/labelcheck/internal/handlers"
	"github.com/lehigh-university-libraries/labelcheck/internal/images"
	"github.com/spf13/cobra"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var port string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the label verification API server",
		Long: `Starts the label verification HTTP API on the specified port.

Endpoints:
  POST /api/verify        verify one label (JSON or multipart upload)
  POST /api/verify-batch  verify many labels
  GET  /api/template      download the batch CSV template
  POST /api/export        convert batch results to CSV
  GET  /api/warning       the required government warning text`,
		Example: `  # Start server on default port 8888
  labelcheck serve

  # Start server on custom port using a local Ollama model
  labelcheck serve --port 3000 --provider ollama`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options()
			opts.Concurrency = concurrency
			handler := handlers.New(newLabelService(), images.NewFetcher(), opts)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/verify", handler.HandleVerify)
			mux.HandleFunc("/api/verify-batch", handler.HandleVerifyBatch)
			mux.HandleFunc("/api/template", handler.HandleTemplate)
			mux.HandleFunc("/api/export", handler.HandleExport)
			mux.HandleFunc("/api/warning", handler.HandleWarning)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Label verification API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Labels verified in parallel per batch request")

	return cmd
}

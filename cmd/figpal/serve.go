package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfassina/figpal/internal/config"
	"github.com/pfassina/figpal/internal/ssh"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(flags *globalFlags) *cobra.Command {
	var listen, hostKey string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery over SSH",
		Long: `Serve the gallery to SSH clients. Every session gets its own view and
copies to the client's clipboard through OSC 52.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			if hostKey != "" {
				cfg.HostKeyPath = config.ExpandHome(hostKey)
			}
			return runServe(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config, :2223)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "SSH host key path, generated if missing")
	return cmd
}

func runServe(cmd *cobra.Command, cfg config.Config) error {
	logger, closeLog, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	records, err := loadRecords(cfg, logger)
	if err != nil {
		return err
	}

	s, err := ssh.New(cfg, records, logger)
	if err != nil {
		return err
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", shutdownTimeout)
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(sctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("sessions still open, closing")
			return s.Close()
		}
		return err
	}
	return <-errc
}

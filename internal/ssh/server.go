package ssh

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bts "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/pfassina/figpal/internal/config"
	"github.com/pfassina/figpal/internal/palette"
)

// Server wraps a Wish SSH server.
type Server struct {
	server *ssh.Server
	cfg    config.Config
	logger *log.Logger
}

// New creates a new SSH server. The host key at cfg.HostKeyPath is generated
// on first use.
func New(cfg config.Config, records []palette.Record, logger *log.Logger) (*Server, error) {
	hostKeyPath := config.ExpandHome(cfg.HostKeyPath)
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("create host key dir: %w", err)
	}

	s, err := wish.NewServer(
		wish.WithAddress(cfg.Listen),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bts.Middleware(NewHandler(cfg, records, logger)),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create ssh server: %w", err)
	}

	return &Server{server: s, cfg: cfg, logger: logger}, nil
}

func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe starts the SSH server. It returns nil after Shutdown or Close.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("serve ssh: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for open sessions until ctx
// is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Close stops the SSH server.
func (s *Server) Close() error {
	return s.server.Close()
}

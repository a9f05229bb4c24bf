package ssh

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	bts "github.com/charmbracelet/wish/bubbletea"
	"github.com/samber/lo"

	"github.com/pfassina/figpal/internal/app"
	"github.com/pfassina/figpal/internal/clipboard"
	"github.com/pfassina/figpal/internal/config"
	"github.com/pfassina/figpal/internal/palette"
	"github.com/pfassina/figpal/internal/theme"
)

// NewHandler returns a Bubble Tea handler for SSH sessions. Every session gets
// its own model and view state over the shared, read-only records.
func NewHandler(cfg config.Config, records []palette.Record, logger *log.Logger) bts.Handler {
	keys := cfg.KeyMap()
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		a := app.New(records, app.Options{
			Theme:     theme.Get(cfg.Theme).WithRenderer(bts.MakeRenderer(sess)),
			Clipboard: sessionClipboard(sess, sess.Environ()),
			Logger:    logger.With("user", sess.User()),
			Keys:      keys,
		})

		opts := []tea.ProgramOption{tea.WithAltScreen()}
		opts = append(opts, bts.MakeOptions(sess)...)
		return a, opts
	}
}

// sessionClipboard writes OSC 52 to the remote terminal. The server's own
// environment says nothing about the client, so multiplexer wrapping follows
// the session environment.
func sessionClipboard(out io.Writer, environ []string) clipboard.OSC52 {
	c := clipboard.NewOSC52(out)
	c.Tmux = hasEnv(environ, "TMUX")
	c.Screen = hasEnv(environ, "STY")
	return c
}

func hasEnv(environ []string, name string) bool {
	return lo.ContainsBy(environ, func(kv string) bool {
		v, ok := strings.CutPrefix(kv, name+"=")
		return ok && v != ""
	})
}

// Package clipboard copies text to the user's clipboard, either through the
// operating system or through an OSC 52 terminal escape sequence.
//
// All writers are best-effort: callers decide what a failure means.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

var (
	ErrUnknownMode = errors.New("unknown clipboard mode")
	ErrUnsupported = errors.New("system clipboard unavailable")
)

// Writer copies text to a clipboard.
type Writer interface {
	Write(text string) error
}

// Modes accepted by New.
const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
)

// New returns the writer for a configured mode. OSC 52 sequences are written
// to out.
func New(mode string, out io.Writer) (Writer, error) {
	switch mode {
	case ModeAuto, "":
		return Fallback{Primary: System{}, Secondary: NewOSC52(out)}, nil
	case ModeSystem:
		return System{}, nil
	case ModeOSC52:
		return NewOSC52(out), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// System writes to the OS clipboard (pbcopy, xclip, wl-copy, ...).
type System struct{}

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal on the other end of Out to set its clipboard.
// Writes are serialized so sequences never interleave.
type OSC52 struct {
	Out    io.Writer
	Tmux   bool
	Screen bool

	mu *sync.Mutex
}

// NewOSC52 returns an OSC 52 writer for out, wrapping the sequence for tmux
// or screen when the environment says we are running inside one.
func NewOSC52(out io.Writer) OSC52 {
	return OSC52{
		Out:    out,
		Tmux:   os.Getenv("TMUX") != "",
		Screen: os.Getenv("STY") != "",
		mu:     &sync.Mutex{},
	}
}

func (o OSC52) Write(text string) error {
	if o.Out == nil {
		return ErrUnsupported
	}
	seq := osc52.New(text)
	switch {
	case o.Tmux:
		seq = seq.Tmux()
	case o.Screen:
		seq = seq.Screen()
	}
	if o.mu != nil {
		o.mu.Lock()
		defer o.mu.Unlock()
	}
	_, err := seq.WriteTo(o.Out)
	return err
}

// Fallback tries Primary and, if it fails, Secondary.
type Fallback struct {
	Primary   Writer
	Secondary Writer
}

func (f Fallback) Write(text string) error {
	err := f.Primary.Write(text)
	if err == nil || f.Secondary == nil {
		return err
	}
	if err2 := f.Secondary.Write(text); err2 != nil {
		return errors.Join(err, err2)
	}
	return nil
}

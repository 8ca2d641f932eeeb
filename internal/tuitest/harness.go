// Package tuitest runs a command attached to a pseudo terminal of a chosen
// size and records what it prints.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"

	"github.com/csheth/justread/internal/pagetest"
)

const (
	defaultWidth   = 80
	defaultHeight  = 24
	defaultTimeout = 5 * time.Second
	drainTimeout   = time.Second
)

// Config describes the program to run and the terminal it sees.
type Config struct {
	Command []string
	Dir     string
	Env     []string
	Width   int
	Height  int
	Timeout time.Duration
}

// Recording is everything the program wrote to the terminal.
type Recording struct {
	Raw      []byte
	Duration time.Duration
}

// Plain returns the output without escape sequences, carriage returns or
// trailing blanks.
func (r *Recording) Plain() string {
	return pagetest.Plain(string(r.Raw))
}

// Run starts the command inside a PTY, waits for it to exit and captures
// every byte written to the terminal.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	width := cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = defaultHeight
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)

	start := time.Now()
	winsize := &pty.Winsize{Rows: uint16(height), Cols: uint16(width)}
	ptmx, err := pty.StartWithSize(cmd, winsize)
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	var output bytes.Buffer
	copyDone := make(chan struct{})
	go func() {
		defer close(copyDone)
		buf := make([]byte, 4096)
		for {
			n, readErr := ptmx.Read(buf)
			if n > 0 {
				_, _ = output.Write(buf[:n])
			}
			if readErr != nil {
				return
			}
		}
	}()

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
		}
		return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
	}

	// The reader stops once the terminal reports the closed slave side.
	select {
	case <-copyDone:
	case <-time.After(drainTimeout):
		_ = ptmx.Close()
		<-copyDone
	}
	return &Recording{Raw: output.Bytes(), Duration: time.Since(start)}, nil
}

func buildEnv(extra []string) []string {
	env := os.Environ()
	env = append(env, extra...)
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

// Package detect reads the current letters from an external source, such as a
// screen-capture helper that prints the letters it sees on stdout.
package detect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay_solver/internal/common"
)

var (
	// ErrUnavailable is returned when no detector is configured or the
	// detector could not be run.
	ErrUnavailable = errors.New("letter detection unavailable")
	// ErrNoLetters is returned when the detector ran but found nothing.
	ErrNoLetters = errors.New("no letters detected")
)

const DefaultTimeout = 10 * time.Second

// Detector reports the letters currently on offer, upper-cased.
type Detector interface {
	DetectLetters(ctx context.Context) ([]rune, error)
}

// CommandDetector runs an external command and takes every ASCII letter it
// prints as a detected letter.
type CommandDetector struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// FromConfig builds a detector from a command line such as
// "python3 grab.py --region 10,10". It returns nil when cmdline is empty.
func FromConfig(cmdline string) *CommandDetector {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return nil
	}
	return &CommandDetector{
		Command: fields[0],
		Args:    fields[1:],
		Timeout: DefaultTimeout,
	}
}

func (d *CommandDetector) DetectLetters(ctx context.Context) ([]rune, error) {
	if d == nil || d.Command == "" {
		return nil, ErrUnavailable
	}
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.Command, d.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Children of a killed command may keep stdout open.
	cmd.WaitDelay = time.Second

	start := time.Now()
	if err := cmd.Run(); err != nil {
		log.Err(err).Str("command", d.Command).Str("stderr", strings.TrimSpace(stderr.String())).
			Msg("detector failed")
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, d.Command, err)
	}
	letters := Letters(stdout.String())
	log.Debug().Str("command", d.Command).Str("letters", string(letters)).
		Dur("took", time.Since(start)).Msg("detected letters")
	if len(letters) == 0 {
		return nil, ErrNoLetters
	}
	return letters, nil
}

// Letters keeps the ASCII letters of s, upper-cased, in order.
func Letters(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !common.IsLetter(ch) {
			continue
		}
		if common.IsLower(ch) {
			ch -= 'a' - 'A'
		}
		out = append(out, rune(ch))
	}
	return out
}

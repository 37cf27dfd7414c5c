package detect

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLetters(t *testing.T) {
	is := is.New(t)
	is.Equal(string(Letters("a b\nC-d9 é!")), "ABCD")
	is.Equal(len(Letters("  123 ")), 0)
}

func TestFromConfig(t *testing.T) {
	is := is.New(t)
	is.True(FromConfig("   ") == nil)
	d := FromConfig("python3 grab.py --region 1,2")
	is.Equal(d.Command, "python3")
	is.Equal(d.Args, []string{"grab.py", "--region", "1,2"})
	is.Equal(d.Timeout, DefaultTimeout)
}

func requireShell(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCommandDetector(t *testing.T) {
	requireShell(t)
	is := is.New(t)
	d := &CommandDetector{Command: "sh", Args: []string{"-c", "echo 'l e t t e r s'"}}
	letters, err := d.DetectLetters(context.Background())
	is.NoErr(err)
	is.Equal(string(letters), "LETTERS")
}

func TestCommandDetectorNoLetters(t *testing.T) {
	requireShell(t)
	is := is.New(t)
	d := &CommandDetector{Command: "sh", Args: []string{"-c", "echo 42"}}
	_, err := d.DetectLetters(context.Background())
	is.True(errors.Is(err, ErrNoLetters))
}

func TestCommandDetectorFailure(t *testing.T) {
	requireShell(t)
	is := is.New(t)
	d := &CommandDetector{Command: "sh", Args: []string{"-c", "echo abc; exit 3"}}
	_, err := d.DetectLetters(context.Background())
	is.True(errors.Is(err, ErrUnavailable))

	d = &CommandDetector{Command: "sh", Args: []string{"-c", "sleep 5"}, Timeout: 50 * time.Millisecond}
	_, err = d.DetectLetters(context.Background())
	is.True(errors.Is(err, ErrUnavailable))

	var nilDetector *CommandDetector
	_, err = nilDetector.DetectLetters(context.Background())
	is.True(errors.Is(err, ErrUnavailable))
}

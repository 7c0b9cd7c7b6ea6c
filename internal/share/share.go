// Package share hands a quote off to something outside the app:
// the system clipboard or a plain writer.
package share

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/Makepad-fr/qotd/internal/model"
)

// Subject accompanies the payload where the target supports a title.
const Subject = "Quote of the Day"

// Targets accepted by New.
const (
	TargetClipboard = "clipboard"
	TargetStdout    = "stdout"
)

var ErrUnsupported = errors.New("clipboard not available on this system")

// Payload is the plain-text form of a shared quote.
func Payload(q model.Quote) string {
	return q.Text + "\n\n- " + q.Author
}

// Sharer sends a quote somewhere. Callers treat it as fire-and-forget
// and only surface the error.
type Sharer interface {
	Share(ctx context.Context, q model.Quote) error
}

// Func adapts a plain function to Sharer.
type Func func(ctx context.Context, q model.Quote) error

func (f Func) Share(ctx context.Context, q model.Quote) error { return f(ctx, q) }

// Clipboard copies the payload to the system clipboard.
type Clipboard struct {
	write       func(string) error
	unsupported bool
}

func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

func (c *Clipboard) Share(ctx context.Context, q model.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.unsupported {
		return ErrUnsupported
	}
	if err := c.write(Payload(q)); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

// Writer prints the payload to W followed by a newline.
type Writer struct {
	W io.Writer
}

func (w Writer) Share(ctx context.Context, q model.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w.W, Payload(q)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// New picks a Sharer for target. out is used for TargetStdout.
func New(target string, out io.Writer) (Sharer, error) {
	switch target {
	case TargetClipboard, "":
		return NewClipboard(), nil
	case TargetStdout:
		return Writer{W: out}, nil
	}
	return nil, fmt.Errorf("unknown share target %q", target)
}

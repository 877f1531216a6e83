package notify

import (
	"context"
	"fmt"
	"io"
)

// Console prints notices as plain lines
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(_ context.Context, n Notice) error {
	prefix := "*"
	if n.Failure() {
		prefix = "!"
	}
	if n.Body == "" {
		_, err := fmt.Fprintf(c.w, "%s %s\n", prefix, n.Title)
		return err
	}
	_, err := fmt.Fprintf(c.w, "%s %s %s\n", prefix, n.Title, n.Body)
	return err
}

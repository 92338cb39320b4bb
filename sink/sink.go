// Package sink delivers the encoded lines leaving the pipeline.
package sink

import (
	"fmt"
	gio "io"
	"strings"

	"github.com/colinrgodsey/wave-daemon/io"
)

// Publisher receives data lines.
type Publisher interface {
	Publish(line string) error
}

// Writer publishes each line to an io.Writer.
type Writer struct {
	W gio.Writer
}

func (w Writer) Publish(line string) error {
	_, err := fmt.Fprintln(w.W, line)
	return err
}

var statusPrefixes = []string{"info:", "warn:", "error:", "debug:", "ok"}

// IsStatus returns true for status lines, as opposed to data.
func IsStatus(line string) bool {
	for _, p := range statusPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// Drain consumes the pipeline tail c, publishing data lines to p and
// copying status lines to status. It returns when c closes or p fails.
func Drain(c io.Conn, p Publisher, status gio.Writer) error {
	for msg := range c.Flip().Rc() {
		var line string
		switch msg := msg.(type) {
		case string:
			line = msg
		case []byte:
			line = string(msg)
		default:
			continue
		}
		if IsStatus(line) {
			if status != nil {
				fmt.Fprintln(status, line)
			}
			continue
		}
		if err := p.Publish(line); err != nil {
			return fmt.Errorf("failed to publish: %w", err)
		}
	}
	return nil
}

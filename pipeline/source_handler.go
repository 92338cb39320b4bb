package pipeline

import (
	"errors"
	"fmt"

	"github.com/colinrgodsey/wave-daemon/command"
	"github.com/colinrgodsey/wave-daemon/io"
)

// SourceHandler parses protocol lines into commands and acknowledges each.
func SourceHandler(head, tail io.Conn) {
	defer tail.Close()
	go forward(head, tail)

	for msg := range head.Rc() {
		str, ok := msg.(string) // only strings
		if !ok {
			tail.Write(msg)
			continue
		}

		c, err := command.Parse(str)
		switch {
		case errors.Is(err, command.ErrEmpty):
			continue // comment-only or blank line
		case err != nil:
			head.Write(fmt.Sprintf("error:failed parsing command (%v)", err))
			continue
		}

		// send to tail before responding ok, incase tail blocks
		tail.Write(c)

		switch c.Num {
		case -1:
			head.Write("ok")
		default:
			head.Write(fmt.Sprintf("ok N%v", c.Num))
		}
	}
}

package pipeline

import (
	"github.com/colinrgodsey/wave-daemon/command"
	"github.com/colinrgodsey/wave-daemon/config"
	"github.com/colinrgodsey/wave-daemon/io"
)

type paramHandler struct {
	head, tail io.Conn

	conf config.Config
}

func (h *paramHandler) headRead(msg io.Any) {
	if c, ok := msg.(command.Command); ok && c.Is(command.Set) {
		h.set(c.Args)
		return
	}
	h.tail.Write(msg)
}

// set applies every arg or none. The last valid snapshot stays in effect on
// error.
func (h *paramHandler) set(args command.Args) {
	next := h.conf
	next.Modes = append([]int(nil), h.conf.Modes...)
	if err := args.Each(next.Set); err != nil {
		fail(h.head, err)
		return
	}
	snap, err := next.Snapshot()
	if err != nil {
		fail(h.head, err)
		return
	}
	h.conf = next
	h.tail.Write(snap)
	info(h.head, "set %v", args)
}

// ParamHandler owns the parameter set, turning "set" commands into new
// snapshots.
func ParamHandler(conf config.Config) func(head, tail io.Conn) {
	return func(head, tail io.Conn) {
		defer tail.Close()
		h := paramHandler{
			head: head, tail: tail,
			conf: conf,
		}
		go forward(head, tail)

		if snap, err := conf.Snapshot(); err != nil {
			fail(head, err)
		} else {
			tail.Write(snap)
		}

		for msg := range head.Rc() {
			h.headRead(msg)
		}
	}
}

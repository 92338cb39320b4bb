package pipeline

import (
	"github.com/colinrgodsey/wave-daemon/config"
	"github.com/colinrgodsey/wave-daemon/io"
)

const (
	sourceQueueSize = 8
	frameQueueSize  = 4
)

func handler(head io.Conn, size int, h func(head, tail io.Conn)) (tail io.Conn) {
	head = head.Flip()
	tail = io.NewConn(size, size)

	go h(head, tail)

	return
}

// New chains the daemon handlers after c and returns the tail, which
// carries encoded lines for a sink.
func New(c io.Conn, conf config.Config) io.Conn {
	c = handler(c, sourceQueueSize, SourceHandler)
	c = handler(c, 1, ParamHandler(conf))
	c = handler(c, 1, ClockHandler)
	c = handler(c, frameQueueSize, FrameHandler)
	c = handler(c, frameQueueSize, EncodeHandler)
	return c
}

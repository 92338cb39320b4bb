package pipeline

import (
	"math"
	"time"

	"github.com/colinrgodsey/wave-daemon/command"
	"github.com/colinrgodsey/wave-daemon/config"
	"github.com/colinrgodsey/wave-daemon/io"
)

type clockHandler struct {
	head, tail io.Conn

	snap   *config.Snapshot
	ticker *time.Ticker
	paused bool

	seq     uint64
	phase   float64
	elapsed float64
}

func (h *clockHandler) headRead(msg io.Any) {
	switch msg := msg.(type) {
	case config.Snapshot:
		h.setSnapshot(msg)
	case command.Command:
		switch msg.Verb {
		case command.Pause:
			h.paused = true
			info(h.head, "paused at θ=%.3f", h.phase)
			return
		case command.Resume:
			h.paused = false
			info(h.head, "resumed")
			return
		case command.Step:
			n, ok := msg.Args.GetInt("n")
			if !ok {
				n = 1
			}
			for i := 0; i < n; i++ {
				h.advance()
			}
			return
		}
	}
	h.tail.Write(msg)
}

func (h *clockHandler) setSnapshot(snap config.Snapshot) {
	if h.snap == nil || h.snap.Tick != snap.Tick {
		if h.ticker != nil {
			h.ticker.Stop()
		}
		h.ticker = time.NewTicker(snap.Tick)
	}
	h.snap = &snap
	h.tail.Write(snap)
}

func (h *clockHandler) advance() {
	if h.snap == nil {
		warn(h.head, "no parameters yet, skipping tick")
		return
	}
	h.seq++
	h.elapsed += h.snap.TimeStep
	h.phase = math.Mod(h.phase+h.snap.TimeStep, 2*math.Pi)
	if h.phase < 0 {
		h.phase += 2 * math.Pi
	}
	h.tail.Write(Tick{
		Seq:      h.seq,
		Phase:    h.phase,
		Elapsed:  h.elapsed,
		Snapshot: *h.snap,
	})
}

func (h *clockHandler) tickC() <-chan time.Time {
	if h.ticker == nil {
		return nil
	}
	return h.ticker.C
}

// ClockHandler drives the animation, emitting a Tick every snapshot tick
// interval unless paused.
func ClockHandler(head, tail io.Conn) {
	defer tail.Close()
	h := clockHandler{head: head, tail: tail}
	defer func() {
		if h.ticker != nil {
			h.ticker.Stop()
		}
	}()
	go forward(head, tail)

	for {
		select {
		case msg, ok := <-head.Rc():
			if !ok {
				return
			}
			h.headRead(msg)
		case <-h.tickC():
			if !h.paused {
				h.advance()
			}
		}
	}
}

package pipeline

import (
	"fmt"

	"github.com/colinrgodsey/wave-daemon/config"
	"github.com/colinrgodsey/wave-daemon/field"
	"github.com/colinrgodsey/wave-daemon/io"
	"github.com/colinrgodsey/wave-daemon/physics"
	"github.com/colinrgodsey/wave-daemon/spectrum"
)

// Tick is one step of the animation clock.
type Tick struct {
	Seq uint64
	// Phase is the fundamental phase θ = ω₁t, kept in [0, 2π).
	Phase float64
	// Elapsed is the unwrapped phase since start.
	Elapsed  float64
	Snapshot config.Snapshot
}

// Frame is everything a renderer needs to draw one tick.
type Frame struct {
	Seq         uint64                `json:"seq"`
	Phase       float64               `json:"phase"`
	Boundary    physics.Boundary      `json:"boundary"`
	Modes       []int                 `json:"modes"`
	Electric    field.Profile         `json:"E"`
	Magnetic    field.Profile         `json:"B"`
	Observation field.Sample          `json:"observation"`
	Nodes       []physics.Marker      `json:"nodes"`
	Resonance   physics.ResonanceInfo `json:"resonance"`
	Energy      physics.EnergyInfo    `json:"energy"`
	Traveling   Traveling             `json:"traveling"`
}

// Traveling is the free wave drawn next to the cavity for comparison.
type Traveling struct {
	Electric field.Profile `json:"E"`
	Magnetic field.Profile `json:"B"`
}

// HistoryReport is the observation trace sent on request.
type HistoryReport struct {
	Position float64       `json:"x"`
	Source   string        `json:"source"`
	Points   []field.Point `json:"points"`
}

// SpectrumReport is a mode decomposition sent on request.
type SpectrumReport struct {
	Seq   uint64                   `json:"seq"`
	Field physics.Field            `json:"field"`
	Modes []spectrum.ModeAmplitude `json:"modes"`
}

func info(c io.Conn, s string, args ...interface{}) {
	c.Write(fmt.Sprintf("info:"+s, args...))
}

func warn(c io.Conn, s string, args ...interface{}) {
	c.Write(fmt.Sprintf("warn:"+s, args...))
}

func fail(c io.Conn, err error) {
	c.Write(fmt.Sprintf("error:%v", err))
}

// forward passes everything read from the tail back up to the head.
func forward(head, tail io.Conn) {
	for msg := range tail.Rc() {
		head.Write(msg)
	}
}
